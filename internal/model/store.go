package model

import (
	"fmt"
	"math"
)

// Default collection capacities.
const (
	DefaultMaxProducts = 100
	DefaultMaxClients  = 50
	DefaultMaxOrders   = 200
)

// Limits caps the size of each collection. A zero or negative limit means unbounded.
type Limits struct {
	MaxProducts int
	MaxClients  int
	MaxOrders   int
}

// DefaultLimits returns the stock capacities.
func DefaultLimits() Limits {
	return Limits{
		MaxProducts: DefaultMaxProducts,
		MaxClients:  DefaultMaxClients,
		MaxOrders:   DefaultMaxOrders,
	}
}

// Counts holds the size of each collection.
type Counts struct {
	Products int
	Clients  int
	Orders   int
}

// Store holds products, clients and orders in insertion order.
// Products and clients are also indexed by ID. Store is not safe for concurrent use.
type Store struct {
	limits Limits

	products     []Product
	clients      []Client
	orders       []Order
	productIndex map[int]int
	clientIndex  map[int]int

	// nextOrderID only moves forward, including across ClearAll.
	nextOrderID int
}

// NewStore returns an empty store with the given limits.
func NewStore(limits Limits) *Store {
	return &Store{
		limits:       limits,
		productIndex: make(map[int]int),
		clientIndex:  make(map[int]int),
		nextOrderID:  1,
	}
}

// Limits returns the capacities the store was created with.
func (s *Store) Limits() Limits {
	return s.limits
}

// ProductExists reports whether a product with id is present.
func (s *Store) ProductExists(id int) bool {
	_, ok := s.productIndex[id]
	return ok
}

// ClientExists reports whether a client with id is present.
func (s *Store) ClientExists(id int) bool {
	_, ok := s.clientIndex[id]
	return ok
}

// FindProductIndex returns the position of product id, or -1.
func (s *Store) FindProductIndex(id int) int {
	if i, ok := s.productIndex[id]; ok {
		return i
	}
	return -1
}

// FindClientIndex returns the position of client id, or -1.
func (s *Store) FindClientIndex(id int) int {
	if i, ok := s.clientIndex[id]; ok {
		return i
	}
	return -1
}

// Product returns a pointer to the stored product, or nil.
// The pointer is invalidated by the next append.
func (s *Store) Product(id int) *Product {
	i := s.FindProductIndex(id)
	if i < 0 {
		return nil
	}
	return &s.products[i]
}

// Client returns a pointer to the stored client, or nil.
// The pointer is invalidated by the next append.
func (s *Store) Client(id int) *Client {
	i := s.FindClientIndex(id)
	if i < 0 {
		return nil
	}
	return &s.clients[i]
}

// CanAppendProduct returns the error AppendProduct would return for id, or nil.
func (s *Store) CanAppendProduct(id int) error {
	if full(len(s.products), s.limits.MaxProducts) {
		return &CapacityError{Kind: KindProduct, Max: s.limits.MaxProducts}
	}
	if s.ProductExists(id) {
		return &DuplicateIDError{Kind: KindProduct, ID: id}
	}
	return nil
}

// CanAppendClient returns the error AppendClient would return for id, or nil.
func (s *Store) CanAppendClient(id int) error {
	if full(len(s.clients), s.limits.MaxClients) {
		return &CapacityError{Kind: KindClient, Max: s.limits.MaxClients}
	}
	if s.ClientExists(id) {
		return &DuplicateIDError{Kind: KindClient, ID: id}
	}
	return nil
}

// CanAppendOrder returns a CapacityError if the order collection is full.
func (s *Store) CanAppendOrder() error {
	if full(len(s.orders), s.limits.MaxOrders) {
		return &CapacityError{Kind: KindOrder, Max: s.limits.MaxOrders}
	}
	return nil
}

// AppendProduct adds p at the end of the product list.
// Field values are not validated here; that is the caller's job.
func (s *Store) AppendProduct(p Product) error {
	if err := s.CanAppendProduct(p.ID); err != nil {
		return err
	}
	s.productIndex[p.ID] = len(s.products)
	s.products = append(s.products, p)
	return nil
}

// AppendClient adds c at the end of the client list.
func (s *Store) AppendClient(c Client) error {
	if err := s.CanAppendClient(c.ID); err != nil {
		return err
	}
	s.clientIndex[c.ID] = len(s.clients)
	s.clients = append(s.clients, c)
	return nil
}

// AppendOrder adds o at the end of the order list and moves the order
// sequence past o.ID. An ID of math.MaxInt is rejected since the sequence
// could not move past it.
func (s *Store) AppendOrder(o Order) error {
	if err := s.CanAppendOrder(); err != nil {
		return err
	}
	if o.ID == math.MaxInt {
		return fmt.Errorf("%w: order id %d leaves no room for later orders", ErrInvalidID, o.ID)
	}
	s.orders = append(s.orders, o)
	if o.ID >= s.nextOrderID {
		s.nextOrderID = o.ID + 1
	}
	return nil
}

// NextOrderID returns the identifier the next order should use.
func (s *Store) NextOrderID() int {
	return s.nextOrderID
}

// SetOrderSeq raises the order sequence to n. It never lowers it.
func (s *Store) SetOrderSeq(n int) {
	if n > s.nextOrderID {
		s.nextOrderID = n
	}
}

// Products returns a copy of the products in insertion order.
func (s *Store) Products() []Product {
	return append([]Product(nil), s.products...)
}

// Clients returns a copy of the clients in insertion order.
func (s *Store) Clients() []Client {
	return append([]Client(nil), s.clients...)
}

// Orders returns a copy of the orders in insertion order.
func (s *Store) Orders() []Order {
	return append([]Order(nil), s.orders...)
}

// Counts returns the size of each collection.
func (s *Store) Counts() Counts {
	return Counts{
		Products: len(s.products),
		Clients:  len(s.clients),
		Orders:   len(s.orders),
	}
}

// ClearAll empties every collection. The order sequence is kept so that
// identifiers handed out before the clear are never reused.
func (s *Store) ClearAll() {
	s.products = nil
	s.clients = nil
	s.orders = nil
	s.productIndex = make(map[int]int)
	s.clientIndex = make(map[int]int)
}

func full(n, max int) bool {
	return max > 0 && n >= max
}
