package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Section headers of the data file, in file order.
const (
	HeaderProducts = "=== Produits ==="
	HeaderClients  = "=== Clients ==="
	HeaderOrders   = "=== Commandes ==="
)

// Section identifies a part of the data file.
type Section string

const (
	SectionNone     Section = ""
	SectionProducts Section = "products"
	SectionClients  Section = "clients"
	SectionOrders   Section = "orders"
)

// Field counts per record line.
const (
	productFields = 4
	clientFields  = 3
	orderFields   = 5
)

// ParseWarning describes a line that was skipped while loading.
type ParseWarning struct {
	Line    int // 1-based line number
	Section Section
	Text    string
	Reason  string
}

func (w ParseWarning) String() string {
	return fmt.Sprintf("line %d (%s): %s: %q", w.Line, w.Section, w.Reason, w.Text)
}

// LoadFile reads a data file into a new store.
// A missing file is returned as an error wrapping fs.ErrNotExist.
func LoadFile(path string, limits Limits) (*Store, []ParseWarning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open data file %s: %w", path, err)
	}
	defer f.Close()

	s, warnings, err := Decode(f, limits)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read data file %s: %w", path, err)
	}
	return s, warnings, nil
}

// SaveFile replaces the contents of path with a full snapshot of s.
func SaveFile(path string, s *Store) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open data file %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close data file %s: %w", path, cerr)
		}
	}()

	if err := Encode(f, s); err != nil {
		return fmt.Errorf("failed to write data file %s: %w", path, err)
	}
	return nil
}

// Encode writes all three sections of s to w.
// Headers are always written, even for empty collections.
func Encode(w io.Writer, s *Store) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, HeaderProducts)
	for _, p := range s.products {
		fmt.Fprintf(bw, "%d,%s,%s,%d\n", p.ID, p.Name, p.Price.StringFixed(2), p.Stock)
	}

	fmt.Fprintf(bw, "\n%s\n", HeaderClients)
	for _, c := range s.clients {
		fmt.Fprintf(bw, "%d,%s,%s\n", c.ID, c.Name, c.Phone)
	}

	fmt.Fprintf(bw, "\n%s\n", HeaderOrders)
	for _, o := range s.orders {
		fmt.Fprintf(bw, "%d,%d,%d,%d,%s\n", o.ID, o.ClientID, o.ProductID, o.Quantity, o.Total.StringFixed(2))
	}

	return bw.Flush()
}

// MaxLineLength is the longest record line Decode accepts, in bytes.
// Longer lines are skipped with a warning.
const MaxLineLength = 4096

// Decode parses the data file format into a new store.
//
// A section starts at a line containing its header and ends at the first
// blank line. Lines outside any section are ignored. Lines with the wrong
// number of fields, unparsable numbers, duplicate identifiers, or that do
// not fit within limits are skipped and reported as warnings, and so are
// lines longer than MaxLineLength.
func Decode(r io.Reader, limits Limits) (*Store, []ParseWarning, error) {
	s := NewStore(limits)
	var warnings []ParseWarning

	br := bufio.NewReader(r)
	section := SectionNone
	lineNo := 0

	for {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, nil, readErr
		}
		if raw == "" && readErr == io.EOF {
			break
		}
		lineNo++
		line := strings.TrimRight(raw, "\r\n")

		if next := headerSection(line); next != SectionNone {
			section = next
		} else if strings.TrimSpace(line) == "" {
			section = SectionNone
		} else if section != SectionNone {
			reason := ""
			if len(line) > MaxLineLength {
				reason = fmt.Sprintf("line too long (%d bytes, max %d)", len(line), MaxLineLength)
				line = line[:64] + "..."
			} else {
				reason = decodeLine(s, section, line)
			}
			if reason != "" {
				warnings = append(warnings, ParseWarning{
					Line:    lineNo,
					Section: section,
					Text:    line,
					Reason:  reason,
				})
			}
		}

		if readErr == io.EOF {
			break
		}
	}

	return s, warnings, nil
}

// headerSection returns the section whose header appears in line.
func headerSection(line string) Section {
	switch {
	case strings.Contains(line, HeaderProducts):
		return SectionProducts
	case strings.Contains(line, HeaderClients):
		return SectionClients
	case strings.Contains(line, HeaderOrders):
		return SectionOrders
	}
	return SectionNone
}

// decodeLine parses one record into s. It returns a non-empty reason when
// the line was skipped.
func decodeLine(s *Store, section Section, line string) string {
	fields := strings.Split(line, ",")

	switch section {
	case SectionProducts:
		if len(fields) != productFields {
			return fieldCountReason(productFields, len(fields))
		}
		var p Product
		var err error
		if p.ID, err = parseInt(fields[0]); err != nil {
			return "bad product id: " + err.Error()
		}
		p.Name = fields[1]
		if p.Price, err = decimal.NewFromString(strings.TrimSpace(fields[2])); err != nil {
			return "bad price: " + err.Error()
		}
		if p.Stock, err = parseInt(fields[3]); err != nil {
			return "bad stock: " + err.Error()
		}
		if err := s.AppendProduct(p); err != nil {
			return err.Error()
		}

	case SectionClients:
		if len(fields) != clientFields {
			return fieldCountReason(clientFields, len(fields))
		}
		var c Client
		var err error
		if c.ID, err = parseInt(fields[0]); err != nil {
			return "bad client id: " + err.Error()
		}
		c.Name = fields[1]
		c.Phone = strings.TrimSpace(fields[2])
		if err := s.AppendClient(c); err != nil {
			return err.Error()
		}

	case SectionOrders:
		if len(fields) != orderFields {
			return fieldCountReason(orderFields, len(fields))
		}
		var o Order
		var err error
		if o.ID, err = parseInt(fields[0]); err != nil {
			return "bad order id: " + err.Error()
		}
		if o.ClientID, err = parseInt(fields[1]); err != nil {
			return "bad client id: " + err.Error()
		}
		if o.ProductID, err = parseInt(fields[2]); err != nil {
			return "bad product id: " + err.Error()
		}
		if o.Quantity, err = parseInt(fields[3]); err != nil {
			return "bad quantity: " + err.Error()
		}
		if o.Total, err = decimal.NewFromString(strings.TrimSpace(fields[4])); err != nil {
			return "bad total: " + err.Error()
		}
		if err := s.AppendOrder(o); err != nil {
			return err.Error()
		}
	}

	return ""
}

func parseInt(field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", field)
	}
	return n, nil
}

func fieldCountReason(want, got int) string {
	return fmt.Sprintf("expected %d fields, got %d", want, got)
}
