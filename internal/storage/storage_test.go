package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacksmith/pt/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	clearEnv(t)

	s, err := Open(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestOpen(t *testing.T) {
	t.Run("open existing directory", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()

		s, err := Open(dir)
		require.NoError(t, err)
		assert.Equal(t, dir, s.Root())
		assert.Equal(t, filepath.Join(dir, "patisserie.txt"), s.DataPath())
		assert.Equal(t, filepath.Join(dir, ".pt-state.yaml"), s.StatePath())
	})

	t.Run("open missing directory fails", func(t *testing.T) {
		clearEnv(t)
		_, err := Open(filepath.Join(t.TempDir(), "missing"))
		require.Error(t, err)
	})

	t.Run("open a file fails", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		_, err := Open(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})

	t.Run("data file follows config", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".ptconfig.yaml"), []byte("data_file: shop.txt\n"), 0644))

		s, err := Open(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "shop.txt"), s.DataPath())
	})

	t.Run("absolute data file is kept", func(t *testing.T) {
		clearEnv(t)
		abs := filepath.Join(t.TempDir(), "elsewhere.txt")
		t.Setenv(EnvDataFile, abs)

		s, err := Open(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, abs, s.DataPath())
	})
}

func TestInit(t *testing.T) {
	t.Run("writes empty sections", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()

		s, err := Init(dir)
		require.NoError(t, err)

		data, err := os.ReadFile(s.DataPath())
		require.NoError(t, err)
		assert.Equal(t, "=== Produits ===\n\n=== Clients ===\n\n=== Commandes ===\n", string(data))

		_, err = os.Stat(s.StatePath())
		require.NoError(t, err)
	})

	t.Run("existing data file returns error", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()

		_, err := Init(dir)
		require.NoError(t, err)

		_, err = Init(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields empty store", func(t *testing.T) {
		s := openTestStorage(t)

		store, warnings, err := s.Load()
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Equal(t, model.Counts{}, store.Counts())
		assert.Equal(t, 1, store.NextOrderID())
	})

	t.Run("uses configured limits", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvMaxClients, "1")
		s, err := Open(t.TempDir())
		require.NoError(t, err)

		content := "=== Produits ===\n\n=== Clients ===\n1,Ali,12345678\n2,Sami,12345678\n\n=== Commandes ===\n"
		require.NoError(t, os.WriteFile(s.DataPath(), []byte(content), 0644))

		store, warnings, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, 1, store.Counts().Clients)
		require.Len(t, warnings, 1)
		assert.Equal(t, 5, warnings[0].Line)
	})

	t.Run("unreadable file is a persistence error", func(t *testing.T) {
		s := openTestStorage(t)
		// A directory in place of the data file cannot be read as a file.
		require.NoError(t, os.Mkdir(s.DataPath(), 0755))

		store, _, err := s.Load()
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrPersistenceUnavailable))
		assert.True(t, errors.Is(err, model.ErrDataUnreadable))
		require.NotNil(t, store)
		assert.Equal(t, model.Counts{}, store.Counts())
	})

	t.Run("overlong line does not lose other records", func(t *testing.T) {
		s := openTestStorage(t)
		content := "=== Produits ===\n1,tarte,5.00,10\n2,gateau,3.00,4\n\n" +
			"=== Clients ===\n1,Ali,12345678\n9," + strings.Repeat("A", 70000) + ",12345678\n\n" +
			"=== Commandes ===\n"
		require.NoError(t, os.WriteFile(s.DataPath(), []byte(content), 0644))

		store, warnings, err := s.Load()
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Equal(t, 7, warnings[0].Line)
		assert.Equal(t, model.Counts{Products: 2, Clients: 1}, store.Counts())

		require.NoError(t, store.AppendProduct(model.Product{ID: 3, Name: "croissant", Price: decimal.RequireFromString("1.00"), Stock: 1}))
		require.NoError(t, s.Save(store))

		data, err := os.ReadFile(s.DataPath())
		require.NoError(t, err)
		assert.Equal(t, "=== Produits ===\n1,tarte,5.00,10\n2,gateau,3.00,4\n3,croissant,1.00,1\n\n"+
			"=== Clients ===\n1,Ali,12345678\n\n=== Commandes ===\n", string(data))
	})

	t.Run("order sequence survives a clear", func(t *testing.T) {
		s := openTestStorage(t)

		store := model.NewStore(model.DefaultLimits())
		require.NoError(t, store.AppendOrder(model.Order{ID: 1, ClientID: 1, ProductID: 1, Quantity: 1, Total: decimal.NewFromInt(2)}))
		require.NoError(t, store.AppendOrder(model.Order{ID: 2, ClientID: 1, ProductID: 1, Quantity: 1, Total: decimal.NewFromInt(2)}))
		require.NoError(t, s.Save(store))

		store.ClearAll()
		require.NoError(t, s.Save(store))

		reloaded, _, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, 0, reloaded.Counts().Orders)
		assert.Equal(t, 3, reloaded.NextOrderID())
	})

	t.Run("missing state falls back to highest order", func(t *testing.T) {
		s := openTestStorage(t)

		content := "=== Produits ===\n\n=== Clients ===\n\n=== Commandes ===\n4,1,1,1,2.00\n"
		require.NoError(t, os.WriteFile(s.DataPath(), []byte(content), 0644))

		store, _, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, 5, store.NextOrderID())
	})

	t.Run("corrupt state file is a persistence error", func(t *testing.T) {
		s := openTestStorage(t)
		require.NoError(t, os.WriteFile(s.StatePath(), []byte("next_order_id: [oops"), 0644))

		store, _, err := s.Load()
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrPersistenceUnavailable))
		assert.NotNil(t, store)
	})
}

func TestSave(t *testing.T) {
	t.Run("round trip through disk", func(t *testing.T) {
		s := openTestStorage(t)

		store := model.NewStore(model.DefaultLimits())
		require.NoError(t, store.AppendProduct(model.Product{ID: 1, Name: "tarte", Price: decimal.RequireFromString("5.00"), Stock: 10}))
		require.NoError(t, store.AppendClient(model.Client{ID: 1, Name: "Ali", Phone: "12345678"}))
		require.NoError(t, s.Save(store))

		reloaded, warnings, err := s.Load()
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Equal(t, store.Products()[0].Name, reloaded.Products()[0].Name)
		assert.True(t, store.Products()[0].Price.Equal(reloaded.Products()[0].Price))
		assert.Equal(t, store.Clients(), reloaded.Clients())
	})

	t.Run("unwritable destination is a persistence error", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		t.Setenv(EnvDataFile, filepath.Join(dir, "missing", "patisserie.txt"))

		s, err := Open(dir)
		require.NoError(t, err)

		err = s.Save(model.NewStore(model.DefaultLimits()))
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrPersistenceUnavailable))

		var perr *model.PersistenceError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "save", perr.Op)
	})
}
