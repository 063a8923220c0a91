package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/healthbridge/healthbridge/internal/domain"
	"github.com/healthbridge/healthbridge/internal/port"
	"github.com/healthbridge/healthbridge/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

type cartRepositorySuite struct {
	suite.Suite

	repo port.CartRepository
	pool *pgxpool.Pool
}

// entry point to run the tests in the suite
func TestCartRepositorySuite(t *testing.T) {
	suite.Run(t, new(cartRepositorySuite))
}

// before all tests in the suite
func (suite *cartRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.repo = repository.NewCart(suite.pool)
}

// after all tests in the suite
func (suite *cartRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *cartRepositorySuite) TestAddItem() {
	defer suite.deleteAll()

	medicineID := suite.seedMedicine("Paracetamol", "9.99")

	tests := []struct {
		name       string
		ownerID    string
		medicineID uuid.UUID
		wantError  string
	}{
		{
			name:       "add item to cart: ok",
			ownerID:    gofakeit.UUID(),
			medicineID: medicineID,
		},
		{
			name:       "add item with empty owner ID: error",
			ownerID:    "",
			medicineID: medicineID,
			wantError:  "ownerID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			quantity, err := suite.repo.AddItem(ctx, tt.ownerID, tt.medicineID)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int32(1), quantity)

			cart, err := suite.repo.GetCart(ctx, tt.ownerID)
			require.NoError(t, err)

			require.Len(t, cart.Items, 1)
			assert.Equal(t, tt.medicineID, cart.Items[0].MedicineID)
			assert.Equal(t, "Paracetamol", cart.Items[0].Medicine.Name)
		})
	}

	suite.Run("add unknown medicine: not found", func() {
		t := suite.T()
		_, err := suite.repo.AddItem(t.Context(), gofakeit.UUID(), uuid.New())
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func (suite *cartRepositorySuite) TestAddItemIncrements() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()
	medicineID := suite.seedMedicine("Ibuprofen", "5.49")

	const n = 5
	for i := 1; i <= n; i++ {
		quantity, err := suite.repo.AddItem(ctx, ownerID, medicineID)
		require.NoError(t, err)
		assert.Equal(t, int32(i), quantity)
	}

	cart, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)

	// still a single line, never a duplicate
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int32(n), cart.Items[0].Quantity)
}

func (suite *cartRepositorySuite) TestConcurrentAddItem() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()
	medicineID := suite.seedMedicine("Aspirin", "3.25")

	const n = 50
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, err := suite.repo.AddItem(gctx, ownerID, medicineID)
			return err
		})
	}
	require.NoError(t, g.Wait())

	cart, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, int32(n), cart.Items[0].Quantity)
}

func (suite *cartRepositorySuite) TestSetItemQuantity() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()
	medicineID := suite.seedMedicine("Cetirizine", "7.80")

	_, err := suite.repo.AddItem(ctx, ownerID, medicineID)
	require.NoError(t, err)

	suite.Run("overwrite existing line: ok", func() {
		found, err := suite.repo.SetItemQuantity(ctx, ownerID, medicineID, 7)
		require.NoError(t, err)
		assert.True(t, found)

		cart, err := suite.repo.GetCart(ctx, ownerID)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, int32(7), cart.Items[0].Quantity)
	})

	suite.Run("missing line: not found", func() {
		found, err := suite.repo.SetItemQuantity(ctx, ownerID, uuid.New(), 2)
		require.NoError(t, err)
		assert.False(t, found)
	})

	suite.Run("zero quantity: error", func() {
		_, err := suite.repo.SetItemQuantity(ctx, ownerID, medicineID, 0)
		require.EqualError(t, err, "quantity must be at least 1, got 0")
	})

	suite.Run("empty owner ID: error", func() {
		_, err := suite.repo.SetItemQuantity(ctx, "", medicineID, 1)
		require.EqualError(t, err, "ownerID is empty")
	})
}

func (suite *cartRepositorySuite) TestDeleteItem() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()
	medicineID := suite.seedMedicine("Loratadine", "6.10")

	_, err := suite.repo.AddItem(ctx, ownerID, medicineID)
	require.NoError(t, err)

	suite.Run("delete existing item: ok", func() {
		deleted, err := suite.repo.DeleteItem(ctx, ownerID, medicineID)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	suite.Run("delete again: no-op", func() {
		deleted, err := suite.repo.DeleteItem(ctx, ownerID, medicineID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	suite.Run("delete with empty owner ID: error", func() {
		_, err := suite.repo.DeleteItem(ctx, "", medicineID)
		require.EqualError(t, err, "ownerID is empty")
	})
}

func (suite *cartRepositorySuite) TestGetCart() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()
	p1 := suite.seedMedicine("Paracetamol", "9.99")
	p2 := suite.seedMedicine("Vitamin C", "5.00")

	_, err := suite.repo.AddItem(ctx, ownerID, p1)
	require.NoError(t, err)
	_, err = suite.repo.AddItem(ctx, ownerID, p1)
	require.NoError(t, err)
	_, err = suite.repo.AddItem(ctx, ownerID, p2)
	require.NoError(t, err)

	cart, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)

	assert.Equal(t, ownerID, cart.OwnerID)
	require.Len(t, cart.Items, 2)

	assertCartItem(t, cart.Items[0], p1, "Paracetamol", 2, "9.99")
	assertCartItem(t, cart.Items[1], p2, "Vitamin C", 1, "5.00")

	total, err := cart.Total()
	require.NoError(t, err)
	assert.True(t, total.Amount.Equal(decimal.RequireFromString("24.98")),
		"total = %s", total.Amount)

	suite.Run("empty cart: ok", func() {
		cart, err := suite.repo.GetCart(ctx, gofakeit.UUID())
		require.NoError(t, err)
		assert.Empty(t, cart.Items)

		total, err := cart.Total()
		require.NoError(t, err)
		assert.True(t, total.Amount.IsZero())
	})

	suite.Run("empty owner ID: error", func() {
		_, err := suite.repo.GetCart(ctx, "")
		require.EqualError(t, err, "ownerID is empty")
	})
}

func (suite *cartRepositorySuite) TestNewCartWithTx() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	ownerID := gofakeit.UUID()
	medicineID := suite.seedMedicine("Zinc", "4.50")

	tx, err := suite.pool.Begin(ctx)
	require.NoError(t, err)

	txRepo := repository.NewCartWithTx(tx)
	_, err = txRepo.AddItem(ctx, ownerID, medicineID)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	cart, err := suite.repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
}

func (suite *cartRepositorySuite) deleteAll() {
	ctx := suite.T().Context()
	_, err := suite.pool.Exec(ctx, "TRUNCATE TABLE cart_items CASCADE")
	suite.NoError(err)
	_, err = suite.pool.Exec(ctx, "TRUNCATE TABLE medicines CASCADE")
	suite.NoError(err)
}

func (suite *cartRepositorySuite) seedMedicine(name, price string) uuid.UUID {
	id, err := insertMedicine(suite.T().Context(), suite.pool, name, decimal.RequireFromString(price), true)
	suite.NoError(err)
	return id
}

func assertCartItem(t *testing.T, actual domain.CartItem, medicineID uuid.UUID, name string, quantity int32, price string) {
	t.Helper()

	expected := domain.CartItem{
		MedicineID: medicineID,
		Quantity:   quantity,
	}

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.CartItem{}, "ID", "CreatedAt", "Medicine"),
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.Equal(t, name, actual.Medicine.Name)
	assert.True(t, actual.Medicine.Price.Amount.Equal(decimal.RequireFromString(price)))
	assert.False(t, actual.CreatedAt.IsZero())
}
