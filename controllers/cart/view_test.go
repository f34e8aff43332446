package cartControllers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/models"
	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/store"
)

func newViewStore(t *testing.T) *store.Store {
	t.Helper()
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "data.json"), filepath.Join(dir, "orders.json"))
	require.NoError(t, err)
	return st
}

func putProduct(t *testing.T, st *store.Store, id, precio string) {
	t.Helper()
	require.NoError(t, st.PutProduct(models.Product{
		ID:        id,
		Nombre:    "Producto " + id,
		Precio:    precio,
		Categoria: "Tecnologia",
		Images:    []string{},
	}))
}

func TestComputeViewTotals(t *testing.T) {
	st := newViewStore(t)
	putProduct(t, st, "a", "10.00")
	putProduct(t, st, "b", "5.00")

	items, total := ComputeView(st, models.Cart{"a": 2, "b": 1})
	require.Len(t, items, 2)
	assert.Equal(t, 25.00, total)

	sum := 0.0
	for _, it := range items {
		sum += it.Subtotal
	}
	assert.Equal(t, total, sum)
}

func TestComputeViewSkipsDeletedProducts(t *testing.T) {
	st := newViewStore(t)
	putProduct(t, st, "a", "10.00")
	putProduct(t, st, "b", "5.00")
	require.NoError(t, st.DeleteProduct("b"))

	cart := models.Cart{"a": 1, "b": 3}
	items, total := ComputeView(st, cart)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].Product.ID)
	assert.Equal(t, 10.00, total)

	// the stored cart itself is not repaired
	assert.Equal(t, 3, cart["b"])
}

func TestComputeViewSkipsMalformedPrice(t *testing.T) {
	st := newViewStore(t)
	putProduct(t, st, "a", "10.00")
	putProduct(t, st, "bad", "gratis")

	items, total := ComputeView(st, models.Cart{"a": 1, "bad": 2})
	require.Len(t, items, 1)
	assert.Equal(t, 10.00, total)
}

func TestComputeViewThousandsSeparators(t *testing.T) {
	st := newViewStore(t)
	putProduct(t, st, "a", "1,200.50")

	items, total := ComputeView(st, models.Cart{"a": 2})
	require.Len(t, items, 1)
	assert.Equal(t, 2401.00, total)
}

func TestComputeViewOrdersLinesByProductID(t *testing.T) {
	st := newViewStore(t)
	putProduct(t, st, "c", "3.00")
	putProduct(t, st, "a", "1.00")
	putProduct(t, st, "b", "2.00")

	cart := models.Cart{"c": 1, "a": 1, "b": 1}
	for i := 0; i < 10; i++ {
		items, total := ComputeView(st, cart)
		require.Len(t, items, 3)
		assert.Equal(t, "a", items[0].Product.ID)
		assert.Equal(t, "b", items[1].Product.ID)
		assert.Equal(t, "c", items[2].Product.ID)
		assert.Equal(t, 6.00, total)
	}
}

func TestComputeViewEmptyCart(t *testing.T) {
	st := newViewStore(t)
	items, total := ComputeView(st, models.Cart{})
	assert.Empty(t, items)
	assert.Zero(t, total)
}

func TestParsePrice(t *testing.T) {
	price, err := ParsePrice(" 1,200 ")
	require.NoError(t, err)
	assert.Equal(t, 1200.0, price)

	_, err = ParsePrice("abc")
	assert.Error(t, err)
}
