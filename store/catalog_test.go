package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/models"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	st, err := Open(filepath.Join(dir, "data.json"), filepath.Join(dir, "orders.json"))
	require.NoError(t, err)
	return st, dir
}

func testProduct(id, nombre, precio, categoria string) models.Product {
	return models.Product{
		ID:          id,
		Nombre:      nombre,
		Precio:      precio,
		Categoria:   categoria,
		Descripcion: "desc " + nombre,
		Images:      []string{},
		Created:     1700000000,
	}
}

func TestOpenSeedsDefaultCatalog(t *testing.T) {
	st, dir := newTestStore(t)

	assert.Equal(t, "Nexso Next Innovation", st.Site().Titulo)
	assert.Equal(t, "🛒 Carrito", st.Site().CartButtonText)
	assert.Equal(t, []string{"Tecnologia", "Diseno"}, st.Categories())
	assert.Empty(t, st.Products())

	// credential seeded as a salted hash, never plaintext
	cred := st.Admin()
	assert.Equal(t, "admin", cred.Username)
	assert.NotContains(t, cred.PasswordHash, "admin123")
	assert.True(t, st.VerifyAdmin("admin", "admin123"))
	assert.False(t, st.VerifyAdmin("admin", "wrong"))
	assert.False(t, st.VerifyAdmin("root", "admin123"))

	// seed is persisted immediately
	_, err := os.Stat(filepath.Join(dir, "data.json"))
	assert.NoError(t, err)
}

func TestOpenFailsOnMalformedCatalog(t *testing.T) {
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(dataFile, []byte("{not json"), 0o644))

	_, err := Open(dataFile, filepath.Join(dir, "orders.json"))
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st, dir := newTestStore(t)

	p := testProduct("p1", "Lámpara", "1,200.50", "Diseno")
	p.Images = []string{"a.jpg", "b.png"}
	require.NoError(t, st.PutProduct(p))

	reopened, err := Open(filepath.Join(dir, "data.json"), filepath.Join(dir, "orders.json"))
	require.NoError(t, err)
	got, err := reopened.Product("p1")
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.Equal(t, st.Categories(), reopened.Categories())
	assert.Equal(t, st.Site(), reopened.Site())

	// serialize-then-deserialize yields an identical document
	before, err := os.ReadFile(filepath.Join(dir, "data.json"))
	require.NoError(t, err)
	require.NoError(t, reopened.SetCategories(reopened.Categories()))
	after, err := os.ReadFile(filepath.Join(dir, "data.json"))
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestProductNotFound(t *testing.T) {
	st, _ := newTestStore(t)
	_, err := st.Product("missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.ErrorIs(t, st.DeleteProduct("missing"), ErrProductNotFound)
}

func TestPutProductRegistersNovelCategory(t *testing.T) {
	st, _ := newTestStore(t)
	require.NoError(t, st.PutProduct(testProduct("p1", "Reloj", "900", "Relojes")))
	assert.Equal(t, []string{"Tecnologia", "Diseno", "Relojes"}, st.Categories())

	// registering again is a no-op
	require.NoError(t, st.PutProduct(testProduct("p2", "Otro", "100", "Relojes")))
	assert.Equal(t, []string{"Tecnologia", "Diseno", "Relojes"}, st.Categories())
}

func TestSearch(t *testing.T) {
	st, _ := newTestStore(t)
	require.NoError(t, st.PutProduct(testProduct("p1", "Lámpara LED", "100", "Tecnologia")))
	require.NoError(t, st.PutProduct(testProduct("p2", "Florero", "200", "Diseno")))
	require.NoError(t, st.PutProduct(testProduct("p3", "Panel LED", "300", "Diseno")))

	ids := func(ps []models.Product) []string {
		out := []string{}
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	assert.ElementsMatch(t, []string{"p1", "p2", "p3"}, ids(st.Search("", "")))
	assert.ElementsMatch(t, []string{"p1", "p3"}, ids(st.Search("led", "")))
	assert.ElementsMatch(t, []string{"p2", "p3"}, ids(st.Search("", "Diseno")))
	assert.ElementsMatch(t, []string{"p3"}, ids(st.Search("led", "Diseno")))
	assert.Empty(t, st.Search("florero", "Tecnologia"))

	// match can come from the description too
	assert.ElementsMatch(t, []string{"p2"}, ids(st.Search("desc florero", "")))
}

func TestDeleteProduct(t *testing.T) {
	st, _ := newTestStore(t)
	require.NoError(t, st.PutProduct(testProduct("p1", "Reloj", "900", "Tecnologia")))
	require.NoError(t, st.DeleteProduct("p1"))

	_, err := st.Product("p1")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Empty(t, st.Products())
}

func TestRemoveImageKeepsOrder(t *testing.T) {
	st, _ := newTestStore(t)
	p := testProduct("p1", "Reloj", "900", "Tecnologia")
	p.Images = []string{"a.jpg", "b.jpg", "c.jpg"}
	require.NoError(t, st.PutProduct(p))

	require.NoError(t, st.RemoveImage("p1", "b.jpg"))
	got, err := st.Product("p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "c.jpg"}, got.Images)

	assert.ErrorIs(t, st.RemoveImage("p1", "b.jpg"), ErrImageNotFound)
	assert.ErrorIs(t, st.RemoveImage("missing", "a.jpg"), ErrProductNotFound)
}

func TestSetCategoriesDoesNotTouchProducts(t *testing.T) {
	st, _ := newTestStore(t)
	p := testProduct("p1", "Reloj", "900", "Tecnologia")
	p.Images = []string{"a.jpg", "b.jpg"}
	require.NoError(t, st.PutProduct(p))

	require.NoError(t, st.SetCategories([]string{"Hogar", "Oficina"}))
	assert.Equal(t, []string{"Hogar", "Oficina"}, st.Categories())

	// the orphaned product keeps its category string and image list
	got, err := st.Product("p1")
	require.NoError(t, err)
	assert.Equal(t, "Tecnologia", got.Categoria)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, got.Images)
}

func TestCatalogFileShape(t *testing.T) {
	st, dir := newTestStore(t)
	require.NoError(t, st.PutProduct(testProduct("p1", "Reloj", "900", "Tecnologia")))

	raw, err := os.ReadFile(filepath.Join(dir, "data.json"))
	require.NoError(t, err)
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, key := range []string{"site", "categories", "products", "admin"} {
		assert.Contains(t, doc, key)
	}

	var site map[string]any
	require.NoError(t, json.Unmarshal(doc["site"], &site))
	for _, key := range []string{"titulo", "descripcion", "telefono", "cart_button_text"} {
		assert.Contains(t, site, key)
	}
}
