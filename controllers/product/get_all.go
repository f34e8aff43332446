package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/store"
)

// Catalog handles GET /catalog?q=&categoria=. The text query is a
// case-insensitive substring match over name+description, the category an
// exact match; both compose with AND.
func Catalog(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		productos := st.Search(c.Query("q"), c.Query("categoria"))
		c.JSON(http.StatusOK, gin.H{
			"site":       st.Site(),
			"categories": st.Categories(),
			"productos":  productos,
		})
	}
}

// APIProducts handles GET /api/products: the bare product list as JSON.
func APIProducts(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, st.Products())
	}
}
