package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/store"
)

// GetProduct returns a single product by id.
// URL param: /producto/:id
func GetProduct(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := st.Product(c.Param("id"))
		if err != nil {
			if errors.Is(err, store.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
