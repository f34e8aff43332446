package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/CarlosArbeyBuritica/nexso-nex.innovation/controllers/product"
	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/store"
)

// SetupPublicRoutes registers the storefront's read-only endpoints.
func SetupPublicRoutes(r *gin.Engine, st *store.Store, imgBase string) {
	r.GET("/", productcontroller.Home(st))
	r.GET("/catalog", productcontroller.Catalog(st))
	r.GET("/categoria/:nombre", productcontroller.Categoria(st, imgBase))
	r.GET("/producto/:id", productcontroller.GetProduct(st))
	r.GET("/api/products", productcontroller.APIProducts(st))
}
