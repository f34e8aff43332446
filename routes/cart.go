package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/CarlosArbeyBuritica/nexso-nex.innovation/controllers/cart"
	orderControllers "github.com/CarlosArbeyBuritica/nexso-nex.innovation/controllers/order"
	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/store"
)

// SetupCartRoutes registers the session-cart and checkout endpoints.
func SetupCartRoutes(r *gin.Engine, st *store.Store) {
	r.POST("/add_to_cart/:id", cartControllers.AddToCart())
	r.GET("/cart", cartControllers.GetCart(st))
	r.GET("/checkout", orderControllers.CheckoutView(st))
	r.POST("/checkout", orderControllers.Checkout(st))
}
