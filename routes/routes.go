package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/store"
)

// Setup is the single entry point that wires up the public, cart/checkout
// and admin route groups.
func Setup(r *gin.Engine, st *store.Store, imgBase string) {
	SetupPublicRoutes(r, st, imgBase)
	SetupCartRoutes(r, st)
	SetupAdminRoutes(r, st, imgBase)
}
