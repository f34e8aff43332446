package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminController "github.com/CarlosArbeyBuritica/nexso-nex.innovation/controllers/admin"
	orderControllers "github.com/CarlosArbeyBuritica/nexso-nex.innovation/controllers/order"
	productcontroller "github.com/CarlosArbeyBuritica/nexso-nex.innovation/controllers/product"
	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/middleware"
	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/store"
)

// SetupAdminRoutes registers the login entry point and every session-gated
// admin endpoint. The gated group redirects to /admin without a valid
// session before any handler can touch the catalog or the order log.
func SetupAdminRoutes(r *gin.Engine, st *store.Store, imgBase string) {
	r.GET("/admin", adminController.Panel(st))
	r.POST("/admin", adminController.Login(st))
	r.GET("/logout", adminController.Logout())

	gated := r.Group("")
	gated.Use(middleware.RequireAdmin)
	{
		gated.GET("/crear_producto", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/admin")
		})
		gated.POST("/crear_producto", productcontroller.CrearProducto(st, imgBase))
		gated.GET("/editar_producto/:id", productcontroller.EditarProductoForm(st))
		gated.POST("/editar_producto/:id", productcontroller.EditarProducto(st, imgBase))
		gated.POST("/eliminar_producto/:id", productcontroller.EliminarProducto(st, imgBase))
		gated.POST("/eliminar_imagen/:id/:filename", productcontroller.EliminarImagen(st, imgBase))
		gated.POST("/guardar_categorias", adminController.GuardarCategorias(st, imgBase))
		gated.GET("/ver_pedidos", orderControllers.VerPedidos(st))
	}
}
