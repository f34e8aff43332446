package orderControllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cartControllers "github.com/CarlosArbeyBuritica/nexso-nex.innovation/controllers/cart"
	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/models"
	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/store"
)

const defaultCustomerName = "Cliente"

// CheckoutView handles GET /checkout: the current cart view, so a client
// can render the confirmation form against it.
func CheckoutView(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		items, total := cartControllers.ComputeView(st, cartControllers.CurrentCart(session))
		c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
	}
}

// Checkout handles POST /checkout: it snapshots the current cart view into
// an immutable order, appends it to the order log and clears the cart. Line
// items copy the product by value, so later catalog edits never touch order
// history. An empty cart still produces a zero-item order, matching the
// site's long-standing behavior.
func Checkout(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		items, total := cartControllers.ComputeView(st, cartControllers.CurrentCart(session))

		nombre := strings.TrimSpace(c.PostForm("nombre"))
		if nombre == "" {
			nombre = defaultCustomerName
		}

		order := models.Order{
			ID:   uuid.NewString(),
			Time: time.Now().Format("2006-01-02 15:04:05"),
			Cliente: models.Customer{
				Nombre:    nombre,
				Telefono:  c.PostForm("telefono"),
				Direccion: c.PostForm("direccion"),
			},
			Items: items,
			Total: total,
		}

		if err := st.AppendOrder(order); err != nil {
			log.Println("❌ Failed to persist order:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo registrar el pedido"})
			return
		}

		if err := cartControllers.SaveCart(session, models.Cart{}); err != nil {
			log.Println("⚠️ Order saved but cart could not be cleared:", err)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Gracias " + nombre + ", pedido registrado",
			"id":      order.ID,
			"total":   order.Total,
		})
	}
}

// VerPedidos handles GET /ver_pedidos (admin): the full order log.
func VerPedidos(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := st.Orders()
		if err != nil {
			log.Println("❌ Failed to read order log:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudieron leer los pedidos"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
