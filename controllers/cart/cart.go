package cartControllers

import (
	"encoding/gob"
	"net/http"
	"strconv"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/models"
	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/store"
)

const cartSessionKey = "cart"

func init() {
	// The cart rides inside the session cookie, which is gob-encoded.
	gob.Register(models.Cart{})
}

// CurrentCart reads the session cart, returning an empty one if the session
// has none yet.
func CurrentCart(session sessions.Session) models.Cart {
	if v := session.Get(cartSessionKey); v != nil {
		if cart, ok := v.(models.Cart); ok {
			return cart
		}
	}
	return models.Cart{}
}

// SaveCart writes the cart back into the session.
func SaveCart(session sessions.Session, cart models.Cart) error {
	session.Set(cartSessionKey, cart)
	return session.Save()
}

// AddToCart handles POST /add_to_cart/:id. The form field "cantidad" must be
// a positive integer (missing defaults to 1); repeated adds of the same
// product accumulate. The product id is not validated here: a product
// deleted after being carted simply disappears from later views.
func AddToCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		pid := c.Param("id")
		qty := 1
		if raw, ok := c.GetPostForm("cantidad"); ok {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "cantidad debe ser un entero positivo"})
				return
			}
			qty = parsed
		}

		session := sessions.Default(c)
		cart := CurrentCart(session)
		cart[pid] += qty
		if err := SaveCart(session, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no se pudo guardar el carrito"})
			return
		}
		c.Redirect(http.StatusFound, "/cart")
	}
}

// GetCart handles GET /cart: the computed view of the session cart at
// current catalog prices.
func GetCart(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		items, total := ComputeView(st, CurrentCart(session))
		c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
	}
}
