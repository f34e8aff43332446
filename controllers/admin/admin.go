package adminController

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/middleware"
	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/store"
)

// Panel handles GET /admin. Without a logged-in session it answers 401 with
// the login requirement; with one it returns the panel data (site, products,
// categories).
func Panel(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(middleware.AdminSessionKey) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"login": true, "site": st.Site()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"site":       st.Site(),
			"productos":  st.Products(),
			"categories": st.Categories(),
		})
	}
}

// Login handles POST /admin: username match plus salted-hash verification.
// Success stores the admin user in the session.
func Login(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")
		if !st.VerifyAdmin(username, password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario o contraseña incorrectos"})
			return
		}
		session := sessions.Default(c)
		session.Set(middleware.AdminSessionKey, username)
		if err := session.Save(); err != nil {
			log.Println("❌ Failed to save admin session:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo iniciar sesión"})
			return
		}
		c.Redirect(http.StatusFound, "/admin")
	}
}

// Logout handles GET /logout: drops the admin flag and sends the visitor home.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		session.Delete(middleware.AdminSessionKey)
		if err := session.Save(); err != nil {
			log.Println("⚠️ Failed to clear admin session:", err)
		}
		c.Redirect(http.StatusFound, "/")
	}
}
