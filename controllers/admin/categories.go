package adminController

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/store"
	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/uploads"
)

// GuardarCategorias handles POST /guardar_categorias: replaces the category
// set wholesale from the comma-separated "cats" field and makes sure every
// named category has an image directory. Products left pointing at a removed
// category keep their old category string; nothing cascades.
func GuardarCategorias(st *store.Store, imgBase string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cats := []string{}
		for _, raw := range strings.Split(c.PostForm("cats"), ",") {
			if name := strings.TrimSpace(raw); name != "" {
				cats = append(cats, name)
			}
		}
		if err := st.SetCategories(cats); err != nil {
			log.Println("❌ Failed to save catalog:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save categories"})
			return
		}
		for _, name := range cats {
			if _, err := uploads.CategoryDir(imgBase, name); err != nil {
				log.Printf("⚠️ Could not create image directory for %s: %v", name, err)
			}
		}
		c.JSON(http.StatusOK, gin.H{"categories": cats})
	}
}
