package productcontroller

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/models"
	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/store"
	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/uploads"
)

// Home handles GET /: site config plus a preview image for each of the two
// seed categories, taken from the first product of the category that has one.
func Home(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var techPreview, disenoPreview string
		for _, p := range st.Products() {
			if len(p.Images) == 0 {
				continue
			}
			switch {
			case p.Categoria == "Tecnologia" && techPreview == "":
				techPreview = imageURL(p.Categoria, p.Images[0])
			case p.Categoria == "Diseno" && disenoPreview == "":
				disenoPreview = imageURL(p.Categoria, p.Images[0])
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"site":           st.Site(),
			"tech_preview":   techPreview,
			"diseno_preview": disenoPreview,
		})
	}
}

// Categoria handles GET /categoria/:nombre: the category's products plus the
// loose image files in its gallery directory. 404 if the directory does not
// exist.
func Categoria(st *store.Store, imgBase string) gin.HandlerFunc {
	return func(c *gin.Context) {
		nombre := c.Param("nombre")
		if nombre != filepath.Base(nombre) || nombre == ".." || nombre == "." {
			c.JSON(http.StatusNotFound, gin.H{"error": "Categoría no encontrada"})
			return
		}
		entries, err := os.ReadDir(filepath.Join(imgBase, nombre))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Categoría no encontrada"})
			return
		}

		imgs := []string{}
		for _, entry := range entries {
			if !entry.IsDir() && uploads.Allowed(entry.Name()) {
				imgs = append(imgs, entry.Name())
			}
		}

		productos := []models.Product{}
		for _, p := range st.Products() {
			if p.Categoria == nombre {
				productos = append(productos, p)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"site":      st.Site(),
			"nombre":    nombre,
			"imgs":      imgs,
			"productos": productos,
		})
	}
}

func imageURL(categoria, filename string) string {
	return "/static/imagenes/" + categoria + "/" + filename
}
