package productcontroller

import (
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/models"
	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/store"
	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/uploads"
)

// CrearProducto creates a new product from the admin form, saving any
// accepted uploads under the category's image directory. Files with a
// disallowed extension are skipped; an unknown category string is accepted
// and registered. The request body is already capped at the transport
// boundary via the engine's multipart limit.
func CrearProducto(st *store.Store, imgBase string) gin.HandlerFunc {
	return func(c *gin.Context) {
		nombre := c.DefaultPostForm("nombre", "Producto")
		precio := c.DefaultPostForm("precio", "0")
		descripcion := c.PostForm("descripcion")

		categoria := c.PostForm("categoria")
		if categoria == "" {
			if cats := st.Categories(); len(cats) > 0 {
				categoria = cats[0]
			}
		}

		images := saveUploads(c, imgBase, categoria)

		p := models.Product{
			ID:          uuid.NewString(),
			Nombre:      nombre,
			Precio:      precio,
			Categoria:   categoria,
			Descripcion: descripcion,
			Images:      images,
			Created:     time.Now().Unix(),
		}
		if err := st.PutProduct(p); err != nil {
			log.Println("❌ Failed to save catalog:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// saveUploads persists every accepted image of the multipart field
// "imagenes" and returns their stored filenames. Individual save failures
// are logged and skipped.
func saveUploads(c *gin.Context, imgBase, categoria string) []string {
	images := []string{}
	form, err := c.MultipartForm()
	if err != nil {
		return images
	}
	dir, err := uploads.CategoryDir(imgBase, categoria)
	if err != nil {
		log.Println("⚠️ Failed to create image directory:", err)
		return images
	}
	for _, fh := range form.File["imagenes"] {
		if fh.Filename == "" || !uploads.Allowed(fh.Filename) {
			continue
		}
		filename := uploads.NewFilename(fh.Filename)
		if err := c.SaveUploadedFile(fh, filepath.Join(dir, filename)); err != nil {
			log.Printf("⚠️ Failed to save upload %s: %v", fh.Filename, err)
			continue
		}
		images = append(images, filename)
	}
	return images
}
