package productcontroller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/store"
	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/uploads"
)

// EliminarProducto removes a product's image files from storage
// (best-effort: a missing file is not an error, other failures are logged
// and skipped) and then deletes the product entry.
func EliminarProducto(st *store.Store, imgBase string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := st.Product(c.Param("id"))
		if err != nil {
			if errors.Is(err, store.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		for _, res := range uploads.RemoveAll(imgBase, p.Categoria, p.Images) {
			if res.Err != nil {
				log.Printf("⚠️ Could not delete image %s: %v", res.Filename, res.Err)
			}
		}

		if err := st.DeleteProduct(p.ID); err != nil {
			log.Println("❌ Failed to save catalog:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Producto eliminado"})
	}
}

// EliminarImagen removes one filename from a product's image list and
// deletes the backing file, best-effort.
func EliminarImagen(st *store.Store, imgBase string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		filename := c.Param("filename")

		p, err := st.Product(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
			return
		}

		if err := st.RemoveImage(id, filename); err != nil {
			if errors.Is(err, store.ErrImageNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Imagen no encontrada"})
			} else {
				log.Println("❌ Failed to save catalog:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove image"})
			}
			return
		}

		for _, res := range uploads.RemoveAll(imgBase, p.Categoria, []string{filename}) {
			if res.Err != nil {
				log.Printf("⚠️ Could not delete image %s: %v", res.Filename, res.Err)
			}
		}
		c.JSON(http.StatusOK, gin.H{"message": "Imagen eliminada"})
	}
}
