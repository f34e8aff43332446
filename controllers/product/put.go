package productcontroller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/store"
	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/uploads"
)

// EditarProductoForm handles GET /editar_producto/:id: the current product
// plus the category list, for the edit form.
func EditarProductoForm(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := st.Product(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No encontrado"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"p": p, "categories": st.Categories()})
	}
}

// EditarProducto applies a field-level partial update: only fields present
// in the form change. A category change relocates the product's image files
// to the new category directory, best-effort per file. New uploads are
// appended to the image list.
func EditarProducto(st *store.Store, imgBase string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := st.Product(c.Param("id"))
		if err != nil {
			if errors.Is(err, store.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "No encontrado"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}

		if v, ok := c.GetPostForm("nombre"); ok {
			p.Nombre = v
		}
		if v, ok := c.GetPostForm("precio"); ok {
			p.Precio = v
		}
		if v, ok := c.GetPostForm("descripcion"); ok {
			p.Descripcion = v
		}

		if newCat, ok := c.GetPostForm("categoria"); ok && newCat != "" && newCat != p.Categoria {
			for _, res := range uploads.MoveAll(imgBase, p.Categoria, newCat, p.Images) {
				if res.Err != nil {
					log.Printf("⚠️ Could not move image %s to %s: %v", res.Filename, newCat, res.Err)
				}
			}
			p.Categoria = newCat
		}

		p.Images = append(p.Images, saveUploads(c, imgBase, p.Categoria)...)

		if err := st.PutProduct(p); err != nil {
			log.Println("❌ Failed to save catalog:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
