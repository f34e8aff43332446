package store

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/models"
	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/uploads"
)

const (
	placeholderPrecio      = "1200"
	placeholderDescripcion = "Descripción pendiente..."
)

// ReconcileUntrackedImages scans every registered category's image directory
// and synthesizes a placeholder product for each image file no product of
// that category references. Runs once at startup; once a file is claimed the
// pass finds nothing to do on the next restart.
func (s *Store) ReconcileUntrackedImages(imgBase string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cloneLocked()
	created := 0
	for _, cat := range next.Categories {
		entries, err := os.ReadDir(filepath.Join(imgBase, cat))
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !uploads.Allowed(entry.Name()) {
				continue
			}
			if imageTracked(next.Products, cat, entry.Name()) {
				continue
			}
			id := uuid.NewString()
			next.Products[id] = models.Product{
				ID:          id,
				Nombre:      nameFromFilename(entry.Name()),
				Precio:      placeholderPrecio,
				Categoria:   cat,
				Descripcion: placeholderDescripcion,
				Images:      []string{entry.Name()},
				Created:     time.Now().Unix(),
			}
			created++
		}
	}
	if created == 0 {
		return 0, nil
	}
	return created, s.commitLocked(next)
}

func imageTracked(products map[string]models.Product, categoria, filename string) bool {
	for _, p := range products {
		if p.Categoria != categoria {
			continue
		}
		for _, img := range p.Images {
			if img == filename {
				return true
			}
		}
	}
	return false
}

// nameFromFilename turns "smart_lamp_v2.jpg" into "Smart Lamp V2".
func nameFromFilename(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	words := strings.Fields(strings.ReplaceAll(base, "_", " "))
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		words[i] = strings.ToUpper(string(first)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
