// Package store owns the two persisted JSON documents: the catalog
// (data.json: site config, categories, products, admin credential) and the
// order log (orders.json). The catalog is loaded once at startup, mutated in
// memory under a single lock and rewritten wholesale on every change.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrImageNotFound   = errors.New("image not found on product")
)

const (
	defaultTitle       = "Nexso Next Innovation"
	defaultDescription = "Innovación y Diseño — Tecnología aplicada a productos únicos."
	defaultPhone       = "3223007570, 3225466931"
	defaultCartButton  = "🛒 Carrito"
	defaultAdminUser   = "admin"
	defaultAdminPass   = "admin123"
)

// Store is the process-wide holder of the catalog document and the order
// log path. All reads and writes go through its lock; every mutation
// persists the full document before it becomes visible in memory, so a
// failed write never leaves half-applied state behind.
type Store struct {
	mu         sync.RWMutex
	dataFile   string
	ordersFile string
	catalog    models.Catalog
}

// Open loads the catalog from dataFile, seeding and persisting a default
// document if the file does not exist yet. An existing but unreadable or
// malformed file is a fatal error: the whole site state lives in it.
func Open(dataFile, ordersFile string) (*Store, error) {
	s := &Store{dataFile: dataFile, ordersFile: ordersFile}

	raw, err := os.ReadFile(dataFile)
	if errors.Is(err, os.ErrNotExist) {
		seed, seedErr := defaultCatalog()
		if seedErr != nil {
			return nil, seedErr
		}
		if writeErr := writeJSONFile(dataFile, seed); writeErr != nil {
			return nil, fmt.Errorf("seeding catalog: %w", writeErr)
		}
		s.catalog = seed
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", dataFile, err)
	}
	if err := json.Unmarshal(raw, &s.catalog); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", dataFile, err)
	}
	if s.catalog.Products == nil {
		s.catalog.Products = map[string]models.Product{}
	}
	return s, nil
}

func defaultCatalog() (models.Catalog, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPass), bcrypt.DefaultCost)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("hashing default admin password: %w", err)
	}
	return models.Catalog{
		Site: models.Site{
			Titulo:         defaultTitle,
			Descripcion:    defaultDescription,
			Telefono:       defaultPhone,
			CartButtonText: defaultCartButton,
		},
		Categories: []string{"Tecnologia", "Diseno"},
		Products:   map[string]models.Product{},
		Admin: models.AdminCredentials{
			Username:     defaultAdminUser,
			PasswordHash: string(hash),
		},
	}, nil
}

// Site returns the site configuration block.
func (s *Store) Site() models.Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Site
}

// Admin returns the stored admin credential.
func (s *Store) Admin() models.AdminCredentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Admin
}

// Categories returns a copy of the registered category list.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.catalog.Categories))
	copy(out, s.catalog.Categories)
	return out
}

// Products returns all products. Order is unspecified.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0, len(s.catalog.Products))
	for _, p := range s.catalog.Products {
		out = append(out, p)
	}
	return out
}

// Product returns the product with the given id or ErrProductNotFound.
func (s *Store) Product(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.catalog.Products[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Search filters products by a case-insensitive substring match of q against
// nombre+descripcion and an exact category match. Empty q matches every
// product, empty categoria matches every category; the two compose with AND.
func (s *Store) Search(q, categoria string) []models.Product {
	q = strings.ToLower(strings.TrimSpace(q))
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Product{}
	for _, p := range s.catalog.Products {
		if q != "" && !strings.Contains(strings.ToLower(p.Nombre)+strings.ToLower(p.Descripcion), q) {
			continue
		}
		if categoria != "" && p.Categoria != categoria {
			continue
		}
		out = append(out, p)
	}
	return out
}

// PutProduct inserts or replaces a product and persists the catalog. The
// product's category is registered if it is not in the category list yet.
func (s *Store) PutProduct(p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.cloneLocked()
	next.Products[p.ID] = p
	registerCategoryIfAbsent(&next, p.Categoria)
	return s.commitLocked(next)
}

// DeleteProduct removes the product entry. Backing image files are the
// caller's problem; the store only owns the document.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.catalog.Products[id]; !ok {
		return ErrProductNotFound
	}
	next := s.cloneLocked()
	delete(next.Products, id)
	return s.commitLocked(next)
}

// RemoveImage drops one filename from the product's image list, preserving
// the order of the remaining entries.
func (s *Store) RemoveImage(id, filename string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.catalog.Products[id]
	if !ok {
		return ErrProductNotFound
	}
	idx := -1
	for i, img := range p.Images {
		if img == filename {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrImageNotFound
	}
	next := s.cloneLocked()
	np := next.Products[id]
	np.Images = append(append([]string{}, p.Images[:idx]...), p.Images[idx+1:]...)
	next.Products[id] = np
	return s.commitLocked(next)
}

// SetCategories replaces the registered category list wholesale. Products
// whose category is dropped keep their old category string; nothing cascades.
func (s *Store) SetCategories(cats []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.cloneLocked()
	next.Categories = append([]string{}, cats...)
	return s.commitLocked(next)
}

// VerifyAdmin checks the username and the password against the stored salted
// hash. Plaintext is never stored or compared directly.
func (s *Store) VerifyAdmin(username, password string) bool {
	cred := s.Admin()
	if username != cred.Username {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) == nil
}

// cloneLocked deep-copies the catalog so a mutation can be prepared and
// persisted before it replaces the in-memory document.
func (s *Store) cloneLocked() models.Catalog {
	next := s.catalog
	next.Categories = append([]string{}, s.catalog.Categories...)
	next.Products = make(map[string]models.Product, len(s.catalog.Products))
	for id, p := range s.catalog.Products {
		cp := p
		cp.Images = append([]string{}, p.Images...)
		next.Products[id] = cp
	}
	return next
}

// commitLocked persists the prepared document and, only on success, makes it
// the live one. A serialization or write failure leaves memory untouched.
func (s *Store) commitLocked(next models.Catalog) error {
	if err := writeJSONFile(s.dataFile, next); err != nil {
		return fmt.Errorf("saving catalog: %w", err)
	}
	s.catalog = next
	return nil
}

func registerCategoryIfAbsent(c *models.Catalog, name string) {
	if name == "" {
		return
	}
	for _, existing := range c.Categories {
		if existing == name {
			return
		}
	}
	c.Categories = append(c.Categories, name)
}

// writeJSONFile serializes v with the same 2-space indent the original files
// carry and replaces path via write-to-temp-then-rename, so a reader never
// observes a partial document.
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
