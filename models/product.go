package models

// Product is one catalog entry. JSON field names match the persisted
// data.json document, which predates this service and must stay readable
// by it.
type Product struct {
	ID          string   `json:"id"`
	Nombre      string   `json:"nombre"`
	Precio      string   `json:"precio"` // decimal as string, may carry thousands separators
	Categoria   string   `json:"categoria"`
	Descripcion string   `json:"descripcion"`
	Images      []string `json:"images"`
	Created     int64    `json:"created"`
}
