package models

// Site is the singleton site configuration block of the catalog document.
type Site struct {
	Titulo         string `json:"titulo"`
	Descripcion    string `json:"descripcion"`
	Telefono       string `json:"telefono"`
	CartButtonText string `json:"cart_button_text"`
}

// AdminCredentials holds the single admin account. Only the salted hash is
// ever persisted or compared.
type AdminCredentials struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}

// Catalog is the whole persisted data.json document: site config, the
// registered category list, the product map keyed by product id, and the
// admin credential.
type Catalog struct {
	Site       Site               `json:"site"`
	Categories []string           `json:"categories"`
	Products   map[string]Product `json:"products"`
	Admin      AdminCredentials   `json:"admin"`
}
