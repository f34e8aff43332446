package models

// Customer is the buyer info captured at checkout.
type Customer struct {
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}

// Order is one confirmed checkout. Orders are immutable once written: line
// items embed product snapshots by value, so later catalog edits or
// deletions never alter order history. JSON field names match the persisted
// orders.json log.
type Order struct {
	ID      string     `json:"id"`
	Time    string     `json:"time"`
	Cliente Customer   `json:"cliente"`
	Items   []LineItem `json:"items"`
	Total   float64    `json:"total"`
}
