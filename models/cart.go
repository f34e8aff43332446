package models

// Cart maps product id -> quantity for one browser session. Absent entries
// mean zero. Keys are not validated against the catalog on write; stale ids
// are skipped when the cart view is computed.
type Cart map[string]int

// LineItem is one resolved cart line: the product, the carted quantity and
// the computed subtotal. Inside an Order the embedded Product is a snapshot
// taken at checkout time and never updated afterwards.
type LineItem struct {
	Product  Product `json:"product"`
	Qty      int     `json:"qty"`
	Subtotal float64 `json:"subtotal"`
}
