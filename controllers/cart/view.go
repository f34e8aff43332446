package cartControllers

import (
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/models"
	"github.com/CarlosArbeyBuritica/nexso-nex.innovation/store"
)

// ComputeView resolves a stored cart against the current catalog. Entries
// whose product has been deleted are dropped from the computed view (the
// stored cart keeps them); a line whose price no longer parses is skipped
// with a diagnostic rather than failing the whole view. The total is the sum
// of the surviving subtotals. Lines are ordered by product id so identical
// carts always produce the same view and the same persisted order.
func ComputeView(st *store.Store, cart models.Cart) ([]models.LineItem, float64) {
	items := []models.LineItem{}
	total := 0.0
	for pid, qty := range cart {
		p, err := st.Product(pid)
		if err != nil {
			continue
		}
		price, err := ParsePrice(p.Precio)
		if err != nil {
			log.Printf("⚠️ skipping cart line %s: bad price %q: %v", pid, p.Precio, err)
			continue
		}
		subtotal := price * float64(qty)
		items = append(items, models.LineItem{Product: p, Qty: qty, Subtotal: subtotal})
		total += subtotal
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Product.ID < items[j].Product.ID
	})
	return items, total
}

// ParsePrice reads a catalog price string, tolerating thousands separators.
func ParsePrice(precio string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(precio), ",", ""), 64)
}
