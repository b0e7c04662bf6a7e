// Package share renders the cart as a WhatsApp shopping list. Purely
// presentational: it reads the aggregate, never mutates it.
package share

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/kirana-store/kirana/internal/cart"
	"github.com/kirana-store/kirana/internal/units"
)

// Options controls the rendered list.
type Options struct {
	StoreName  string
	ShowPrices bool
}

// BuildMessage renders the numbered list. Weight and volume lines carry
// the split quantity text ("1 kg 200 g"); count lines print the bare
// number, matching how a shopping list is actually read out. The trailing
// "Total Items" is the aggregate's summed quantity, the list total, not
// the cart badge's distinct-line count.
func BuildMessage(agg *cart.Aggregate, opts Options) string {
	var b strings.Builder
	b.WriteString("🛒 *My Grocery List*\n\n")

	for i, line := range agg.Lines() {
		if line.Product == nil {
			continue
		}
		var quantityText string
		switch units.KindOf(line.Product.Unit) {
		case units.KindWeight, units.KindVolume:
			quantityText = units.FormatBaseAmount(line.Product.Unit, line.Quantity)
		default:
			quantityText = strconv.FormatInt(line.Quantity, 10)
		}
		fmt.Fprintf(&b, "%d. *%s* : %s\n", i+1, line.Product.Name, quantityText)
	}

	b.WriteString("\n━━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(&b, "*Total Items: %d*\n", agg.TotalQuantity())
	if opts.ShowPrices {
		fmt.Fprintf(&b, "*Total: ₹%s*\n\n", agg.TotalPrice().Round(2).StringFixed(2))
	} else {
		b.WriteString("\n")
	}

	storeName := opts.StoreName
	if storeName == "" {
		storeName = "Kirana Store"
	}
	fmt.Fprintf(&b, "Generated from %s 🛍️", storeName)
	return b.String()
}

// ShareURL builds the wa.me link that opens WhatsApp with the message
// prefilled. Phone may be empty for a recipient-less share.
func ShareURL(phone, message string) string {
	base := "https://wa.me/"
	if p := strings.TrimLeft(strings.TrimSpace(phone), "+"); p != "" {
		base += p
	}
	return base + "?text=" + url.QueryEscape(message)
}
