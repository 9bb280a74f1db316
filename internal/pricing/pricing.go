package pricing

import (
	"fmt"
	"regexp"
	"strconv"
)

// Flat rates; there is no jurisdiction or carrier logic.
const (
	FreeShippingThreshold = 50.00
	ShippingFlatRate      = 9.99
	TaxRate               = 0.08
)

var priceRe = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// Line is one cart row resolved against the catalog.
type Line struct {
	UnitPrice float64
	Quantity  int
}

// Totals holds the checkout amounts. Values keep full float precision;
// rounding to cents happens only when formatting for the wire.
type Totals struct {
	Subtotal float64
	Shipping float64
	Tax      float64
	Total    float64
}

// Calculate derives order totals from resolved cart lines. It is
// deterministic and never cached: callers recompute whenever the cart
// changes, and the result is frozen only inside Order.Total at checkout.
func Calculate(lines []Line) Totals {
	var subtotal float64
	for _, l := range lines {
		subtotal += l.UnitPrice * float64(l.Quantity)
	}

	shipping := ShippingFlatRate
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * TaxRate

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// ParsePrice validates and parses a decimal price string: non-negative,
// at most two fraction digits.
func ParsePrice(s string) (float64, error) {
	if !priceRe.MatchString(s) {
		return 0, fmt.Errorf("invalid price %q: expected a non-negative decimal with at most 2 fraction digits", s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return v, nil
}

// FormatAmount renders an amount as a 2-digit decimal string for the wire.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
