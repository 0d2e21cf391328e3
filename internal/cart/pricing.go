package cart

import "github.com/shopspring/decimal"

// recomputeTotals derives subtotal, discount and total from the lines and
// the applied promotion. It runs synchronously after every mutation so
// callers never observe stale totals.
//
// The promotion's minimum-amount eligibility is deliberately not re-checked
// here: it is evaluated once, when the code is applied. A promotion granted
// at a higher subtotal keeps discounting after lines are removed.
func recomputeTotals(s State) State {
	subtotal := decimal.Zero
	for _, l := range s.Lines {
		subtotal = subtotal.Add(l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	discount := decimal.Zero
	if s.Promo != nil {
		discount = s.Promo.Discount(subtotal)
		// a fixed discount larger than the subtotal zeroes the total,
		// it never goes negative
		if discount.GreaterThan(subtotal) {
			discount = subtotal
		}
	}

	s.Subtotal = subtotal
	s.Discount = discount
	s.Total = subtotal.Sub(discount)
	if s.Total.IsNegative() {
		s.Total = decimal.Zero
	}
	return s
}
