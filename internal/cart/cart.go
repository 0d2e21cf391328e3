package cart

import (
	"github.com/shopspring/decimal"

	"github.com/jjp1114/studio-store-backend/internal/product"
	"github.com/jjp1114/studio-store-backend/internal/promo"
)

// Line is one distinct product in the cart with its quantity. A cart never
// holds two lines for the same product id; repeated adds accumulate on the
// existing line.
type Line struct {
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// State is the cart aggregate. Subtotal, Discount and Total are derived:
// they are recomputed from Lines and Promo after every mutation and never
// set directly.
type State struct {
	Lines    []Line           `json:"lines"`
	IsOpen   bool             `json:"isOpen"`
	Promo    *promo.Promotion `json:"promo,omitempty"`
	Subtotal decimal.Decimal  `json:"subtotal"`
	Discount decimal.Decimal  `json:"discount"`
	Total    decimal.Decimal  `json:"total"`
}

func emptyState() State {
	return recomputeTotals(State{Lines: []Line{}})
}

// ItemCount is the sum of all line quantities.
func (s State) ItemCount() int {
	n := 0
	for _, l := range s.Lines {
		n += l.Quantity
	}
	return n
}

// IsInCart reports whether a line for the product exists.
func (s State) IsInCart(productID int) bool {
	for _, l := range s.Lines {
		if l.Product.ID == productID {
			return true
		}
	}
	return false
}

// Intents. Each one transforms the previous state into a new state through
// apply; eligibility checks for promotions happen before the intent is
// built, so apply itself never fails.
type intent interface{ isIntent() }

type addItem struct{ Product product.Product }
type removeItem struct{ ProductID int }
type updateQuantity struct {
	ProductID int
	Quantity  int
}
type clearCart struct{}
type toggleVisibility struct{}
type applyPromo struct{ Promotion promo.Promotion }
type removePromo struct{}

func (addItem) isIntent()          {}
func (removeItem) isIntent()       {}
func (updateQuantity) isIntent()   {}
func (clearCart) isIntent()        {}
func (toggleVisibility) isIntent() {}
func (applyPromo) isIntent()       {}
func (removePromo) isIntent()      {}

// apply is the pure reducer over the cart aggregate. It returns the next
// state without touching the derived totals; recomputeTotals runs right
// after, inside the same transaction.
func apply(s State, in intent) State {
	switch in := in.(type) {
	case addItem:
		for i, l := range s.Lines {
			if l.Product.ID == in.Product.ID {
				lines := copyLines(s.Lines)
				lines[i].Quantity++
				s.Lines = lines
				return s
			}
		}
		lines := copyLines(s.Lines)
		s.Lines = append(lines, Line{Product: in.Product, Quantity: 1})
		return s

	case removeItem:
		s.Lines = dropLine(s.Lines, in.ProductID)
		return s

	case updateQuantity:
		if in.Quantity <= 0 {
			s.Lines = dropLine(s.Lines, in.ProductID)
			return s
		}
		lines := copyLines(s.Lines)
		for i, l := range lines {
			if l.Product.ID == in.ProductID {
				lines[i].Quantity = in.Quantity
				break
			}
		}
		s.Lines = lines
		return s

	case clearCart:
		s.Lines = []Line{}
		s.Promo = nil
		return s

	case toggleVisibility:
		s.IsOpen = !s.IsOpen
		return s

	case applyPromo:
		p := in.Promotion
		s.Promo = &p
		return s

	case removePromo:
		s.Promo = nil
		return s
	}
	return s
}

func copyLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

func dropLine(lines []Line, productID int) []Line {
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.Product.ID != productID {
			out = append(out, l)
		}
	}
	return out
}
