package promo

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Kind is the discount strategy of a promotion. The set is closed; values
// arriving from outside (persisted snapshots, request payloads) must be one
// of the constants below.
type Kind string

const (
	KindPercentage Kind = "percentage"
	KindFixed      Kind = "fixed"
)

// Promotion is a named discount rule. Codes are matched case-insensitively.
// MinAmount is the smallest subtotal the code can be applied to (zero means
// no minimum). Cap limits the discount of percentage promotions; it is nil
// for fixed ones.
type Promotion struct {
	Code      string           `json:"code"`
	Kind      Kind             `json:"kind"`
	Magnitude decimal.Decimal  `json:"magnitude"`
	MinAmount decimal.Decimal  `json:"minAmount"`
	Cap       *decimal.Decimal `json:"cap,omitempty"`
}

func capOf(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

// Catalog is the fixed list of redeemable promotions. It is read-only and
// never mutated at runtime.
var Catalog = []Promotion{
	{Code: "WELCOME20", Kind: KindPercentage, Magnitude: decimal.NewFromInt(20), MinAmount: decimal.NewFromInt(50), Cap: capOf("100")},
	{Code: "SAVE50", Kind: KindFixed, Magnitude: decimal.NewFromInt(50), MinAmount: decimal.NewFromInt(100)},
	{Code: "FIRST30", Kind: KindPercentage, Magnitude: decimal.NewFromInt(30), MinAmount: decimal.NewFromInt(30)},
	{Code: "BUNDLE15", Kind: KindPercentage, Magnitude: decimal.NewFromInt(15), MinAmount: decimal.NewFromInt(80)},
}

// Lookup finds a promotion by code, case-insensitively, without checking
// eligibility. Used when re-applying a promotion that was already granted.
func Lookup(code string) (Promotion, bool) {
	for _, p := range Catalog {
		if strings.EqualFold(p.Code, code) {
			return p, true
		}
	}
	return Promotion{}, false
}

// Resolve reports whether code is redeemable against the given subtotal and
// returns the matched promotion unchanged. The discount amount is computed
// later, at totals time, not frozen here.
func Resolve(code string, subtotal decimal.Decimal) (Promotion, bool) {
	p, ok := Lookup(code)
	if !ok {
		return Promotion{}, false
	}
	if subtotal.LessThan(p.MinAmount) {
		return Promotion{}, false
	}
	return p, true
}

// Discount computes the monetary discount this promotion yields on the given
// subtotal. Fixed promotions return their magnitude as-is; clamping against
// the subtotal is the caller's job.
func (p Promotion) Discount(subtotal decimal.Decimal) decimal.Decimal {
	if p.Kind == KindFixed {
		return p.Magnitude
	}
	d := subtotal.Mul(p.Magnitude).Div(decimal.NewFromInt(100))
	if p.Cap != nil && d.GreaterThan(*p.Cap) {
		d = *p.Cap
	}
	return d
}
