package cart

import (
	"encoding/json"

	"github.com/jjp1114/studio-store-backend/internal/promo"
)

// Snapshot is the durable form of a cart: lines and the applied promotion
// code. Visibility and the derived totals are intentionally left out; totals
// are recomputed on restore and visibility is per-tab UI state.
type Snapshot struct {
	Lines     []Line `json:"lines"`
	PromoCode string `json:"promoCode,omitempty"`
}

func snapshotOf(s State) Snapshot {
	snap := Snapshot{Lines: copyLines(s.Lines)}
	if s.Promo != nil {
		snap.PromoCode = s.Promo.Code
	}
	return snap
}

// restore rebuilds a state by replaying the snapshot through the same
// intents live mutations use, so a restored cart satisfies the same
// invariants as one built interactively. Unparsable data yields an empty
// cart and no error.
func restore(raw []byte) State {
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return emptyState()
	}

	s := emptyState()
	for _, l := range snap.Lines {
		s = apply(s, addItem{Product: l.Product})
		if l.Quantity != 1 {
			s = apply(s, updateQuantity{ProductID: l.Product.ID, Quantity: l.Quantity})
		}
	}
	s = recomputeTotals(s)

	// the promotion was granted in a previous session; re-attach it from the
	// catalog without repeating the eligibility gate
	if snap.PromoCode != "" {
		if p, ok := promo.Lookup(snap.PromoCode); ok {
			s = recomputeTotals(apply(s, applyPromo{Promotion: p}))
		}
	}
	return s
}
