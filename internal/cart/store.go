package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jjp1114/studio-store-backend/internal/kv"
	"github.com/jjp1114/studio-store-backend/internal/product"
	"github.com/jjp1114/studio-store-backend/internal/promo"
)

const snapshotKeyPrefix = "cart:"

// Store is the single owner of cart state, keyed by session id. Every
// operation is one transaction under the lock: mutate, recompute totals,
// snapshot. Snapshot write failures are logged and swallowed; the in-memory
// state stays authoritative.
type Store struct {
	mu        sync.Mutex
	carts     map[string]State
	snapshots kv.Store
	log       zerolog.Logger
}

func NewStore(snapshots kv.Store, log zerolog.Logger) *Store {
	return &Store{
		carts:     make(map[string]State),
		snapshots: snapshots,
		log:       log,
	}
}

// load returns the in-memory state for the session, hydrating it from the
// snapshot store on first touch. Must be called with the lock held.
func (s *Store) load(ctx context.Context, sessionID string) State {
	if st, ok := s.carts[sessionID]; ok {
		return st
	}

	raw, found, err := s.snapshots.Get(ctx, snapshotKeyPrefix+sessionID)
	if err != nil {
		s.log.Warn().Err(err).Str("session", sessionID).Msg("cart snapshot read failed")
		return emptyState()
	}
	if !found {
		return emptyState()
	}
	return restore(raw)
}

func (s *Store) persist(ctx context.Context, sessionID string, st State) {
	raw, err := json.Marshal(snapshotOf(st))
	if err != nil {
		s.log.Warn().Err(err).Str("session", sessionID).Msg("cart snapshot encode failed")
		return
	}
	if err := s.snapshots.Set(ctx, snapshotKeyPrefix+sessionID, raw); err != nil {
		s.log.Warn().Err(err).Str("session", sessionID).Msg("cart snapshot write failed")
	}
}

func (s *Store) dispatch(ctx context.Context, sessionID string, in intent) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := recomputeTotals(apply(s.load(ctx, sessionID), in))
	s.carts[sessionID] = st
	s.persist(ctx, sessionID, st)
	return st
}

// Get returns the current state without mutating it.
func (s *Store) Get(ctx context.Context, sessionID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(ctx, sessionID)
	s.carts[sessionID] = st
	return st
}

func (s *Store) AddItem(ctx context.Context, sessionID string, p product.Product) State {
	return s.dispatch(ctx, sessionID, addItem{Product: p})
}

func (s *Store) RemoveItem(ctx context.Context, sessionID string, productID int) State {
	return s.dispatch(ctx, sessionID, removeItem{ProductID: productID})
}

func (s *Store) UpdateQuantity(ctx context.Context, sessionID string, productID, quantity int) State {
	return s.dispatch(ctx, sessionID, updateQuantity{ProductID: productID, Quantity: quantity})
}

func (s *Store) Clear(ctx context.Context, sessionID string) State {
	return s.dispatch(ctx, sessionID, clearCart{})
}

func (s *Store) ToggleVisibility(ctx context.Context, sessionID string) State {
	return s.dispatch(ctx, sessionID, toggleVisibility{})
}

// ApplyPromoCode resolves the code against the current subtotal and applies
// it when eligible. On failure the state is untouched; a previously applied
// promotion stays applied.
func (s *Store) ApplyPromoCode(ctx context.Context, sessionID, code string) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.load(ctx, sessionID)
	p, ok := promo.Resolve(code, st.Subtotal)
	if !ok {
		s.carts[sessionID] = st
		return st, false
	}

	st = recomputeTotals(apply(st, applyPromo{Promotion: p}))
	s.carts[sessionID] = st
	s.persist(ctx, sessionID, st)
	return st, true
}

func (s *Store) RemovePromoCode(ctx context.Context, sessionID string) State {
	return s.dispatch(ctx, sessionID, removePromo{})
}

func (s *Store) ItemCount(ctx context.Context, sessionID string) int {
	return s.Get(ctx, sessionID).ItemCount()
}

func (s *Store) IsInCart(ctx context.Context, sessionID string, productID int) bool {
	return s.Get(ctx, sessionID).IsInCart(productID)
}
