package order

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jjp1114/studio-store-backend/internal/promo"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrInvalidBilling = errors.New("billing address is incomplete")
)

// taxRate is the VAT applied on the discounted subtotal.
var taxRate = decimal.RequireFromString("0.15")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit turns a priced cart snapshot into a completed order. Totals are
// recomputed here from the items rather than trusted from the client: the
// promotion discount uses the same rules as the cart, then 15% tax applies
// on the discounted subtotal. Payment capture is delegated; orders complete
// immediately.
func (s *Service) Submit(userID int, items []Item, promoCode string, billing BillingAddress) (Order, error) {
	if userID <= 0 {
		return Order{}, errors.New("invalid user")
	}
	if len(items) == 0 {
		return Order{}, ErrEmptyCart
	}
	if billing.FullName == "" || billing.Email == "" || billing.Address == "" || billing.City == "" || billing.Country == "" {
		return Order{}, ErrInvalidBilling
	}

	subtotal := decimal.Zero
	for i := range items {
		items[i].TotalPrice = items[i].UnitPrice.Mul(decimal.NewFromInt(int64(items[i].Quantity)))
		subtotal = subtotal.Add(items[i].TotalPrice)
	}

	discount := decimal.Zero
	appliedCode := ""
	if promoCode != "" {
		if p, ok := promo.Resolve(promoCode, subtotal); ok {
			discount = p.Discount(subtotal)
			if discount.GreaterThan(subtotal) {
				discount = subtotal
			}
			appliedCode = p.Code
		}
	}

	taxed := subtotal.Sub(discount)
	tax := taxed.Mul(taxRate)
	now := time.Now().UTC().Format(time.RFC3339)

	ord := Order{
		UserID:        userID,
		Items:         items,
		PromoCode:     appliedCode,
		Subtotal:      subtotal,
		Discount:      discount,
		Tax:           tax,
		Total:         taxed.Add(tax),
		Currency:      "EUR",
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
		Billing:       billing,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ord)
	if err != nil {
		return Order{}, err
	}

	// payment webhook stand-in: mark paid right away
	if err := s.repo.UpdateStatus(created.OrderID, StatusCompleted, PaymentPaid); err != nil {
		return Order{}, err
	}
	created.Status = StatusCompleted
	created.PaymentStatus = PaymentPaid
	return created, nil
}

func (s *Service) ListByUser(userID int) ([]Order, error) {
	if userID <= 0 {
		return nil, errors.New("invalid user")
	}
	return s.repo.ListByUser(userID)
}
