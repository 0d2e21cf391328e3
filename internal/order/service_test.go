package order

import (
	"testing"

	"github.com/shopspring/decimal"
)

func validBilling() BillingAddress {
	return BillingAddress{
		FullName: "Marie Dubois",
		Email:    "marie@example.com",
		Address:  "12 rue des Lilas",
		City:     "Lyon",
		Country:  "France",
	}
}

func TestSubmit_ComputesTaxOnDiscountedSubtotal(t *testing.T) {
	svc := NewService(NewInMemoryRepository())

	items := []Item{
		{ProductID: 1, ProductName: "TaskFlow Pro", UnitPrice: decimal.NewFromInt(60), Quantity: 2},
	}
	// subtotal 120, SAVE50 applies: discount 50, tax 15% of 70 = 10.5
	ord, err := svc.Submit(42, items, "SAVE50", validBilling())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if !ord.Subtotal.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("expected subtotal 120, got %s", ord.Subtotal)
	}
	if !ord.Discount.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected discount 50, got %s", ord.Discount)
	}
	if !ord.Tax.Equal(decimal.RequireFromString("10.5")) {
		t.Fatalf("expected tax 10.5, got %s", ord.Tax)
	}
	if !ord.Total.Equal(decimal.RequireFromString("80.5")) {
		t.Fatalf("expected total 80.5, got %s", ord.Total)
	}
	if ord.Status != StatusCompleted || ord.PaymentStatus != PaymentPaid {
		t.Fatalf("expected completed/paid order, got %s/%s", ord.Status, ord.PaymentStatus)
	}
	if !ord.Items[0].TotalPrice.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("expected line total 120, got %s", ord.Items[0].TotalPrice)
	}
}

func TestSubmit_IneligiblePromoIgnored(t *testing.T) {
	svc := NewService(NewInMemoryRepository())

	items := []Item{{ProductID: 1, ProductName: "SiteBuilder Lite", UnitPrice: decimal.NewFromInt(40), Quantity: 1}}
	// SAVE50 needs subtotal 100; the order still goes through undiscounted
	ord, err := svc.Submit(42, items, "SAVE50", validBilling())
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !ord.Discount.Equal(decimal.Zero) {
		t.Fatalf("expected no discount, got %s", ord.Discount)
	}
	if ord.PromoCode != "" {
		t.Fatalf("expected no promo recorded, got %q", ord.PromoCode)
	}
	if !ord.Total.Equal(decimal.NewFromInt(46)) { // 40 + 15% tax
		t.Fatalf("expected total 46, got %s", ord.Total)
	}
}

func TestSubmit_Validation(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	items := []Item{{ProductID: 1, UnitPrice: decimal.NewFromInt(10), Quantity: 1}}

	if _, err := svc.Submit(42, nil, "", validBilling()); err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if _, err := svc.Submit(42, items, "", BillingAddress{FullName: "X"}); err != ErrInvalidBilling {
		t.Fatalf("expected ErrInvalidBilling, got %v", err)
	}
	if _, err := svc.Submit(0, items, "", validBilling()); err == nil {
		t.Fatal("expected error for invalid user")
	}
}

func TestListByUser_OnlyOwnOrders(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo)
	items := []Item{{ProductID: 1, ProductName: "SecureVault", UnitPrice: decimal.NewFromInt(90), Quantity: 1}}

	if _, err := svc.Submit(1, items, "", validBilling()); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := svc.Submit(2, items, "", validBilling()); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	mine, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != 1 {
		t.Fatalf("expected exactly one order for user 1, got %+v", mine)
	}
}
