package promo

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestResolve_CaseInsensitive(t *testing.T) {
	for _, code := range []string{"WELCOME20", "welcome20", "WeLcOmE20"} {
		p, ok := Resolve(code, decimal.NewFromInt(60))
		if !ok {
			t.Fatalf("expected %q to resolve", code)
		}
		if p.Code != "WELCOME20" {
			t.Fatalf("expected catalog code WELCOME20, got %q", p.Code)
		}
	}
}

func TestResolve_UnknownCode(t *testing.T) {
	if _, ok := Resolve("NOPE", decimal.NewFromInt(1000)); ok {
		t.Fatal("expected unknown code to be rejected")
	}
}

func TestResolve_MinimumAmount(t *testing.T) {
	// 40 is below WELCOME20's minimum of 50
	if _, ok := Resolve("WELCOME20", decimal.NewFromInt(40)); ok {
		t.Fatal("expected WELCOME20 to be ineligible below its minimum")
	}
	// exactly at the minimum is eligible
	if _, ok := Resolve("WELCOME20", decimal.NewFromInt(50)); !ok {
		t.Fatal("expected WELCOME20 to be eligible at its minimum")
	}
}

func TestDiscount_PercentageWithCap(t *testing.T) {
	p, ok := Lookup("WELCOME20")
	if !ok {
		t.Fatal("WELCOME20 missing from catalog")
	}

	d := p.Discount(decimal.NewFromInt(60))
	if !d.Equal(decimal.NewFromInt(12)) {
		t.Fatalf("expected discount 12, got %s", d)
	}

	// 20% of 1000 is 200, capped at 100
	d = p.Discount(decimal.NewFromInt(1000))
	if !d.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected capped discount 100, got %s", d)
	}
}

func TestDiscount_PercentageWithoutCap(t *testing.T) {
	p, ok := Lookup("FIRST30")
	if !ok {
		t.Fatal("FIRST30 missing from catalog")
	}
	d := p.Discount(decimal.NewFromInt(200))
	if !d.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("expected discount 60, got %s", d)
	}
}

func TestDiscount_Fixed(t *testing.T) {
	p, ok := Lookup("SAVE50")
	if !ok {
		t.Fatal("SAVE50 missing from catalog")
	}
	d := p.Discount(decimal.NewFromInt(120))
	if !d.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected discount 50, got %s", d)
	}
}
