package order

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

func TestPostgresCreate_ReturnsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(7))

	ord := Order{
		UserID:   42,
		Items:    []Item{{ProductID: 1, ProductName: "TaskFlow Pro", UnitPrice: decimal.RequireFromString("49.99"), Quantity: 2, TotalPrice: decimal.RequireFromString("99.98")}},
		Subtotal: decimal.RequireFromString("99.98"),
		Discount: decimal.Zero,
		Tax:      decimal.RequireFromString("14.997"),
		Total:    decimal.RequireFromString("114.977"),
		Currency: "EUR",
		Status:   StatusPending,
		Billing:  BillingAddress{FullName: "Marie Dubois", Email: "marie@example.com", Address: "12 rue des Lilas", City: "Lyon", Country: "France"},
	}

	created, err := repo.Create(ord)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.OrderID != 7 {
		t.Fatalf("expected order id 7, got %d", created.OrderID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdateStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(StatusCompleted, PaymentPaid, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdateStatus(99, StatusCompleted, PaymentPaid); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresListByUser_UnmarshalsItemsAndBilling(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"order_id", "user_id", "items", "promo_code", "subtotal", "discount", "tax", "total", "currency", "status", "payment_status", "billing", "created_at", "updated_at"}).
		AddRow(7, 42,
			[]byte(`[{"productId":1,"productName":"TaskFlow Pro","unitPrice":"49.99","quantity":2,"totalPrice":"99.98"}]`),
			"WELCOME20", "99.98", "19.996", "11.9976", "91.9816", "EUR", StatusCompleted, PaymentPaid,
			[]byte(`{"fullName":"Marie Dubois","email":"marie@example.com","address":"12 rue des Lilas","city":"Lyon","country":"France"}`),
			"2026-01-02T10:00:00Z", "2026-01-02T10:00:00Z")
	mock.ExpectQuery("FROM orders").WithArgs(42).WillReturnRows(rows)

	orders, err := repo.ListByUser(42)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if len(orders[0].Items) != 1 || orders[0].Items[0].ProductName != "TaskFlow Pro" {
		t.Fatalf("unexpected items %+v", orders[0].Items)
	}
	if orders[0].Billing.City != "Lyon" {
		t.Fatalf("unexpected billing %+v", orders[0].Billing)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
