package order

import "github.com/shopspring/decimal"

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"

	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// Item is one priced line frozen into an order at checkout time.
type Item struct {
	ProductID   int             `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

// BillingAddress is the record captured by the checkout form.
type BillingAddress struct {
	FullName    string `json:"fullName"`
	CompanyName string `json:"companyName,omitempty"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode,omitempty"`
	Country     string `json:"country"`
}

// Order is a completed purchase with its full price breakdown.
type Order struct {
	OrderID       int             `json:"orderId"`
	UserID        int             `json:"userId"`
	Items         []Item          `json:"items"`
	PromoCode     string          `json:"promoCode,omitempty"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"paymentStatus"`
	Billing       BillingAddress  `json:"billingAddress"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}
