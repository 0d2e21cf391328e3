package license

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive  = "active"
	StatusExpired = "expired"
)

// License is one activation grant for one purchased unit of a product.
type License struct {
	ID          int    `json:"licenseId"`
	OrderID     int    `json:"orderId"`
	UserID      int    `json:"userId"`
	ProductID   int    `json:"productId"`
	ProductName string `json:"productName"`
	Key         string `json:"licenseKey"`
	Status      string `json:"status"`
	Activations string `json:"activations,omitempty"`
	Version     string `json:"version,omitempty"`
	ExpiresAt   string `json:"expiresAt,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// NewKey builds a license key like "TP-2026-1A2B-3C4D-5E6F": a prefix
// derived from the product name, the issue year, and three uuid-derived
// groups.
func NewKey(productName string, issuedAt time.Time) string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return fmt.Sprintf("%s-%d-%s-%s-%s",
		keyPrefix(productName), issuedAt.Year(), raw[0:4], raw[4:8], raw[8:12])
}

// keyPrefix takes the initials of up to three words of the product name,
// falling back to "LIC" for unusable names.
func keyPrefix(productName string) string {
	var b strings.Builder
	for _, word := range strings.Fields(productName) {
		for _, r := range word {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				b.WriteRune(r)
				break
			}
		}
		if b.Len() == 3 {
			break
		}
	}
	if b.Len() == 0 {
		return "LIC"
	}
	return strings.ToUpper(b.String())
}
