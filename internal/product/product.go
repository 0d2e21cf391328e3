package product

import "github.com/shopspring/decimal"

// Product is one software title in the catalog. Records are immutable from
// the cart's point of view: the storefront only reads them. OldPrice is the
// struck-through display price and plays no part in cart math.
type Product struct {
	ID           int              `json:"id"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	Price        decimal.Decimal  `json:"price"`
	OldPrice     *decimal.Decimal `json:"oldPrice,omitempty"`
	Rating       float64          `json:"rating"`
	Reviews      int              `json:"reviews"`
	Description  string           `json:"description"`
	Image        string           `json:"image,omitempty"`
	LicenseTerms string           `json:"licenseTerms,omitempty"`
	Activations  string           `json:"activations,omitempty"`
	Support      string           `json:"support,omitempty"`
	Version      string           `json:"version,omitempty"`
	Popular      bool             `json:"popular"`
	Featured     bool             `json:"featured"`
}
