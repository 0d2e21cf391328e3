package license

import (
	"time"
)

// IssueItem is one ordered line to grant licenses for.
type IssueItem struct {
	ProductID    int
	ProductName  string
	Quantity     int
	Activations  string
	Version      string
	LicenseTerms string
}

type ServiceInterface interface {
	IssueForOrder(orderID, userID int, items []IssueItem) ([]License, error)
	ListByUser(userID int) ([]License, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// IssueForOrder grants one license per purchased unit. Perpetual licenses
// carry no expiry; yearly terms expire one year from issuance.
func (s *Service) IssueForOrder(orderID, userID int, items []IssueItem) ([]License, error) {
	now := time.Now().UTC()
	created := now.Format(time.RFC3339)

	licenses := make([]License, 0)
	for _, item := range items {
		for i := 0; i < item.Quantity; i++ {
			l := License{
				OrderID:     orderID,
				UserID:      userID,
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Key:         NewKey(item.ProductName, now),
				Status:      StatusActive,
				Activations: item.Activations,
				Version:     item.Version,
				CreatedAt:   created,
			}
			if yearlyTerm(item.LicenseTerms) {
				l.ExpiresAt = now.AddDate(1, 0, 0).Format(time.RFC3339)
			}
			licenses = append(licenses, l)
		}
	}
	return s.repo.CreateBatch(licenses)
}

func yearlyTerm(terms string) bool {
	switch terms {
	case "Licence 1 an", "Licence annuelle":
		return true
	}
	return false
}

func (s *Service) ListByUser(userID int) ([]License, error) {
	return s.repo.ListByUser(userID)
}
