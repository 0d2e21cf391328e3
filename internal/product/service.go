package product

// ServiceInterface lets other packages (orders, licenses) depend on the
// product service without the concrete type.
type ServiceInterface interface {
	List() []Product
	GetByID(id int) (Product, error)
	ListByIDs(ids []int) ([]Product, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List() []Product {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListByCategory(category string) []Product {
	return s.repo.ListByCategory(category)
}

func (s *Service) ListByIDs(ids []int) ([]Product, error) {
	return s.repo.ListByIDs(ids)
}

func (s *Service) Categories() []string {
	return s.repo.Categories()
}

func (s *Service) Featured() []Product {
	return s.repo.Featured()
}
