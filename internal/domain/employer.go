package domain

import "context"

// Employer is the party requesting interviews.
// swagger:model Employer
type Employer struct {
	ID string `json:"id"`
	Contact
}

// NewEmployer returns a new Employer. ID is assigned by the service on create.
func NewEmployer(name string, email, phone *string) *Employer {
	return &Employer{Contact: Contact{Name: name, Email: email, Phone: phone}}
}

// EmployerRepository defines the interface for employer storage.
type EmployerRepository interface {
	ContactRepository[Employer]
}

// EmployerService defines the business logic for employers.
type EmployerService interface {
	Create(ctx context.Context, e *Employer) error
	GetByID(ctx context.Context, id string) (*Employer, error)
	List(ctx context.Context, params PaginationParams) ([]*Employer, int, error)
	Update(ctx context.Context, e *Employer) error
	Delete(ctx context.Context, id string) error
}
