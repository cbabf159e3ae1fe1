package domain

import "context"

// Candidate is the party being interviewed.
// swagger:model Candidate
type Candidate struct {
	ID string `json:"id"`
	Contact
}

// NewCandidate returns a new Candidate. ID is assigned by the service on create.
func NewCandidate(name string, email, phone *string) *Candidate {
	return &Candidate{Contact: Contact{Name: name, Email: email, Phone: phone}}
}

// CandidateRepository defines the interface for candidate storage.
type CandidateRepository interface {
	ContactRepository[Candidate]
}

// CandidateService defines the business logic for candidates.
type CandidateService interface {
	Create(ctx context.Context, c *Candidate) error
	GetByID(ctx context.Context, id string) (*Candidate, error)
	List(ctx context.Context, params PaginationParams) ([]*Candidate, int, error)
	Update(ctx context.Context, c *Candidate) error
	Delete(ctx context.Context, id string) error
}
