package domain

import (
	"context"
	"strings"
)

// Contact holds the fields shared by employers and candidates.
type Contact struct {
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// Normalize trims the name, lowercases the email and drops blank optional fields.
func (c *Contact) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = trimOptional(c.Email)
	if c.Email != nil {
		lower := strings.ToLower(*c.Email)
		c.Email = &lower
	}
	c.Phone = trimOptional(c.Phone)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// ContactRepository is the storage contract shared by employers and candidates.
// Implementations are bound to one table, so email uniqueness is per entity type.
type ContactRepository[T any] interface {
	Create(ctx context.Context, v *T) error
	GetByID(ctx context.Context, id string) (*T, error)
	GetByEmail(ctx context.Context, email string) (*T, error)
	List(ctx context.Context, params PaginationParams) ([]*T, int, error)
	Update(ctx context.Context, v *T) error
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	HasInterviews(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}
