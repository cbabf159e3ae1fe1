package postgres

import (
	"database/sql"

	"interviewscheduler/internal/domain"
)

// NewEmployerRepository returns a domain.EmployerRepository implemented with Postgres.
func NewEmployerRepository(db *sql.DB) domain.EmployerRepository {
	return &contactRepository[domain.Employer]{
		DB:       db,
		table:    "employers",
		fkColumn: "employer_id",
		fields: func(e *domain.Employer) (*string, *domain.Contact) {
			return &e.ID, &e.Contact
		},
	}
}
