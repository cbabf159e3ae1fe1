package postgres

import (
	"database/sql"

	"interviewscheduler/internal/domain"
)

// NewCandidateRepository returns a domain.CandidateRepository implemented with Postgres.
func NewCandidateRepository(db *sql.DB) domain.CandidateRepository {
	return &contactRepository[domain.Candidate]{
		DB:       db,
		table:    "candidates",
		fkColumn: "candidate_id",
		fields: func(c *domain.Candidate) (*string, *domain.Contact) {
			return &c.ID, &c.Contact
		},
	}
}
