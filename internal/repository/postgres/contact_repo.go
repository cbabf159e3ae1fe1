package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"interviewscheduler/internal/domain"
)

// contactRepository stores one contact table (employers or candidates).
// fields exposes the id and contact data of a T so the SQL can be shared.
type contactRepository[T any] struct {
	DB       *sql.DB
	table    string
	fkColumn string
	fields   func(*T) (*string, *domain.Contact)
}

func (r *contactRepository[T]) Create(ctx context.Context, v *T) error {
	id, c := r.fields(v)
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, email, phone)
		VALUES ($1, $2, $3, $4)
	`, r.table)
	_, err := r.DB.ExecContext(ctx, query, *id, c.Name, c.Email, c.Phone)
	if err != nil {
		if pqCode(err) == codeUniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *contactRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return r.getOne(ctx, "id", id)
}

func (r *contactRepository[T]) GetByEmail(ctx context.Context, email string) (*T, error) {
	return r.getOne(ctx, "email", email)
}

func (r *contactRepository[T]) getOne(ctx context.Context, column, value string) (*T, error) {
	query := fmt.Sprintf(`
		SELECT id, name, email, phone
		FROM %s
		WHERE %s = $1
	`, r.table, column)
	v, err := r.scan(r.DB.QueryRowContext(ctx, query, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *contactRepository[T]) List(ctx context.Context, params domain.PaginationParams) ([]*T, int, error) {
	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	query := fmt.Sprintf(`
		SELECT id, name, email, phone
		FROM %s
		ORDER BY name
	`, r.table)
	var args []any
	if limit := params.Limit(); limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, params.Offset())
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	out := make([]*T, 0)
	for rows.Next() {
		v, err := r.scan(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, v)
	}
	return out, total, rows.Err()
}

func (r *contactRepository[T]) Update(ctx context.Context, v *T) error {
	id, c := r.fields(v)
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, email = $2, phone = $3
		WHERE id = $4
	`, r.table)
	result, err := r.DB.ExecContext(ctx, query, c.Name, c.Email, c.Phone, *id)
	if err != nil {
		if pqCode(err) == codeUniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contactRepository[T]) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		if pqCode(err) == codeForeignKeyViolation {
			return domain.ErrHasInterviews
		}
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contactRepository[T]) Exists(ctx context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, r.table)
	var exists bool
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&exists)
	return exists, err
}

func (r *contactRepository[T]) HasInterviews(ctx context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM interviews WHERE %s = $1)`, r.fkColumn)
	var exists bool
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&exists)
	return exists, err
}

func (r *contactRepository[T]) Count(ctx context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, r.table)
	var n int
	err := r.DB.QueryRowContext(ctx, query).Scan(&n)
	return n, err
}

func (r *contactRepository[T]) scan(row interface{ Scan(dest ...any) error }) (*T, error) {
	v := new(T)
	id, c := r.fields(v)
	var email, phone sql.NullString
	if err := row.Scan(id, &c.Name, &email, &phone); err != nil {
		return nil, err
	}
	c.Email = nullStringPtr(email)
	c.Phone = nullStringPtr(phone)
	return v, nil
}
