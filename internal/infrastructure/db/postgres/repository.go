package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/poseidontrading/refdata-api/internal/core/domain"
)

// RowScanner abstracts *sql.Row and *sql.Rows for the mapper scan functions.
type RowScanner interface {
	Scan(dest ...any) error
}

// Mapper describes how an entity maps onto its table: the column list
// (excluding the serial id), how to scan a row back into the entity, and how
// to produce the column values for writes. One Mapper per entity is the only
// per-entity persistence code in the repository layer.
type Mapper[T any] struct {
	Table   string
	Columns []string
	Scan    func(row RowScanner) (T, error)
	Values  func(entity *T) []any
	ID      func(entity *T) int64
	SetID   func(entity *T, id int64)
}

// Repository is the generic PostgreSQL implementation of ports.Repository.
// Queries are precomputed from the mapper at construction time.
type Repository[T any] struct {
	db *sql.DB
	m  Mapper[T]

	selectAll  string
	selectByID string
	insert     string
	update     string
	remove     string
}

func NewRepository[T any](db *sql.DB, m Mapper[T]) *Repository[T] {
	cols := strings.Join(m.Columns, ", ")

	placeholders := make([]string, len(m.Columns))
	assignments := make([]string, len(m.Columns))
	for i, col := range m.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}

	return &Repository[T]{
		db:         db,
		m:          m,
		selectAll:  fmt.Sprintf("SELECT id, %s FROM %s ORDER BY id", cols, m.Table),
		selectByID: fmt.Sprintf("SELECT id, %s FROM %s WHERE id = $1", cols, m.Table),
		insert:     fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id", m.Table, cols, strings.Join(placeholders, ", ")),
		update:     fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", m.Table, strings.Join(assignments, ", "), len(m.Columns)+1),
		remove:     fmt.Sprintf("DELETE FROM %s WHERE id = $1", m.Table),
	}
}

func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, r.selectAll)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", r.m.Table, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		entity, err := r.m.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.m.Table, err)
		}
		out = append(out, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", r.m.Table, err)
	}
	return out, nil
}

func (r *Repository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	row := r.db.QueryRowContext(ctx, r.selectByID, id)
	entity, err := r.m.Scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select %s: %w", r.m.Table, err)
	}
	return &entity, nil
}

func (r *Repository[T]) Add(ctx context.Context, entity *T) error {
	var id int64
	if err := r.db.QueryRowContext(ctx, r.insert, r.m.Values(entity)...).Scan(&id); err != nil {
		return fmt.Errorf("insert %s: %w", r.m.Table, err)
	}
	r.m.SetID(entity, id)
	return nil
}

func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	args := append(r.m.Values(entity), r.m.ID(entity))
	res, err := r.db.ExecContext(ctx, r.update, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", r.m.Table, err)
	}
	return checkAffected(res, r.m.Table)
}

func (r *Repository[T]) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, r.remove, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.m.Table, err)
	}
	return checkAffected(res, r.m.Table)
}

// checkAffected turns a zero-row write into ErrNotFound so a row deleted by
// a concurrent request surfaces as a 404 rather than a silent no-op.
func checkAffected(res sql.Result, table string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected %s: %w", table, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
