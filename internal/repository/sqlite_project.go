package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/projects/internal/db"
	"github.com/alexanderramin/projects/internal/domain"
	"github.com/shopspring/decimal"
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db db.DBTX
}

// NewSQLiteProjectRepo creates a repo over a *sql.DB or a *sql.Tx.
func NewSQLiteProjectRepo(dbtx db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: dbtx}
}

const projectColumns = `id, number, name, estimated_hours, actual_hours, difficulty, notes, created_at, updated_at`

// Create allocates the next project number and inserts p. Numbers come from
// the project_sequence counter, so a deleted project's number is never
// handed out again. Run it inside a unit of work to keep both in step.
func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	number, err := r.nextNumber(ctx)
	if err != nil {
		return err
	}

	query := `INSERT INTO projects (id, number, name, estimated_hours, actual_hours, difficulty, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		number,
		nullableStringToValue(p.Name),
		nullableHoursToValue(p.EstimatedHours),
		nullableHoursToValue(p.ActualHours),
		nullableIntToValue(p.Difficulty),
		nullableStringToValue(p.Notes),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	p.Number = number
	return nil
}

func (r *SQLiteProjectRepo) nextNumber(ctx context.Context) (int, error) {
	var next int
	query := `UPDATE project_sequence
		SET next_number = next_number + 1
		WHERE id = 1
		RETURNING next_number - 1`
	if err := r.db.QueryRowContext(ctx, query).Scan(&next); err != nil {
		return 0, fmt.Errorf("allocating project number: %w", err)
	}
	return next, nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	return r.scanProject(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteProjectRepo) GetByNumber(ctx context.Context, number int) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE number = ?`
	p, err := r.scanProject(r.db.QueryRowContext(ctx, query, number))
	if errors.Is(err, ErrProjectNotFound) {
		return nil, fmt.Errorf("project %d: %w", number, ErrProjectNotFound)
	}
	return p, err
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY number`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := r.scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	if n == 0 {
		return ErrProjectNotFound
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteProjectRepo) scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var name, notes sql.NullString
	var estimated, actual decimal.NullDecimal
	var difficulty sql.NullInt64
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&p.ID, &p.Number, &name,
		&estimated, &actual, &difficulty, &notes,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Name = parseNullableString(name)
	p.Notes = parseNullableString(notes)
	p.EstimatedHours = parseNullableHours(estimated)
	p.ActualHours = parseNullableHours(actual)
	p.Difficulty = parseNullableInt(difficulty)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &p, nil
}
