package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/projects/internal/domain"
)

// ErrProjectNotFound is returned by lookups that match no row.
var ErrProjectNotFound = errors.New("project not found")

type ProjectRepo interface {
	// Create inserts p and assigns p.Number.
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByNumber(ctx context.Context, number int) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
