package service

import (
	"context"

	"github.com/alexanderramin/projects/internal/domain"
)

// ProjectService persists drafts and reads projects back. Every error it
// returns is a *PersistenceError.
type ProjectService interface {
	Create(ctx context.Context, draft *domain.ProjectDraft) (*domain.Project, error)
	GetByNumber(ctx context.Context, number int) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Delete(ctx context.Context, number int) (*domain.Project, error)
}
