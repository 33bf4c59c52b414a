package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/projects/internal/db"
	"github.com/alexanderramin/projects/internal/domain"
	"github.com/alexanderramin/projects/internal/repository"
	"github.com/google/uuid"
)

type projectService struct {
	projects repository.ProjectRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewProjectService(projects repository.ProjectRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ProjectService {
	return &projectService{
		projects: projects,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Create stores the draft and returns the row as read back from the store,
// so the caller sees the assigned ID and number.
func (s *projectService) Create(ctx context.Context, draft *domain.ProjectDraft) (created *domain.Project, err error) {
	if draft == nil {
		return nil, persistenceErr("creating project", fmt.Errorf("no project to create"))
	}

	p := domain.NewProjectFromDraft(draft)
	p.ID = uuid.New().String()
	now := time.Now().UTC().Truncate(time.Second)
	p.CreatedAt = now
	p.UpdatedAt = now

	defer s.observe(ctx, "create-project", now, &err, map[string]any{
		"project_id": p.ID,
		"name":       domain.StrOrNone(p.Name),
	})

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		if err := txProjects.Create(ctx, p); err != nil {
			return err
		}
		stored, err := txProjects.GetByID(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("reading back project: %w", err)
		}
		created = stored
		return nil
	})
	if err != nil {
		return nil, persistenceErr("creating project", err)
	}
	return created, nil
}

func (s *projectService) GetByNumber(ctx context.Context, number int) (*domain.Project, error) {
	p, err := s.projects.GetByNumber(ctx, number)
	if err != nil {
		return nil, persistenceErr("loading project", err)
	}
	return p, nil
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, persistenceErr("listing projects", err)
	}
	return projects, nil
}

func (s *projectService) Delete(ctx context.Context, number int) (deleted *domain.Project, err error) {
	defer s.observe(ctx, "delete-project", time.Now().UTC(), &err, map[string]any{
		"number": number,
	})

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProjects := repository.NewSQLiteProjectRepo(tx)
		p, err := txProjects.GetByNumber(ctx, number)
		if err != nil {
			return err
		}
		if err := txProjects.Delete(ctx, p.ID); err != nil {
			return err
		}
		deleted = p
		return nil
	})
	if err != nil {
		return nil, persistenceErr("deleting project", err)
	}
	return deleted, nil
}

func (s *projectService) observe(ctx context.Context, name string, startedAt time.Time, errp *error, fields map[string]any) {
	err := *errp
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}
