package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openshelf/library-service/internal/errs"
	"github.com/openshelf/library-service/internal/model"
	"github.com/openshelf/library-service/pkg/auth"
)

func (s *Service) ListEntities(ctx context.Context, id auth.Identity, kind model.EntityKind) ([]model.CatalogEntity, error) {
	createdBy := 0
	if id.IsLibrarian() {
		createdBy = id.UserID
	}
	return s.repo.ListEntities(ctx, kind, createdBy)
}

// GetOrCreateEntity returns the active entity with the given name,
// creating it when absent. The second return value reports whether a
// new row was created; finding an existing one is not an error.
func (s *Service) GetOrCreateEntity(ctx context.Context, id auth.Identity, kind model.EntityKind, name string) (model.CatalogEntity, bool, error) {
	name = strings.TrimSpace(name)

	existing, err := s.repo.GetActiveByName(ctx, kind, name)
	if err == nil {
		s.log.Warn("entity already exists", zap.String("kind", string(kind)), zap.String("name", name))
		return existing, false, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return model.CatalogEntity{}, false, err
	}

	created, err := s.repo.CreateEntity(ctx, kind, name, id.UserID)
	if err != nil {
		// lost a create race; the winner's row is the result
		if errors.Is(err, errs.ErrDuplicateName) {
			won, gerr := s.repo.GetActiveByName(ctx, kind, name)
			if gerr != nil {
				return model.CatalogEntity{}, false, gerr
			}
			return won, false, nil
		}
		return model.CatalogEntity{}, false, err
	}

	s.audit.Record(ctx, &id.UserID, string(kind)+".create", fmt.Sprintf("%s %q created", kind, name))
	return created, true, nil
}

func (s *Service) RenameEntity(ctx context.Context, id auth.Identity, kind model.EntityKind, entityID int, name string) (model.CatalogEntity, error) {
	name = strings.TrimSpace(name)

	if other, err := s.repo.GetActiveByName(ctx, kind, name); err == nil && other.ID != entityID {
		return model.CatalogEntity{}, errs.ErrDuplicateName
	} else if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return model.CatalogEntity{}, err
	}

	if err := s.repo.RenameEntity(ctx, kind, entityID, name, id.UserID); err != nil {
		return model.CatalogEntity{}, err
	}

	s.audit.Record(ctx, &id.UserID, string(kind)+".rename", fmt.Sprintf("%s %d renamed to %q", kind, entityID, name))
	return s.repo.GetEntity(ctx, kind, entityID)
}

func (s *Service) DeleteEntity(ctx context.Context, id auth.Identity, kind model.EntityKind, entityID int) error {
	if err := s.repo.SoftDeleteEntity(ctx, kind, entityID, id.UserID); err != nil {
		return err
	}
	s.audit.Record(ctx, &id.UserID, string(kind)+".delete", fmt.Sprintf("%s %d deleted", kind, entityID))
	return nil
}
