package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openshelf/library-service/internal/model"
	"github.com/openshelf/library-service/pkg/auth"
)

// system identity tagging rows created by the seeder
var seedIdentity = auth.Identity{UserID: 1, Username: "system", Role: auth.RoleLibrarian}

// SeedBook creates a generated author/publisher/category/book row set.
// Runs on the seed interval from app wiring.
func (s *Service) SeedBook(ctx context.Context) error {
	tag := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]

	author, _, err := s.GetOrCreateEntity(ctx, seedIdentity, model.KindAuthor, "Author Cronjob "+tag)
	if err != nil {
		return err
	}
	publisher, _, err := s.GetOrCreateEntity(ctx, seedIdentity, model.KindPublisher, "Publisher Cronjob "+tag)
	if err != nil {
		return err
	}
	category, _, err := s.GetOrCreateEntity(ctx, seedIdentity, model.KindCategory, "Category Cronjob "+tag)
	if err != nil {
		return err
	}

	book := model.Book{
		Title:           "Book " + tag,
		Description:     "Automatically generated catalog entry " + tag,
		PublicationDate: time.Now().UTC(),
		ISBN:            seedISBN(),
		PageCount:       100 + int(time.Now().UnixNano()%900),
		AuthorID:        author.ID,
		PublisherID:     publisher.ID,
		CategoryID:      category.ID,
		CreatedBy:       seedIdentity.UserID,
		UpdatedBy:       seedIdentity.UserID,
	}

	created, err := s.repo.CreateBook(ctx, book)
	if err != nil {
		return err
	}

	s.audit.Record(ctx, nil, "book.seed", fmt.Sprintf("seeded book %q", created.Title))
	s.log.Info("seeded book", zap.Int("id", created.ID), zap.String("title", created.Title))
	return nil
}

// seedISBN derives a 13-digit numeric string from the clock.
func seedISBN() string {
	return fmt.Sprintf("%013d", time.Now().UnixNano()%1e13)
}
