package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openshelf/library-service/internal/model"
	"github.com/openshelf/library-service/pkg/auth"
)

const checkoutPeriod = 5 * 24 * time.Hour

func (s *Service) ListBooks(ctx context.Context, id auth.Identity) ([]model.BookSummary, error) {
	createdBy := 0
	if id.IsLibrarian() {
		createdBy = id.UserID
	}
	return s.repo.ListBooks(ctx, createdBy)
}

func (s *Service) GetBookDetails(ctx context.Context, bookID int) (model.BookDetails, error) {
	details, err := s.repo.BookDetails(ctx, bookID)
	if err != nil {
		return model.BookDetails{}, err
	}

	avg, err := s.repo.AverageRating(ctx, bookID)
	if err != nil {
		return model.BookDetails{}, errors.Wrap(err, "average rating")
	}
	details.AvgRating = avg

	return details, nil
}

func (s *Service) CreateBook(ctx context.Context, id auth.Identity, req model.CreateBookRequest, cover []byte, coverExt string) (model.Book, error) {
	if err := s.resolveCatalogRefs(ctx, req.AuthorID, req.PublisherID, req.CategoryID); err != nil {
		return model.Book{}, err
	}

	book := model.Book{
		Title:           req.Title,
		Description:     req.Description,
		PublicationDate: req.PublicationDate.Time,
		ISBN:            req.ISBN,
		PageCount:       req.PageCount,
		AuthorID:        req.AuthorID,
		PublisherID:     req.PublisherID,
		CategoryID:      req.CategoryID,
		CreatedBy:       id.UserID,
		UpdatedBy:       id.UserID,
	}

	var coverRef string
	if len(cover) > 0 {
		ref, err := s.blobs.Save(cover, coverExt)
		if err != nil {
			return model.Book{}, errors.Wrap(err, "store cover")
		}
		coverRef = ref
		book.CoverImage = &coverRef
	}

	created, err := s.repo.CreateBook(ctx, book)
	if err != nil {
		if coverRef != "" {
			if derr := s.blobs.Delete(coverRef); derr != nil {
				s.log.Warn("orphaned cover cleanup", zap.String("ref", coverRef), zap.Error(derr))
			}
		}
		return model.Book{}, err
	}

	s.audit.Record(ctx, &id.UserID, "book.create", fmt.Sprintf("book %q created", created.Title))
	return created, nil
}

func (s *Service) UpdateBook(ctx context.Context, id auth.Identity, bookID int, req model.CreateBookRequest, cover []byte, coverExt string) (model.Book, error) {
	existing, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.Book{}, err
	}
	if err := s.resolveCatalogRefs(ctx, req.AuthorID, req.PublisherID, req.CategoryID); err != nil {
		return model.Book{}, err
	}

	book := model.Book{
		ID:              bookID,
		Title:           req.Title,
		Description:     req.Description,
		CoverImage:      existing.CoverImage,
		PublicationDate: req.PublicationDate.Time,
		ISBN:            req.ISBN,
		PageCount:       req.PageCount,
		AuthorID:        req.AuthorID,
		PublisherID:     req.PublisherID,
		CategoryID:      req.CategoryID,
		UpdatedBy:       id.UserID,
	}

	// the cover is replaced only when a new one is supplied
	var newRef string
	if len(cover) > 0 {
		ref, err := s.blobs.Save(cover, coverExt)
		if err != nil {
			return model.Book{}, errors.Wrap(err, "store cover")
		}
		newRef = ref
		book.CoverImage = &newRef
	}

	updated, err := s.repo.UpdateBook(ctx, book)
	if err != nil {
		if newRef != "" {
			if derr := s.blobs.Delete(newRef); derr != nil {
				s.log.Warn("orphaned cover cleanup", zap.String("ref", newRef), zap.Error(derr))
			}
		}
		return model.Book{}, err
	}

	if newRef != "" && existing.CoverImage != nil {
		if derr := s.blobs.Delete(*existing.CoverImage); derr != nil {
			s.log.Warn("stale cover delete", zap.String("ref", *existing.CoverImage), zap.Error(derr))
		}
	}

	s.audit.Record(ctx, &id.UserID, "book.update", fmt.Sprintf("book %d updated", bookID))
	return updated, nil
}

func (s *Service) DeleteBook(ctx context.Context, id auth.Identity, bookID int) error {
	if err := s.repo.SoftDeleteBook(ctx, bookID, id.UserID); err != nil {
		return err
	}
	s.audit.Record(ctx, &id.UserID, "book.delete", fmt.Sprintf("book %d deleted", bookID))
	return nil
}

func (s *Service) RemoveCover(ctx context.Context, id auth.Identity, bookID int) error {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return err
	}
	if err := s.repo.ClearCover(ctx, bookID, id.UserID); err != nil {
		return err
	}
	if book.CoverImage != nil {
		if derr := s.blobs.Delete(*book.CoverImage); derr != nil {
			s.log.Warn("cover blob delete", zap.String("ref", *book.CoverImage), zap.Error(derr))
		}
	}
	s.audit.Record(ctx, &id.UserID, "book.cover_remove", fmt.Sprintf("cover removed from book %d", bookID))
	return nil
}

func (s *Service) Checkout(ctx context.Context, id auth.Identity, bookID int) (model.CheckoutRecord, error) {
	now := time.Now().UTC()
	rec, err := s.repo.Checkout(ctx, bookID, id.UserID, now, now.Add(checkoutPeriod))
	if err != nil {
		return model.CheckoutRecord{}, err
	}
	s.audit.Record(ctx, &id.UserID, "book.checkout", fmt.Sprintf("book %d checked out", bookID))
	return rec, nil
}

func (s *Service) Return(ctx context.Context, id auth.Identity, bookID int) (model.CheckoutRecord, error) {
	rec, err := s.repo.Return(ctx, bookID, time.Now().UTC())
	if err != nil {
		return model.CheckoutRecord{}, err
	}
	s.audit.Record(ctx, &id.UserID, "book.return", fmt.Sprintf("book %d returned", bookID))
	return rec, nil
}

func (s *Service) SubmitReview(ctx context.Context, id auth.Identity, bookID int, req model.ReviewRequest) (model.Review, error) {
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return model.Review{}, err
	}
	review, err := s.repo.CreateReview(ctx, model.Review{
		BookID:     bookID,
		UserID:     id.UserID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		return model.Review{}, err
	}
	s.audit.Record(ctx, &id.UserID, "review.create", fmt.Sprintf("review for book %d", bookID))
	return review, nil
}

func (s *Service) resolveCatalogRefs(ctx context.Context, authorID, publisherID, categoryID int) error {
	refs := []struct {
		kind model.EntityKind
		id   int
	}{
		{model.KindAuthor, authorID},
		{model.KindPublisher, publisherID},
		{model.KindCategory, categoryID},
	}
	for _, ref := range refs {
		if _, err := s.repo.GetEntity(ctx, ref.kind, ref.id); err != nil {
			return errors.Wrapf(err, "%s %d", ref.kind, ref.id)
		}
	}
	return nil
}
