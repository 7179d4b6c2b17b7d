package handler

import (
	"context"

	"github.com/openshelf/library-service/internal/model"
	"github.com/openshelf/library-service/pkg/auth"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=service_mocks

type BookService interface {
	ListBooks(ctx context.Context, id auth.Identity) ([]model.BookSummary, error)
	GetBookDetails(ctx context.Context, bookID int) (model.BookDetails, error)
	CreateBook(ctx context.Context, id auth.Identity, req model.CreateBookRequest, cover []byte, coverExt string) (model.Book, error)
	UpdateBook(ctx context.Context, id auth.Identity, bookID int, req model.CreateBookRequest, cover []byte, coverExt string) (model.Book, error)
	DeleteBook(ctx context.Context, id auth.Identity, bookID int) error
	RemoveCover(ctx context.Context, id auth.Identity, bookID int) error
	Checkout(ctx context.Context, id auth.Identity, bookID int) (model.CheckoutRecord, error)
	Return(ctx context.Context, id auth.Identity, bookID int) (model.CheckoutRecord, error)
	SubmitReview(ctx context.Context, id auth.Identity, bookID int, req model.ReviewRequest) (model.Review, error)
}

type CatalogService interface {
	ListEntities(ctx context.Context, id auth.Identity, kind model.EntityKind) ([]model.CatalogEntity, error)
	GetOrCreateEntity(ctx context.Context, id auth.Identity, kind model.EntityKind, name string) (model.CatalogEntity, bool, error)
	RenameEntity(ctx context.Context, id auth.Identity, kind model.EntityKind, entityID int, name string) (model.CatalogEntity, error)
	DeleteEntity(ctx context.Context, id auth.Identity, kind model.EntityKind, entityID int) error
}

type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) error
	Login(ctx context.Context, req model.LoginRequest) (model.User, error)
	ForgotPassword(ctx context.Context, req model.ForgotPasswordRequest) error
}
