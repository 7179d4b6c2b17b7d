package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openshelf/library-service/internal/model"
	"github.com/openshelf/library-service/pkg/kafka"
)

type Books interface {
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, book model.Book) (model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	SoftDeleteBook(ctx context.Context, id, deleterID int) error
	ListBooks(ctx context.Context, createdBy int) ([]model.BookSummary, error)
	BookDetails(ctx context.Context, id int) (model.BookDetails, error)
	ClearCover(ctx context.Context, id, updaterID int) error
}

type Catalog interface {
	ListEntities(ctx context.Context, kind model.EntityKind, createdBy int) ([]model.CatalogEntity, error)
	GetEntity(ctx context.Context, kind model.EntityKind, id int) (model.CatalogEntity, error)
	GetActiveByName(ctx context.Context, kind model.EntityKind, name string) (model.CatalogEntity, error)
	CreateEntity(ctx context.Context, kind model.EntityKind, name string, creatorID int) (model.CatalogEntity, error)
	RenameEntity(ctx context.Context, kind model.EntityKind, id int, name string, updaterID int) error
	SoftDeleteEntity(ctx context.Context, kind model.EntityKind, id, deleterID int) error
}

type Checkouts interface {
	Checkout(ctx context.Context, bookID, userID int, checkoutDate, dueDate time.Time) (model.CheckoutRecord, error)
	Return(ctx context.Context, bookID int, returnedDate time.Time) (model.CheckoutRecord, error)
}

type Reviews interface {
	CreateReview(ctx context.Context, review model.Review) (model.Review, error)
	AverageRating(ctx context.Context, bookID int) (float64, error)
	ListBookReviews(ctx context.Context, bookID int) ([]model.ReviewWithUser, error)
}

type Users interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
}

type Audit interface {
	InsertAudit(ctx context.Context, event kafka.EventAudit) error
}

type Repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*Repository, error) {
	return &Repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName     = `books`
	checkoutsTableName = `checkouts`
	reviewsTableName   = `reviews`
	usersTableName     = `users`
	logsTableName      = `logs`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// uniqueViolation reports whether err is a postgres unique violation on
// the given constraint; an empty constraint matches any.
func uniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != pgerrcode.UniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
