package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openshelf/library-service/internal/errs"
	"github.com/openshelf/library-service/internal/model"
)

var bookColumns = []string{
	"id", "title", "description", "cover_image", "publication_date", "isbn",
	"page_count", "author_id", "publisher_id", "category_id", "availability",
	"created_by", "updated_by", "deleted_by", "deleted_at", "created_at", "updated_at",
}

func mapBookUniqueErr(err error) error {
	switch {
	case uniqueViolation(err, "uq_books_title_active"):
		return errs.ErrDuplicateTitle
	case uniqueViolation(err, "uq_books_isbn_active"):
		return errs.ErrDuplicateISBN
	default:
		return err
	}
}

func (r *Repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	q, args, err := qb.Insert(booksTableName).
		Columns("title", "description", "cover_image", "publication_date", "isbn",
			"page_count", "author_id", "publisher_id", "category_id", "availability",
			"created_by", "updated_by").
		Values(book.Title, book.Description, book.CoverImage, book.PublicationDate, book.ISBN,
			book.PageCount, book.AuthorID, book.PublisherID, book.CategoryID, model.Available,
			book.CreatedBy, book.CreatedBy).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var created model.Book
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", q), zap.Any("args", args))
		return model.Book{}, mapBookUniqueErr(err)
	}
	return created, nil
}

func (r *Repository) UpdateBook(ctx context.Context, book model.Book) (model.Book, error) {
	q, args, err := qb.Update(booksTableName).
		Set("title", book.Title).
		Set("description", book.Description).
		Set("cover_image", book.CoverImage).
		Set("publication_date", book.PublicationDate).
		Set("isbn", book.ISBN).
		Set("page_count", book.PageCount).
		Set("author_id", book.AuthorID).
		Set("publisher_id", book.PublisherID).
		Set("category_id", book.CategoryID).
		Set("updated_by", book.UpdatedBy).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": book.ID, "deleted_at": nil}).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var updated model.Book
	if err := r.db.GetContext(ctx, &updated, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, mapBookUniqueErr(err)
	}
	return updated, nil
}

func (r *Repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	q, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *Repository) SoftDeleteBook(ctx context.Context, id, deleterID int) error {
	q, args, err := qb.Update(booksTableName).
		Set("deleted_by", deleterID).
		Set("deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *Repository) ClearCover(ctx context.Context, id, updaterID int) error {
	q, args, err := qb.Update(booksTableName).
		Set("cover_image", nil).
		Set("updated_by", updaterID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *Repository) ListBooks(ctx context.Context, createdBy int) ([]model.BookSummary, error) {
	q := qb.Select(
		"b.id", "b.title", "b.description", "b.cover_image",
		"coalesce(a.name, '') as author_name",
		"b.availability",
		"round(coalesce(avg(rv.rating), 0), 1)::float8 as avg_rating").
		From(booksTableName + " b").
		LeftJoin("authors a on b.author_id = a.id").
		LeftJoin(reviewsTableName + " rv on b.id = rv.book_id").
		Where(sq.Eq{"b.deleted_at": nil}).
		GroupBy("b.id", "b.title", "b.description", "b.cover_image", "a.name", "b.availability").
		OrderBy("b.id")

	// librarians only see their own catalog
	if createdBy != 0 {
		q = q.Where(sq.Eq{"b.created_by": createdBy})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	var books []model.BookSummary
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *Repository) BookDetails(ctx context.Context, id int) (model.BookDetails, error) {
	q, args, err := qb.Select(
		"b.id", "b.title", "b.description", "b.cover_image", "b.publication_date",
		"b.isbn", "b.page_count",
		"a.name as author_name", "p.name as publisher_name", "c.name as category_name",
		"b.availability",
		"co.checkout_date", "co.due_date", "co.status as checkout_status").
		From(booksTableName + " b").
		LeftJoin("authors a on b.author_id = a.id and a.deleted_at is null").
		LeftJoin("publishers p on b.publisher_id = p.id and p.deleted_at is null").
		LeftJoin("categories c on b.category_id = c.id and c.deleted_at is null").
		LeftJoin(checkoutsTableName + " co on b.id = co.book_id and co.id = (select max(id) from checkouts where book_id = b.id)").
		Where(sq.Eq{"b.id": id, "b.deleted_at": nil}).
		ToSql()
	if err != nil {
		return model.BookDetails{}, err
	}

	var details model.BookDetails
	if err := r.db.GetContext(ctx, &details, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BookDetails{}, errs.ErrNotFound
		}
		return model.BookDetails{}, err
	}

	reviews, err := r.ListBookReviews(ctx, id)
	if err != nil {
		return model.BookDetails{}, errors.Wrap(err, "book reviews")
	}
	details.Reviews = reviews

	return details, nil
}
