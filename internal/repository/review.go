package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/openshelf/library-service/internal/model"
)

func (r *Repository) CreateReview(ctx context.Context, review model.Review) (model.Review, error) {
	q, args, err := qb.Insert(reviewsTableName).
		Columns("book_id", "user_id", "rating", "review_text").
		Values(review.BookID, review.UserID, review.Rating, review.ReviewText).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Review{}, err
	}

	var created model.Review
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		r.log.Error("CreateReview", zap.String("q", q), zap.Any("args", args))
		return model.Review{}, err
	}
	return created, nil
}

// AverageRating recomputes on every call; reviews mutate independently
// of books, so nothing is cached. Zero reviews yield 0.
func (r *Repository) AverageRating(ctx context.Context, bookID int) (float64, error) {
	const q = `select round(coalesce(avg(rating), 0), 1)::float8 from reviews where book_id = $1`

	var avg float64
	if err := r.db.QueryRowContext(ctx, q, bookID).Scan(&avg); err != nil {
		return 0, err
	}
	return avg, nil
}

func (r *Repository) ListBookReviews(ctx context.Context, bookID int) ([]model.ReviewWithUser, error) {
	q, args, err := qb.Select("rv.id", "rv.book_id", "rv.user_id", "rv.rating", "rv.review_text", "rv.created_at",
		"u.name as user_name").
		From(reviewsTableName + " rv").
		Join(usersTableName + " u on u.id = rv.user_id").
		Where(sq.Eq{"rv.book_id": bookID}).
		OrderBy("rv.created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.ReviewWithUser
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}
