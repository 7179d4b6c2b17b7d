package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openshelf/library-service/internal/errs"
	"github.com/openshelf/library-service/internal/model"
)

// Checkout flips an available book to checked_out and opens a ledger
// record, both in one transaction. The availability UPDATE doubles as a
// compare-and-swap: zero affected rows means the book is either gone or
// already checked out, and neither write is applied.
func (r *Repository) Checkout(ctx context.Context, bookID, userID int, checkoutDate, dueDate time.Time) (model.CheckoutRecord, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.CheckoutRecord{}, errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback() //nolint:errcheck

	const flip = `
update books
	set availability = $2, updated_at = now()
where id = $1 and deleted_at is null and availability = $3`

	res, err := tx.ExecContext(ctx, flip, bookID, model.CheckedOut, model.Available)
	if err != nil {
		return model.CheckoutRecord{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		const probe = `select exists(select 1 from books where id = $1 and deleted_at is null)`
		if err := tx.QueryRowContext(ctx, probe, bookID).Scan(&exists); err != nil {
			return model.CheckoutRecord{}, err
		}
		if !exists {
			return model.CheckoutRecord{}, errs.ErrNotFound
		}
		return model.CheckoutRecord{}, errs.ErrInvalidTransition
	}

	const insert = `
insert into checkouts (book_id, user_id, status, checkout_date, due_date)
	values ($1, $2, $3, $4, $5)
returning id, book_id, user_id, status, checkout_date, due_date, returned_date`

	var rec model.CheckoutRecord
	if err := tx.GetContext(ctx, &rec, insert, bookID, userID, model.StatusCheckedOut, checkoutDate, dueDate); err != nil {
		r.log.Error("Checkout insert", zap.Int("bookID", bookID), zap.Error(err))
		return model.CheckoutRecord{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.CheckoutRecord{}, errors.Wrap(err, "commit")
	}
	return rec, nil
}

// Return closes the open ledger record and flips availability back in
// one transaction. Without an open record the operation fails with
// ErrInvalidTransition instead of silently updating nothing.
func (r *Repository) Return(ctx context.Context, bookID int, returnedDate time.Time) (model.CheckoutRecord, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.CheckoutRecord{}, errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback() //nolint:errcheck

	const closeQ = `
update checkouts
	set status = $2, returned_date = $3
where book_id = $1 and status = $4
returning id, book_id, user_id, status, checkout_date, due_date, returned_date`

	var rec model.CheckoutRecord
	if err := tx.GetContext(ctx, &rec, closeQ, bookID, model.StatusReturned, returnedDate, model.StatusCheckedOut); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.CheckoutRecord{}, errs.ErrInvalidTransition
		}
		return model.CheckoutRecord{}, err
	}

	const flip = `
update books
	set availability = $2, updated_at = now()
where id = $1 and deleted_at is null`

	if _, err := tx.ExecContext(ctx, flip, bookID, model.Available); err != nil {
		return model.CheckoutRecord{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.CheckoutRecord{}, errors.Wrap(err, "commit")
	}
	return rec, nil
}
