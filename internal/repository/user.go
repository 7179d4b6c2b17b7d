package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/openshelf/library-service/internal/errs"
	"github.com/openshelf/library-service/internal/model"
)

func (r *Repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	q, args, err := qb.Insert(usersTableName).
		Columns("name", "username", "email", "password_hash", "role").
		Values(user.Name, user.Username, user.Email, user.PasswordHash, user.Role).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var created model.User
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		if uniqueViolation(err, "") {
			return model.User{}, errs.ErrUserExists
		}
		return model.User{}, err
	}
	return created, nil
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	return r.getUserBy(ctx, sq.Eq{"username": username})
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getUserBy(ctx, sq.Eq{"email": email})
}

func (r *Repository) getUserBy(ctx context.Context, cond sq.Eq) (model.User, error) {
	q, args, err := qb.Select("id", "name", "username", "email", "password_hash", "role", "created_at").
		From(usersTableName).
		Where(cond).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}
