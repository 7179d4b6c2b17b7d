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

var entityColumns = []string{
	"id", "name", "created_by", "updated_by", "deleted_by", "deleted_at", "created_at", "updated_at",
}

func entityTable(kind model.EntityKind) string {
	switch kind {
	case model.KindAuthor:
		return "authors"
	case model.KindPublisher:
		return "publishers"
	case model.KindCategory:
		return "categories"
	}
	return ""
}

func (r *Repository) ListEntities(ctx context.Context, kind model.EntityKind, createdBy int) ([]model.CatalogEntity, error) {
	q := qb.Select(entityColumns...).
		From(entityTable(kind)).
		Where(sq.Eq{"deleted_at": nil}).
		OrderBy("name")

	if createdBy != 0 {
		q = q.Where(sq.Eq{"created_by": createdBy})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var items []model.CatalogEntity
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) GetEntity(ctx context.Context, kind model.EntityKind, id int) (model.CatalogEntity, error) {
	q, args, err := qb.Select(entityColumns...).
		From(entityTable(kind)).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return model.CatalogEntity{}, err
	}

	var e model.CatalogEntity
	if err := r.db.GetContext(ctx, &e, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.CatalogEntity{}, errs.ErrNotFound
		}
		return model.CatalogEntity{}, err
	}
	return e, nil
}

func (r *Repository) GetActiveByName(ctx context.Context, kind model.EntityKind, name string) (model.CatalogEntity, error) {
	q, args, err := qb.Select(entityColumns...).
		From(entityTable(kind)).
		Where(sq.Eq{"name": name, "deleted_at": nil}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.CatalogEntity{}, err
	}

	var e model.CatalogEntity
	if err := r.db.GetContext(ctx, &e, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.CatalogEntity{}, errs.ErrNotFound
		}
		return model.CatalogEntity{}, err
	}
	return e, nil
}

func (r *Repository) CreateEntity(ctx context.Context, kind model.EntityKind, name string, creatorID int) (model.CatalogEntity, error) {
	q, args, err := qb.Insert(entityTable(kind)).
		Columns("name", "created_by", "updated_by").
		Values(name, creatorID, creatorID).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.CatalogEntity{}, err
	}

	var created model.CatalogEntity
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		if uniqueViolation(err, "") {
			return model.CatalogEntity{}, errs.ErrDuplicateName
		}
		r.log.Error("CreateEntity", zap.String("q", q), zap.Any("args", args))
		return model.CatalogEntity{}, err
	}
	return created, nil
}

func (r *Repository) RenameEntity(ctx context.Context, kind model.EntityKind, id int, name string, updaterID int) error {
	q, args, err := qb.Update(entityTable(kind)).
		Set("name", name).
		Set("updated_by", updaterID).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		if uniqueViolation(err, "") {
			return errs.ErrDuplicateName
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *Repository) SoftDeleteEntity(ctx context.Context, kind model.EntityKind, id, deleterID int) error {
	q, args, err := qb.Update(entityTable(kind)).
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
