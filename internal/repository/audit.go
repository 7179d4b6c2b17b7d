package repository

import (
	"context"

	"github.com/openshelf/library-service/pkg/kafka"
)

func (r *Repository) InsertAudit(ctx context.Context, event kafka.EventAudit) error {
	q, args, err := qb.Insert(logsTableName).
		Columns("user_id", "action", "description", "created_at").
		Values(event.UserID, event.Action, event.Description, event.Timestamp).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, q, args...)
	return err
}
