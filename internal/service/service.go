package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/openshelf/library-service/internal/repository"
	"github.com/openshelf/library-service/pkg/blob"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=service_mocks

// AuditSink records significant actions on a best-effort basis. A nil
// userID marks a system-originated action. Implementations must never
// fail the caller.
type AuditSink interface {
	Record(ctx context.Context, userID *int, action, description string)
}

// Notifier delivers user-facing messages ("welcome", "password reset").
// Delivery failures are the caller's to log, never to propagate.
type Notifier interface {
	Send(ctx context.Context, recipient, template string, data map[string]string) error
}

type Repo interface {
	repository.Books
	repository.Catalog
	repository.Checkouts
	repository.Reviews
	repository.Users
}

type Service struct {
	log    *zap.Logger
	repo   Repo
	audit  AuditSink
	notify Notifier
	blobs  blob.Store
}

func NewService(repo Repo, audit AuditSink, notify Notifier, blobs blob.Store, log *zap.Logger) *Service {
	return &Service{
		log:    log,
		repo:   repo,
		audit:  audit,
		notify: notify,
		blobs:  blobs,
	}
}
