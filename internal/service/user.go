package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/openshelf/library-service/internal/errs"
	"github.com/openshelf/library-service/internal/model"
)

func (s *Service) Register(ctx context.Context, req model.RegisterRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user, err := s.repo.CreateUser(ctx, model.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	})
	if err != nil {
		return err
	}

	// a failed welcome email never rolls back the registration
	if err := s.notify.Send(ctx, user.Email, TemplateWelcome, map[string]string{"name": user.Name}); err != nil {
		s.log.Warn("welcome notification", zap.String("username", user.Username), zap.Error(err))
	}

	s.audit.Record(ctx, &user.ID, "user.register", fmt.Sprintf("user %q registered", user.Username))
	return nil
}

// ForgotPassword sends a reset message to a registered address. An
// unknown address is not an error: the response must not reveal which
// addresses have accounts.
func (s *Service) ForgotPassword(ctx context.Context, req model.ForgotPasswordRequest) error {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.notify.Send(ctx, user.Email, TemplatePasswordReset, map[string]string{"name": user.Name}); err != nil {
		s.log.Warn("password reset notification", zap.String("username", user.Username), zap.Error(err))
	}

	s.audit.Record(ctx, &user.ID, "user.password_reset", fmt.Sprintf("password reset requested for %q", user.Username))
	return nil
}

func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return model.User{}, errs.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return model.User{}, errs.ErrInvalidCredentials
	}

	s.audit.Record(ctx, &user.ID, "user.login", fmt.Sprintf("user %q logged in", user.Username))
	return user, nil
}
