package errs

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateName      = errors.New("name already exists")
	ErrDuplicateTitle     = errors.New("a book with this title already exists")
	ErrDuplicateISBN      = errors.New("this isbn is already registered")
	ErrInvalidTransition  = errors.New("invalid availability transition")
	ErrUserExists         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
