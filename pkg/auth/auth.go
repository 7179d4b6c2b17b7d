package auth

import (
	"context"
	"os"

	"github.com/golang-jwt/jwt/v4"
)

const (
	AuthorizationHeader = "Authorization"

	RoleLibrarian = "librarian"
	RoleCustomer  = "customer"
)

var JWTKey = jwtKey()

func jwtKey() []byte {
	if k := os.Getenv("JWT_KEY"); k != "" {
		return []byte(k)
	}
	return []byte("openshelf-dev-key")
}

type Claims struct {
	Profile struct {
		UserID   int    `json:"userId"`
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"profile"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Identity is the authenticated caller every core operation receives.
type Identity struct {
	UserID   int
	Username string
	Role     string
}

func (id Identity) IsLibrarian() bool {
	return id.Role == RoleLibrarian
}

type contextKey int

const identityKey contextKey = iota + 1

func SetAuthContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
