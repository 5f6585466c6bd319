//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"cleanmarket/internal/domain/user"
	"cleanmarket/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func NewTokenService() *jwt.Service {
	return jwt.NewService(testJWTSecret, time.Hour)
}

// TokenFor issues a signed token for the given user, using the shared test secret.
func TokenFor(t *testing.T, svc *jwt.Service, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := svc.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
