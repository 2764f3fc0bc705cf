// internal/pkg/auth/auth_test.go
package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/store-backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "store-backend"},
		JWT: config.JWTConfig{
			Secret:      "test-secret-key-that-is-long-enough!",
			TokenExpiry: time.Hour,
		},
		Security: config.SecurityConfig{BcryptCost: 4},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	mgr := NewJWTManager(testConfig())

	token, err := mgr.GenerateToken(42, "alice@example.com", "customer")
	require.NoError(t, err)

	claims, err := mgr.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, "user:42", claims.Subject)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	mgr := NewJWTManager(testConfig())

	token, err := mgr.GenerateToken(42, "alice@example.com", "customer")
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JWT.Secret = "another-secret-key-that-is-long-too!"

	_, err = NewJWTManager(otherCfg).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.TokenExpiry = -time.Minute

	mgr := NewJWTManager(cfg)
	token, err := mgr.GenerateToken(42, "alice@example.com", "customer")
	require.NoError(t, err)

	_, err = mgr.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	mgr := NewJWTManager(testConfig())

	_, err := mgr.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc123", ExtractTokenFromHeader("Bearer abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader("abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader("Basic abc123"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
}

func TestHashAndVerifyPassword(t *testing.T) {
	mgr := NewPasswordManager(testConfig())

	hash, err := mgr.HashPassword("Secret123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123!", hash)

	assert.NoError(t, mgr.VerifyPassword("Secret123!", hash))
	assert.Error(t, mgr.VerifyPassword("WrongPass1!", hash))
}

func TestValidatePassword(t *testing.T) {
	mgr := NewPasswordManager(testConfig())

	assert.Error(t, mgr.ValidatePassword("short"))
	assert.Error(t, mgr.ValidatePassword(strings.Repeat("a", 73)))
	assert.NoError(t, mgr.ValidatePassword("Secret123!"))

	// Hashing rejects what validation rejects
	_, err := mgr.HashPassword("short")
	assert.Error(t, err)
}
