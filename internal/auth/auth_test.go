package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-12345"

func signClaims(t *testing.T, claims *Claims, method jwt.SigningMethod, key interface{}) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(email string, exp time.Time) *Claims {
	return &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   email,
		Issuer:    jwtIssuer,
		Audience:  []string{jwtAudience},
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(exp.Add(-time.Minute)),
	}}
}

func TestHashPassword(t *testing.T) {
	t.Run("Successfully hash password", func(t *testing.T) {
		password := "mySecurePassword123"
		hashed, err := HashPassword(password)

		assert.NoError(t, err)
		assert.NotEmpty(t, hashed)
		assert.NotEqual(t, password, hashed)
	})

	t.Run("Different hashes for same password", func(t *testing.T) {
		hash1, _ := HashPassword("samePassword")
		hash2, _ := HashPassword("samePassword")

		assert.NotEqual(t, hash1, hash2)
	})
}

func TestCheckPassword(t *testing.T) {
	hashed, _ := HashPassword("correctPassword")

	assert.True(t, CheckPassword(hashed, "correctPassword"))
	assert.False(t, CheckPassword(hashed, "wrongPassword"))
	assert.False(t, CheckPassword(hashed, ""))
	assert.False(t, CheckPassword("not-a-hash", "correctPassword"))
}

func TestGenerateAccessToken(t *testing.T) {
	t.Run("Subject is the email", func(t *testing.T) {
		token, err := GenerateAccessToken("user@example.com", testSecret, time.Minute)
		require.NoError(t, err)

		claims, err := ValidateToken(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "user@example.com", claims.Subject)
		assert.Equal(t, jwtIssuer, claims.Issuer)
		assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
	})

	t.Run("Default TTL when not positive", func(t *testing.T) {
		token, err := GenerateAccessToken("user@example.com", testSecret, 0)
		require.NoError(t, err)

		claims, err := ValidateToken(token, testSecret)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(DefaultAccessTokenTTL), claims.ExpiresAt.Time, 5*time.Second)
	})

	t.Run("Fail with empty secret", func(t *testing.T) {
		token, err := GenerateAccessToken("user@example.com", "", time.Minute)
		assert.Equal(t, ErrEmptyJWTSecret, err)
		assert.Empty(t, token)
	})
}

func TestValidateToken(t *testing.T) {
	valid, err := GenerateAccessToken("a@x.com", testSecret, time.Minute)
	require.NoError(t, err)

	t.Run("Expired", func(t *testing.T) {
		token := signClaims(t, validClaims("a@x.com", time.Now().Add(-time.Hour)), jwt.SigningMethodHS256, []byte(testSecret))
		_, err := ValidateToken(token, testSecret)
		assert.Equal(t, ErrTokenExpired, err)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		_, err := ValidateToken(valid, "other-secret")
		assert.Equal(t, ErrInvalidToken, err)
	})

	t.Run("Tampered payload", func(t *testing.T) {
		other, err := GenerateAccessToken("b@x.com", testSecret, time.Minute)
		require.NoError(t, err)

		vp := strings.Split(valid, ".")
		op := strings.Split(other, ".")
		forged := strings.Join([]string{vp[0], op[1], vp[2]}, ".")

		_, err = ValidateToken(forged, testSecret)
		assert.Equal(t, ErrInvalidToken, err)
	})

	t.Run("None algorithm", func(t *testing.T) {
		token := signClaims(t, validClaims("a@x.com", time.Now().Add(time.Hour)), jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType)
		_, err := ValidateToken(token, testSecret)
		assert.Equal(t, ErrInvalidToken, err)
	})

	t.Run("Missing expiry", func(t *testing.T) {
		claims := validClaims("a@x.com", time.Now())
		claims.ExpiresAt = nil
		token := signClaims(t, claims, jwt.SigningMethodHS256, []byte(testSecret))
		_, err := ValidateToken(token, testSecret)
		assert.Equal(t, ErrInvalidToken, err)
	})

	t.Run("Wrong audience", func(t *testing.T) {
		claims := validClaims("a@x.com", time.Now().Add(time.Hour))
		claims.Audience = []string{"someone-else"}
		token := signClaims(t, claims, jwt.SigningMethodHS256, []byte(testSecret))
		_, err := ValidateToken(token, testSecret)
		assert.Equal(t, ErrInvalidToken, err)
	})

	t.Run("Empty subject", func(t *testing.T) {
		token := signClaims(t, validClaims("", time.Now().Add(time.Hour)), jwt.SigningMethodHS256, []byte(testSecret))
		_, err := ValidateToken(token, testSecret)
		assert.Equal(t, ErrInvalidToken, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ValidateToken("not.a.token", testSecret)
		assert.Equal(t, ErrInvalidToken, err)
	})

	t.Run("Empty secret", func(t *testing.T) {
		_, err := ValidateToken(valid, "")
		assert.Equal(t, ErrEmptyJWTSecret, err)
	})
}
