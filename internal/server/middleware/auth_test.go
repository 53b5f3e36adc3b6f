package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticClaims struct {
	id uuid.UUID
}

func (c staticClaims) GetUserID() uuid.UUID { return c.id }

// staticValidator accepts exactly one token string.
type staticValidator struct {
	token string
	id    uuid.UUID
}

func (v *staticValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	if tokenString != v.token {
		return nil, fmt.Errorf("invalid token")
	}
	return staticClaims{id: v.id}, nil
}

func runAuth(t *testing.T, validator TokenValidator, authHeader string) (*httptest.ResponseRecorder, bool, uuid.UUID) {
	t.Helper()
	var called bool
	var gotID uuid.UUID

	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		id, err := GetUserID(r)
		require.NoError(t, err)
		gotID = id
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, called, gotID
}

func TestAuth_MissingHeader(t *testing.T) {
	rec, called, _ := runAuth(t, &staticValidator{}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuth_MalformedHeader(t *testing.T) {
	v := &staticValidator{token: "good", id: uuid.New()}

	for _, header := range []string{
		"good",
		"Basic good",
		"Bearer",
		"Bearer one two",
	} {
		rec, called, _ := runAuth(t, v, header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.False(t, called, "header %q", header)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	v := &staticValidator{token: "good", id: uuid.New()}

	rec, called, _ := runAuth(t, v, "Bearer forged")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuth_ValidToken(t *testing.T) {
	id := uuid.New()
	v := &staticValidator{token: "good", id: id}

	rec, called, gotID := runAuth(t, v, "Bearer good")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, id, gotID)
}

func TestAuth_BearerCaseInsensitive(t *testing.T) {
	id := uuid.New()
	v := &staticValidator{token: "good", id: id}

	rec, called, gotID := runAuth(t, v, "bearer good")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, id, gotID)
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	_, err := GetUserID(req)
	assert.Error(t, err)
}
