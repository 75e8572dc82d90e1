package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func protectedEcho(t *testing.T, role string) http.Handler {
	t.Helper()
	return RequireRole(testSecret, role)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		require.NotNil(t, sess)
		w.WriteHeader(http.StatusOK)
	}))
}

func renterToken(t *testing.T) string {
	t.Helper()
	token, err := GenerateSessionToken(testSecret, Session{Role: RoleRenter, ActorID: 1, DisplayName: "Asha"}, time.Hour)
	require.NoError(t, err)
	return token
}

func TestRequireRoleNoToken(t *testing.T) {
	rec := httptest.NewRecorder()
	protectedEcho(t, RoleRenter).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: renterToken(t)})

	rec := httptest.NewRecorder()
	protectedEcho(t, RoleRenter).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+renterToken(t))

	rec := httptest.NewRecorder()
	protectedEcho(t, RoleRenter).ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

// A renter token does not open agent routes.
func TestRequireRoleWrongRole(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: renterToken(t)})

	rec := httptest.NewRecorder()
	protectedEcho(t, RoleAgent).ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleExpiredToken(t *testing.T) {
	token, err := GenerateSessionToken(testSecret, Session{Role: RoleRenter, ActorID: 1}, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	rec := httptest.NewRecorder()
	protectedEcho(t, RoleRenter).ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleTamperedToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+renterToken(t)+"x")

	rec := httptest.NewRecorder()
	protectedEcho(t, RoleRenter).ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
