package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer identifies this service in every session token it signs.
const TokenIssuer = "WeRentHomes"

// SessionCookieName carries the session token for browser clients.
const SessionCookieName = "werent_session"

const (
	RoleRenter = "renter"
	RoleAgent  = "agent"
)

// Session is the per-request authenticated identity: the actor's role,
// the role-specific numeric id and the display name shown in the UI.
type Session struct {
	Role        string `json:"role"`
	ActorID     int64  `json:"actor_id"`
	DisplayName string `json:"display_name"`
}

// GenerateSessionToken signs a stateless session token for the actor.
func GenerateSessionToken(secret []byte, s Session, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":  TokenIssuer,
		"sub":  s.ActorID,
		"role": s.Role,
		"name": s.DisplayName,
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseSessionToken validates the signature and standard claims and
// returns the embedded session.
func ParseSessionToken(secret []byte, tokenStr string) (*Session, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	iss, _ := claims["iss"].(string)
	if iss != TokenIssuer {
		return nil, errors.New("invalid token issuer")
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, errors.New("missing expiration claim")
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, jwt.ErrTokenExpired
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, errors.New("missing subject claim")
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, errors.New("missing role claim")
	}
	name, _ := claims["name"].(string)

	return &Session{
		Role:        role,
		ActorID:     int64(sub),
		DisplayName: name,
	}, nil
}

// SetSessionCookie writes the session token as a lax, http-only cookie.
func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie (logout).
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// extractSessionToken reads the token from the session cookie, falling
// back to Authorization: Bearer for non-browser clients.
func extractSessionToken(r *http.Request) (string, error) {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", errors.New("missing session token")
	}
	return strings.TrimPrefix(h, "Bearer "), nil
}
