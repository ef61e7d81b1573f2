package security

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// LearnerCookie is the cookie carrying the signed learner token.
const LearnerCookie = "learner_token"

const tokenIssuer = "lingolab"

var ErrInvalidToken = errors.New("invalid learner token")

// LearnerTokens issues and verifies the HS256 tokens that identify an
// anonymous learner across visits.
type LearnerTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewLearnerTokens(secret string, ttl time.Duration) *LearnerTokens {
	return &LearnerTokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// NewLearnerID creates a fresh random learner identifier.
func NewLearnerID() string {
	return uuid.New().String()
}

// TTL returns the lifetime given to issued tokens.
func (lt *LearnerTokens) TTL() time.Duration {
	return lt.ttl
}

// Issue signs a token whose subject is learnerID.
func (lt *LearnerTokens) Issue(learnerID string) (string, time.Time, error) {
	if _, err := uuid.Parse(learnerID); err != nil {
		return "", time.Time{}, fmt.Errorf("learner id %q: %w", learnerID, err)
	}
	now := lt.now()
	expires := now.Add(lt.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   learnerID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(lt.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign learner token: %w", err)
	}
	return signed, expires, nil
}

// Parse verifies token and returns the learner ID it carries.
func (lt *LearnerTokens) Parse(token string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(lt.now),
	)
	claims := &jwt.RegisteredClaims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return lt.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}

// IsSecureRequest determines if the request is over HTTPS
// Checks TLS connection, X-Forwarded-Proto header (for reverse proxies), and URL scheme
func IsSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" {
		return true
	}
	return r.URL.Scheme == "https"
}

// LearnerTokenCookie wraps a signed token in a cookie.
// The Secure flag follows the request scheme.
func LearnerTokenCookie(r *http.Request, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     LearnerCookie,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	}
}
