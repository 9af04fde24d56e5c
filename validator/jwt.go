package validator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3filter"
	middleware "github.com/oapi-codegen/gin-middleware"

	"hallApi/services/session"
)

type key string

const sessionClaims key = "session_claims"

// FromContext returns the claims the authenticator stored for the current request.
func FromContext(ctx context.Context) (*session.Claims, bool) {
	c, ok := ctx.Value(string(sessionClaims)).(*session.Claims)
	return c, ok
}

var (
	ErrNoAuthHeader      = errors.New("Authorization header is missing")
	ErrInvalidAuthHeader = errors.New("Authorization header is malformed")
)

// GetJWSFromRequest extracts a JWS string from an Authorization: Bearer <jws> header
func GetJWSFromRequest(req *http.Request) (string, error) {
	authHdr := req.Header.Get("Authorization")
	// Check for the Authorization header.
	if authHdr == "" {
		return "", ErrNoAuthHeader
	}
	// We expect a header value of the form "Bearer <token>", with 1 space after
	// Bearer, per RFC 6750.
	prefix := "Bearer "
	if !strings.HasPrefix(authHdr, prefix) {
		return "", ErrInvalidAuthHeader
	}
	return strings.TrimPrefix(authHdr, prefix), nil
}

// NewAuthenticator returns the openapi3filter hook for the bearerAuth scheme. It
// verifies the session token and sets its claims on the gin context so handlers can
// read them with FromContext.
func NewAuthenticator(tokens *session.Tokens) openapi3filter.AuthenticationFunc {
	return func(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
		if input.SecuritySchemeName != "bearerAuth" {
			return fmt.Errorf("security scheme %s != 'bearerAuth'", input.SecuritySchemeName)
		}

		jws, err := GetJWSFromRequest(input.RequestValidationInput.Request)
		if err != nil {
			return fmt.Errorf("getting jws: %w", err)
		}

		claims, err := tokens.Verify(jws)
		if err != nil {
			return err
		}

		gCtx := middleware.GetGinContext(ctx)
		if gCtx == nil {
			return errors.New("no gin context on request")
		}
		gCtx.Set(string(sessionClaims), claims)
		return nil
	}
}
