package validator

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/gin-gonic/gin"
	middleware "github.com/oapi-codegen/gin-middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hallApi/services/session"
)

const testSpec = `
openapi: 3.0.3
info:
  title: validator test
  version: "1"
paths:
  /secret:
    get:
      operationId: secret
      security:
        - bearerAuth: []
      responses:
        '200':
          description: ok
  /open:
    post:
      operationId: open
      requestBody:
        required: true
        content:
          application/json:
            schema:
              type: object
              required: [name]
              properties:
                name:
                  type: string
      responses:
        '200':
          description: ok
components:
  securitySchemes:
    bearerAuth:
      type: http
      scheme: bearer
`

func TestGetJWSFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"missing header", "", "", ErrNoAuthHeader},
		{"wrong scheme", "Basic abc", "", ErrInvalidAuthHeader},
		{"bearer token", "Bearer abc.def.ghi", "abc.def.ghi", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			got, err := GetJWSFromRequest(req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newTestRouter(t *testing.T, tokens *session.Tokens) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	swagger, err := openapi3.NewLoader().LoadFromData([]byte(testSpec))
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.OapiRequestValidatorWithOptions(swagger, &middleware.Options{
		ErrorHandler: ErrorHandler,
		Options: openapi3filter.Options{
			AuthenticationFunc: NewAuthenticator(tokens),
		},
	}))
	r.GET("/secret", func(c *gin.Context) {
		claims, ok := FromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userName": claims.UserName})
	})
	r.POST("/open", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthenticator(t *testing.T) {
	tokens := session.NewTokens([]byte("validator-secret"), time.Hour)
	valid, _, err := tokens.Issue("user-1", "keith")
	require.NoError(t, err)
	r := newTestRouter(t, tokens)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/secret", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "keith", body["userName"])
			} else {
				assert.NotEmpty(t, body["message"])
			}
		})
	}
}

func TestErrorHandlerKeepsBadRequest(t *testing.T) {
	r := newTestRouter(t, session.NewTokens([]byte("validator-secret"), time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/open", nil)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")
}
