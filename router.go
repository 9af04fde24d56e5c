package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	middleware "github.com/oapi-codegen/gin-middleware"

	"hallApi/api"
	"hallApi/logging"
	"hallApi/validator"
)

// NewRouter builds the gin engine serving server. Everything under /api is validated
// against the OpenAPI document; the docs and health check are not.
func NewRouter(server Server) (*gin.Engine, error) {
	// Load OpenAPI spec file
	swagger, err := api.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to load swagger spec: %w", err)
	}
	// Clear out the servers array in the swagger spec, that skips validating
	// that server names match. We don't know how this thing will be run.
	swagger.Servers = nil

	r := gin.New()
	r.Use(gin.Recovery(), logging.RequestLogger(), cors.Default())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.RegisterDocs(r, swagger)

	validated := r.Group("", middleware.OapiRequestValidatorWithOptions(swagger, &middleware.Options{
		ErrorHandler: validator.ErrorHandler,
		Options: openapi3filter.Options{
			AuthenticationFunc: validator.NewAuthenticator(server.Tokens),
		},
	}))

	h := api.NewStrictHandler(server, []api.StrictMiddlewareFunc{logOperation})
	api.RegisterHandlersWithOptions(validated, h, api.GinServerOptions{
		ErrorHandler: func(c *gin.Context, err error, statusCode int) {
			c.JSON(statusCode, gin.H{"message": err.Error()})
		},
	})
	return r, nil
}

func logOperation(f api.StrictHandlerFunc, operationID string) api.StrictHandlerFunc {
	return func(ctx *gin.Context, request interface{}) (interface{}, error) {
		slog.Debug("handling operation", "operation", operationID)
		return f(ctx, request)
	}
}
