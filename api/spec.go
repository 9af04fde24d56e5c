package api

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --config=cfg.yaml openapi.yaml

//go:embed openapi.yaml
var rawSpec []byte

// GetSwagger parses the embedded OpenAPI document. Each call returns a fresh copy so
// callers may mutate it (for example to clear Servers).
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi document: %w", err)
	}
	return swagger, nil
}

// RawSpec returns the embedded OpenAPI document as written.
func RawSpec() []byte {
	return rawSpec
}
