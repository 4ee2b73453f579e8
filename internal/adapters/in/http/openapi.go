package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// ErrUnknownSchema is returned when a request body is checked against a
// schema the API document does not define.
var ErrUnknownSchema = errors.New("schema is not defined in the API document")

var registerSwaggerOnce sync.Once

// APIDoc is the parsed API document. Request bodies are validated against
// its component schemas before they are bound.
type APIDoc struct {
	doc  *openapi3.T
	json []byte
}

// LoadAPIDoc parses and validates the embedded API document and registers it
// with swag so that /swagger/* can serve it.
func LoadAPIDoc(ctx context.Context) (*APIDoc, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("parse API document: %w", err)
	}

	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate API document: %w", err)
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode API document: %w", err)
	}

	registerSwaggerOnce.Do(func() {
		swag.Register(swag.Name, &swag.Spec{
			Title:            doc.Info.Title,
			Version:          doc.Info.Version,
			Description:      doc.Info.Description,
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(raw),
		})
	})

	return &APIDoc{doc: doc, json: raw}, nil
}

// JSON returns the document encoded as JSON.
func (a *APIDoc) JSON() []byte {
	return a.json
}

// bindBody checks the JSON request body against the named component schema
// and decodes it into dest.
func (a *APIDoc) bindBody(c echo.Context, schemaName string, dest any) error {
	ref, ok := a.doc.Components.Schemas[schemaName]
	if !ok || ref.Value == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, schemaName)
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return err
	}

	var generic any
	if err = json.Unmarshal(body, &generic); err != nil {
		return &requestError{cause: fmt.Errorf("malformed JSON body: %w", err)}
	}

	if err = ref.Value.VisitJSON(generic); err != nil {
		return &requestError{cause: err}
	}

	if err = json.Unmarshal(body, dest); err != nil {
		return &requestError{cause: err}
	}

	return nil
}

// requestError marks a body that failed decoding or schema validation.
type requestError struct {
	cause error
}

func (e *requestError) Error() string {
	return "invalid request body: " + e.cause.Error()
}

func (e *requestError) Unwrap() error {
	return e.cause
}
