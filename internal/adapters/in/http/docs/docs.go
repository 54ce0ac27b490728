// Package docs holds the OpenAPI description of the REST API and registers it
// with swag so echo-swagger can serve it under /swagger/.
package docs

import (
	_ "embed"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var spec []byte

// Spec returns the OpenAPI 3 document as YAML.
func Spec() []byte {
	return spec
}

// Load parses and validates the document.
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}
	return doc, nil
}

// document serves the OpenAPI document as JSON to swagger-ui. It falls back to the raw YAML,
// which swagger-ui also reads, if conversion fails.
type document struct {
	once sync.Once
	json string
}

func (d *document) ReadDoc() string {
	d.once.Do(func() {
		d.json = string(spec)
		doc, err := Load()
		if err != nil {
			return
		}
		if raw, err := doc.MarshalJSON(); err == nil {
			d.json = string(raw)
		}
	})
	return d.json
}

func init() {
	swag.Register(swag.Name, &document{})
}
