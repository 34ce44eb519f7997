// Package docs embeds the OpenAPI description and the Scalar reference page.
package docs

import _ "embed"

//go:embed openapi.yaml
var OpenAPIYAML []byte

//go:embed scalar.html
var ScalarHTML []byte
