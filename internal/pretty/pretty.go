// Package pretty renders values for failure messages.
package pretty

import (
	"fmt"

	gojson "github.com/goccy/go-json"
)

// JSON renders v as compact JSON, falling back to fmt for values that do
// not marshal.
func JSON(v any) string {
	b, err := gojson.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}
