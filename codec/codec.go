// Package codec centralizes JSON encoding of run files and reports.
//
// Two interchangeable codecs exist: "json" (encoding/json) and "go-json"
// (github.com/goccy/go-json, the default). They accept the same input and
// produce equivalent output, so a report written by one decodes with the other.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	MarshalIndent(v any, prefix, indent string) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Names lists the built-in codec names accepted by ByName.
var Names = []string{"json", "go-json"}

// ByName returns a built-in codec by its stable name.
// The empty name selects Default.
func ByName(name string) (Codec, bool) {
	switch name {
	case "":
		return Default, true
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}
