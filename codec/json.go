package codec

import (
	"encoding/json"
)

// JSON encodes with the standard library. Select it with --codec json when
// byte-for-byte agreement with other encoding/json tooling matters.
type JSON struct{}

func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (JSON) MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}

func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns "json".
func (JSON) Name() string { return "json" }

// Default is used for run files and reports unless another codec is chosen.
var Default Codec = GoJSON{}
