package recommend

import (
	"bytes"
	"encoding/json"
)

// Value is a response field the server may send as either a JSON number or
// a JSON string. The exact text is kept so it can be rendered as-is.
type Value string

// UnmarshalJSON keeps numbers and booleans as written and unquotes strings.
// null becomes the empty value.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*v = ""
		return nil
	case bytes.Equal(trimmed, []byte("true")), bytes.Equal(trimmed, []byte("false")):
		*v = Value(trimmed)
		return nil
	case len(trimmed) > 0 && trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = Value(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return err
		}
		*v = Value(n.String())
		return nil
	}
}

func (v Value) String() string {
	return string(v)
}

// Recommendation is one movie suggestion returned by the API.
type Recommendation struct {
	Name        string `json:"name"`
	Rating      Value  `json:"rating"`
	Description string `json:"description"`
	Director    string `json:"director"`
	Actors      string `json:"actors"`
	Similarity  Value  `json:"similarity"`
}
