package kafka

import "encoding/json"

// MustMarshal panics on marshal failure; event structs contain nothing that
// can fail to encode.
func MustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
