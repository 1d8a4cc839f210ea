package req

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads a JSON body into the requested payload type.
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	err := json.NewDecoder(body).Decode(&payload)
	if err != nil {
		return payload, fmt.Errorf("failed to decode request body: %w", err)
	}
	return payload, nil
}
