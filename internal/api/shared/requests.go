package shared

import (
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
)

// maxRequestBodyBytes bounds request bodies so a client cannot exhaust
// memory with an oversized payload.
const maxRequestBodyBytes = 1 << 20 // 1 MiB

// DecodeJSON decodes the request body into dst, enforcing the body
// size limit.
func DecodeJSON(r *http.Request, dst interface{}) error {
	body := io.LimitReader(r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}
