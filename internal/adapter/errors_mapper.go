package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-entry-keeper/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	return NewResponseError(code, extractMessage(resp.Body()))
}

// extractMessage reads the `message` field of a failure body. Bodies of any
// other shape (proxy error pages, plain text) yield "" so callers fall back
// to their generic message.
func extractMessage(body []byte) string {
	var failure models.ErrorResponse
	if err := json.Unmarshal(body, &failure); err != nil {
		return ""
	}
	return strings.TrimSpace(failure.Message)
}
