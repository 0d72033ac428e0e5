package backend

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/SalBom/app-sb-sub001/internal/domain/invoice"
)

const maxErrorBodySize = 64 << 10

// errorBody covers the two error shapes seen from the backend: RFC 9457
// problem details and the plain {"error": "..."} objects of its Flask routes.
type errorBody struct {
	Detail  string `json:"detail"`
	Title   string `json:"title"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// translateStatus builds the HTTPStatusError for a non-2xx response, using
// the body's message as detail when one can be read.
func translateStatus(resp *http.Response) *invoice.HTTPStatusError {
	return &invoice.HTTPStatusError{
		StatusCode: resp.StatusCode,
		Detail:     errorDetail(resp),
	}
}

func errorDetail(resp *http.Response) string {
	if resp.Body == nil || !isJSON(resp.Header.Get("Content-Type")) {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return ""
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}

	for _, candidate := range []string{eb.Detail, eb.Error, eb.Message, eb.Title} {
		if s := strings.TrimSpace(candidate); s != "" {
			return s
		}
	}
	return ""
}

// isJSON accepts application/json, application/problem+json and other +json types.
func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
