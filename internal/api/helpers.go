package api

import (
	"encoding/json/v2"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

// decodeBody unmarshals the request body into dst.
func decodeBody(r *http.Request, dst any) error {
	if err := json.UnmarshalRead(r.Body, dst); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// idParam parses the {id} URL parameter.
func idParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// optionalID is a nullable entity reference in a request body. Clients send
// ids as strings (matching our responses), but numbers and null are
// accepted too.
type optionalID struct {
	value *int64
}

// Value returns the decoded id, nil when absent or null.
func (o optionalID) Value() *int64 { return o.value }

// UnmarshalJSON implements json.Unmarshaler.
func (o *optionalID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		o.value = nil
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", s)
	}
	o.value = &v
	return nil
}

// timeLayouts are the formats accepted for timestamps in request bodies.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseClientTime parses a timestamp sent by a client.
func parseClientTime(raw string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", raw)
}

// looseBool applies the client's loose completed convention: JSON true or
// the literal string "true" count as true, anything else as false.
func looseBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true"
	default:
		return false
	}
}
