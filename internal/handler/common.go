package handler // handler defines http handlers

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// pathID extracts a numeric :id (or other named) path parameter. It
// returns false when the parameter is missing or not a positive integer.
func pathID(c echo.Context, name string) (uint64, bool) {
	raw := strings.TrimSpace(c.Param(name))
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}

// pathIndex extracts a zero-based :index path parameter. Negative values
// and non-numbers are rejected; range checking against the actual slot
// sequence is left to the engine.
func pathIndex(c echo.Context) (int, bool) {
	raw := strings.TrimSpace(c.Param("index"))
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// tagList accepts the two shapes clients send tags in: a JSON array of
// strings or a single comma-separated string. Every tag is trimmed and
// lowercased; empty entries are dropped. Anything else decodes to an
// empty list.
type tagList []string

// UnmarshalJSON implements the lenient tag decoding.
func (t *tagList) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*t = cleanTags(arr)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = cleanTags(strings.Split(s, ","))
		return nil
	}
	*t = tagList{}
	return nil
}

// cleanTags normalizes raw tag values to trimmed lowercase and drops the
// empties left behind by trailing commas.
func cleanTags(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
