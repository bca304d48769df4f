package utils

import (
	"encoding/json"
	"strings"
)

// ParseList reads a list setting written either as a JSON array or as a
// comma separated string. Blank entries are dropped.
func ParseList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || s == "[]" {
		return []string{}
	}

	var raw []string
	if strings.HasPrefix(s, "[") {
		if err := json.Unmarshal([]byte(s), &raw); err != nil {
			raw = strings.Split(strings.Trim(s, "[]"), ",")
		}
	} else {
		raw = strings.Split(s, ",")
	}

	out := make([]string, 0, len(raw))
	for _, v := range raw {
		v = strings.Trim(strings.TrimSpace(v), `"`)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
