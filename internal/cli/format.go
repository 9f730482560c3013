package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// mustJSONIndent renders v as indented JSON. The DTOs here cannot fail to
// marshal; a failure would be a programming error worth surfacing loudly.
func mustJSONIndent(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(b)
}

// relevantKeys returns the raw-config keys that look context related,
// sorted for stable output.
func relevantKeys(cfg map[string]any) []string {
	var keys []string
	for k := range cfg {
		lk := strings.ToLower(k)
		if strings.Contains(lk, "max") || strings.Contains(lk, "position") ||
			strings.Contains(lk, "window") || strings.Contains(lk, "rope") ||
			strings.Contains(lk, "ctx") {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// asInt reports whether v is an integral JSON number and returns it as int64.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}

// formatValue renders a decoded JSON value for prose output: integral
// numbers without an exponent, nil as N/A, everything else as compact JSON.
func formatValue(v any) string {
	if v == nil {
		return "N/A"
	}
	if n, ok := asInt(v); ok {
		return strconv.FormatInt(n, 10)
	}
	switch s := v.(type) {
	case string:
		return s
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}

// groupDigits renders n with thousands separators, e.g. 32768 -> "32,768".
func groupDigits(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
