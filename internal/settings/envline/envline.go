package envline

import (
	"sort"
	"strings"
)

// Encode renders a map as one KEY=VALUE line per entry, keys sorted for
// deterministic output. Values containing a newline are wrapped in single
// quotes; values containing whitespace or a quote character, and empty
// values, are wrapped in double quotes. Embedded quote characters are not
// escaped, so values mixing quotes and newlines do not round-trip.
func Encode(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+quote(m[k]))
	}
	return strings.Join(lines, "\n")
}

// Decode parses a KEY=VALUE text block back into a map. Lines without '=',
// and lines whose key is empty or starts with '#', are skipped. Values have
// at most one layer of surrounding single or double quotes stripped. A
// single- or double-quoted value may span multiple lines; following lines
// are stripped of trailing whitespace and consumed until the closing quote.
func Decode(text string) map[string]string {
	out := make(map[string]string)
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		rawKey, rawVal, ok := strings.Cut(lines[i], "=")
		if !ok {
			continue
		}
		key := strings.TrimSpace(rawKey)
		if key == "" || strings.HasPrefix(key, "#") {
			continue
		}
		val := strings.TrimSpace(rawVal)
		if q, open := openQuote(val); open {
			for i+1 < len(lines) && !closes(val, q) {
				i++
				val += "\n" + strings.TrimRight(lines[i], " \t")
			}
		}
		out[key] = unquote(val)
	}
	return out
}

func quote(v string) string {
	switch {
	case strings.Contains(v, "\n"):
		return "'" + v + "'"
	case v == "" || strings.ContainsAny(v, " \t\"'"):
		return "\"" + v + "\""
	default:
		return v
	}
}

// openQuote reports whether v starts a quoted value whose closing quote is
// not on the same line.
func openQuote(v string) (byte, bool) {
	if v == "" || (v[0] != '\'' && v[0] != '"') {
		return 0, false
	}
	return v[0], !closes(v, v[0])
}

func closes(v string, q byte) bool {
	return len(v) >= 2 && v[len(v)-1] == q
}

func unquote(v string) string {
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if first == last && (first == '\'' || first == '"') {
			return v[1 : len(v)-1]
		}
	}
	return v
}
