package settings

import (
	"reflect"
	"strconv"
	"strings"
)

// fieldInfo pairs a struct field index with its JSON key.
type fieldInfo struct {
	index int
	key   string
}

var recordFields = buildRecordFields()

func buildRecordFields() []fieldInfo {
	t := reflect.TypeOf(Settings{})
	fields := make([]fieldInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		key, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		fields = append(fields, fieldInfo{index: i, key: key})
	}
	return fields
}

// Normalize merges a possibly-partial raw record against the defaults. For
// every canonical field: absent input keeps the default; present input is
// coerced to the field's type, falling back to the default when coercion
// fails. It never returns an incomplete record and never fails.
func Normalize(in map[string]any) Settings {
	out := Default()
	rv := reflect.ValueOf(&out).Elem()

	for _, f := range recordFields {
		raw, ok := in[f.key]
		if !ok || raw == nil {
			continue
		}
		field := rv.Field(f.index)
		switch field.Kind() {
		case reflect.String:
			if s, ok := coerceString(raw); ok {
				field.SetString(s)
			}
		case reflect.Int:
			if n, ok := coerceInt(raw); ok {
				field.SetInt(int64(n))
			}
		case reflect.Float64:
			if x, ok := coerceFloat(raw); ok {
				field.SetFloat(x)
			}
		case reflect.Bool:
			if b, ok := coerceBool(raw); ok {
				field.SetBool(b)
			}
		case reflect.Map:
			// mapping fields are copied, not coerced; a wrong shape falls
			// back to the default
			if m, ok := coerceStringMap(raw); ok {
				field.Set(reflect.ValueOf(m))
			}
		}
	}
	return out
}

// NormalizeSettings re-normalizes an already-typed record. Idempotent:
// NormalizeSettings(NormalizeSettings(x)) == NormalizeSettings(x).
func NormalizeSettings(s Settings) Settings {
	return Normalize(ToMap(s))
}

// ToMap flattens a record into its raw JSON-key form. Mapping values are
// cloned so callers may mutate the result freely.
func ToMap(s Settings) map[string]any {
	rv := reflect.ValueOf(s)
	out := make(map[string]any, len(recordFields))
	for _, f := range recordFields {
		field := rv.Field(f.index)
		if field.Kind() == reflect.Map {
			clone := make(map[string]string, field.Len())
			for _, mk := range field.MapKeys() {
				clone[mk.String()] = field.MapIndex(mk).String()
			}
			out[f.key] = clone
			continue
		}
		out[f.key] = field.Interface()
	}
	return out
}

func coerceString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		return "", false
	}
}

func coerceInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		return int(val), true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func coerceFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		x, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return x, true
	default:
		return 0, false
	}
}

func coerceBool(v any) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			return false, false
		}
		return b, true
	case float64:
		return val != 0, true
	case int:
		return val != 0, true
	default:
		return false, false
	}
}

func coerceStringMap(v any) (map[string]string, bool) {
	switch val := v.(type) {
	case map[string]string:
		clone := make(map[string]string, len(val))
		for k, s := range val {
			clone[k] = s
		}
		return clone, true
	case map[string]any:
		clone := make(map[string]string, len(val))
		for k, raw := range val {
			s, ok := coerceString(raw)
			if !ok {
				return nil, false
			}
			clone[k] = s
		}
		return clone, true
	default:
		return nil, false
	}
}
