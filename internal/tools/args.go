package tools

import (
	"time"
)

// Аргументы приходят распакованным JSON (map[string]any), поэтому числа —
// всегда float64. Хелперы возвращают (значение, присутствует ли ключ).

func strArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key].(string)
	return v, ok
}

func intArg(args map[string]any, key string) (int64, bool) {
	v, ok := args[key].(float64)
	if !ok {
		return 0, false
	}
	return int64(v), true
}

func floatArg(args map[string]any, key string) (float64, bool) {
	v, ok := args[key].(float64)
	return v, ok
}

func boolArg(args map[string]any, key string) (bool, bool) {
	v, ok := args[key].(bool)
	return v, ok
}

func objArg(args map[string]any, key string) (map[string]any, bool) {
	v, ok := args[key].(map[string]any)
	return v, ok
}

func arrArg(args map[string]any, key string) ([]any, bool) {
	v, ok := args[key].([]any)
	return v, ok
}

func strSliceArg(args map[string]any, key string) ([]string, bool) {
	raw, ok := args[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// Указательные варианты для частичных апдейтов.

func strPtrArg(args map[string]any, key string) *string {
	if v, ok := strArg(args, key); ok {
		return &v
	}
	return nil
}

func intPtrArg(args map[string]any, key string) *int64 {
	if v, ok := intArg(args, key); ok {
		return &v
	}
	return nil
}

func intValPtrArg(args map[string]any, key string) *int {
	if v, ok := intArg(args, key); ok {
		n := int(v)
		return &n
	}
	return nil
}

func boolPtrArg(args map[string]any, key string) *bool {
	if v, ok := boolArg(args, key); ok {
		return &v
	}
	return nil
}
