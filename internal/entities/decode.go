package entities

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// StringKeys rewrites YAML-decoded values so every mapping has string keys,
// which lets YAML documents go through the same JSON decoding as JSON files.
func StringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = StringKeys(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = StringKeys(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = StringKeys(val)
		}
		return t
	}
	return v
}

func lookup(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func asMap(v any) map[string]any {
	if m, ok := StringKeys(v).(map[string]any); ok {
		return m
	}
	return nil
}

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n), true
		}
		if f, err := t.Float64(); err == nil {
			return int(f), true
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n, true
		}
	}
	return 0, false
}

func intOr(v any, def int) int {
	if n, ok := asInt(v); ok {
		return n
	}
	return def
}

func asBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(t))
		return b
	}
	n, ok := asInt(v)
	return ok && n != 0
}

// nameList reads a string, a list of strings, or a list of {name|index}
// objects as a list of names.
func nameList(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
		return nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if name := itemName(item); name != "" {
				out = append(out, name)
			}
		}
		return out
	case []string:
		return t
	}
	return nil
}

func itemName(v any) string {
	if m := asMap(v); m != nil {
		return asString(lookup(m, "name", "index"))
	}
	return asString(v)
}
