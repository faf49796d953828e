package openmetadata

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/metadata"
)

// Properties holds the property values of an element or relationship
type Properties map[string]any

// UnmarshalJSON accepts either a plain object or an ElementProperties object
// with a propertyValueMap of typed values
func (p *Properties) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*p = nil
		return nil
	}
	if valueMap, ok := raw["propertyValueMap"].(map[string]any); ok {
		*p = flattenValueMap(valueMap)
		return nil
	}
	delete(raw, "class")
	*p = raw
	return nil
}

func flattenValueMap(valueMap map[string]any) Properties {
	out := make(Properties, len(valueMap))
	for name, v := range valueMap {
		out[name] = flattenValue(v)
	}
	return out
}

// flattenValue turns a typed property value into the plain value it carries
func flattenValue(v any) any {
	typed, ok := v.(map[string]any)
	if !ok {
		return v
	}
	if pv, ok := typed["primitiveValue"]; ok {
		return pv
	}
	if mv, ok := typed["mapValues"].(map[string]any); ok {
		inner, _ := mv["propertyValueMap"].(map[string]any)
		return map[string]any(flattenValueMap(inner))
	}
	if av, ok := typed["arrayValues"].(map[string]any); ok {
		inner, _ := av["propertyValueMap"].(map[string]any)
		// Array elements are keyed by their index
		keys := make([]int, 0, len(inner))
		for k := range inner {
			if i, err := strconv.Atoi(k); err == nil {
				keys = append(keys, i)
			}
		}
		sort.Ints(keys)
		list := make([]any, 0, len(keys))
		for _, k := range keys {
			list = append(list, flattenValue(inner[strconv.Itoa(k)]))
		}
		return list
	}
	if ev, ok := typed["symbolicName"]; ok {
		return ev
	}
	return v
}

// String returns the named property as a string. Numbers and booleans are formatted.
func (p Properties) String(name string) string {
	switch v := p[name].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

// Int returns the named property as an integer
func (p Properties) Int(name string) (int64, bool) {
	return toInt(p[name])
}

// Float returns the named property as a float
func (p Properties) Float(name string) (float64, bool) {
	switch v := p[name].(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Bool returns the named property as a boolean
func (p Properties) Bool(name string) bool {
	switch v := p[name].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	default:
		return false
	}
}

// Time returns the named property as a time. Epoch milliseconds and RFC 3339
// strings are understood.
func (p Properties) Time(name string) (time.Time, bool) {
	switch v := p[name].(type) {
	case float64:
		return time.UnixMilli(int64(v)).UTC(), true
	case json.Number:
		ms, err := v.Int64()
		if err != nil {
			return time.Time{}, false
		}
		return time.UnixMilli(ms).UTC(), true
	case string:
		t, err := metadata.ParseTime(v)
		return t, err == nil
	default:
		return time.Time{}, false
	}
}

// StringMap returns the named map property with every value formatted as a string
func (p Properties) StringMap(name string) map[string]string {
	m, ok := p[name].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(m))
	sub := Properties(m)
	for k := range m {
		out[k] = sub.String(k)
	}
	return out
}

// CountMap returns the named map property as counts. Entries that are not
// whole numbers are left out.
func (p Properties) CountMap(name string) map[string]int64 {
	m, ok := p[name].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]int64, len(m))
	for k, v := range m {
		if n, ok := toInt(v); ok {
			out[k] = n
		}
	}
	return out
}

// StringList returns the named array property as strings
func (p Properties) StringList(name string) []string {
	list, ok := p[name].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}
