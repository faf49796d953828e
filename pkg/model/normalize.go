package model

import (
	"reflect"
	"time"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/metadata"
)

// Equal compares a value read back from the database with a freshly built
// one. Drivers hand back different Go types for the same column (int32 vs
// int64, []byte vs string, local vs UTC times) so both sides are normalised
// first.
func Equal(a, b any) bool {
	na, nb := normalize(a), normalize(b)
	if na == nil || nb == nil {
		return na == nil && nb == nil
	}

	switch x := na.(type) {
	case time.Time:
		return timesEqual(x, nb)
	case bool:
		if y, ok := nb.(int64); ok {
			return x == (y != 0)
		}
	case int64:
		switch y := nb.(type) {
		case bool:
			return (x != 0) == y
		case float64:
			return float64(x) == y
		}
	case float64:
		if y, ok := nb.(int64); ok {
			return x == float64(y)
		}
	case string:
		if y, ok := nb.(time.Time); ok {
			return timesEqual(y, x)
		}
	}
	return reflect.DeepEqual(na, nb)
}

func timesEqual(t time.Time, other any) bool {
	switch y := other.(type) {
	case time.Time:
		return t.Equal(y)
	case string:
		parsed, err := metadata.ParseTime(y)
		if err != nil {
			if parsed, err = time.Parse("2006-01-02 15:04:05.999999999-07:00", y); err != nil {
				return false
			}
		}
		return t.Equal(normalizeTime(parsed))
	}
	return false
}

func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func normalize(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	v = rv.Interface()

	switch x := v.(type) {
	case time.Time:
		return normalizeTime(x)
	case metadata.Time:
		if x.IsZero() {
			return nil
		}
		return normalizeTime(x.Time)
	case []byte:
		return string(x)
	case string:
		return x
	case bool:
		return x
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case reflect.String:
		return rv.String()
	}
	return v
}
