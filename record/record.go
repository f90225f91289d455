package record

import (
	"errors"
	"fmt"
	"github.com/go-gl/mathgl/mgl64"
	"math"
	"reflect"
)

// Record is a loosely typed structure record, such as a compound tag decoded from NBT. Field
// reports whether a field is present and never fails on a missing one.
type Record interface {
	Field(name string) (any, bool)
}

// Map is a Record backed by a decoded NBT compound.
type Map map[string]any

// Field ...
func (m Map) Field(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// ErrType is wrapped by every FieldError.
var ErrType = errors.New("unexpected field type")

// FieldError is returned when a field is present but does not hold the requested kind of
// value.
type FieldError struct {
	Field string
	Want  string
	Got   any
}

// Error ...
func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: want %s, got %T", e.Field, e.Want, e.Got)
}

// Unwrap ...
func (e *FieldError) Unwrap() error {
	return ErrType
}

// Of wraps a decoded value as a Record, if it is one.
func Of(v any) (Record, bool) {
	switch v := v.(type) {
	case Record:
		return v, true
	case map[string]any:
		return Map(v), true
	}
	return nil, false
}

// Int reads an integer field of any width.
func Int(r Record, name string) (int, bool, error) {
	v, ok := r.Field(name)
	if !ok {
		return 0, false, nil
	}
	switch v := v.(type) {
	case uint8:
		return int(v), true, nil
	case int8:
		return int(v), true, nil
	case int16:
		return int(v), true, nil
	case int32:
		return int(v), true, nil
	case int64:
		return int(v), true, nil
	case int:
		return v, true, nil
	}
	return 0, true, &FieldError{Field: name, Want: "integer", Got: v}
}

// Byte reads a byte field. Signed bytes keep their bit pattern.
func Byte(r Record, name string) (uint8, bool, error) {
	v, ok := r.Field(name)
	if !ok {
		return 0, false, nil
	}
	switch v := v.(type) {
	case uint8:
		return v, true, nil
	case int8:
		return uint8(v), true, nil
	}
	return 0, true, &FieldError{Field: name, Want: "byte", Got: v}
}

// String ...
func String(r Record, name string) (string, bool, error) {
	v, ok := r.Field(name)
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", true, &FieldError{Field: name, Want: "string", Got: v}
	}
	return s, true, nil
}

// Compound reads a nested record.
func Compound(r Record, name string) (Record, bool, error) {
	v, ok := r.Field(name)
	if !ok {
		return nil, false, nil
	}
	c, ok := Of(v)
	if !ok {
		return nil, true, &FieldError{Field: name, Want: "compound", Got: v}
	}
	return c, true, nil
}

// List reads a list of nested records. Decoders produce lists either as []any or as typed
// slices, so both are accepted.
func List(r Record, name string) ([]Record, bool, error) {
	v, ok := r.Field(name)
	if !ok {
		return nil, false, nil
	}
	switch l := v.(type) {
	case []Record:
		return l, true, nil
	case []map[string]any:
		records := make([]Record, len(l))
		for i, m := range l {
			records[i] = Map(m)
		}
		return records, true, nil
	case []any:
		records := make([]Record, 0, len(l))
		for i, e := range l {
			c, ok := Of(e)
			if !ok {
				return nil, true, &FieldError{Field: fmt.Sprintf("%s[%d]", name, i), Want: "compound", Got: e}
			}
			records = append(records, c)
		}
		return records, true, nil
	}
	return nil, true, &FieldError{Field: name, Want: "list of compounds", Got: v}
}

// Bytes reads a byte array. The NBT decoder produces fixed size arrays for TAG_Byte_Array,
// so any array or slice of bytes is accepted.
func Bytes(r Record, name string) ([]byte, bool, error) {
	v, ok := r.Field(name)
	if !ok {
		return nil, false, nil
	}
	switch b := v.(type) {
	case []byte:
		return b, true, nil
	case []any:
		out := make([]byte, len(b))
		for i, e := range b {
			switch e := e.(type) {
			case uint8:
				out[i] = e
			case int8:
				out[i] = uint8(e)
			default:
				return nil, true, &FieldError{Field: name, Want: "byte array", Got: v}
			}
		}
		return out, true, nil
	}
	rv := reflect.ValueOf(v)
	if (rv.Kind() == reflect.Array || rv.Kind() == reflect.Slice) && rv.Type().Elem().Kind() == reflect.Uint8 {
		out := make([]byte, rv.Len())
		reflect.Copy(reflect.ValueOf(out), rv)
		return out, true, nil
	}
	return nil, true, &FieldError{Field: name, Want: "byte array", Got: v}
}

// Vec3 reads a list of three floating point numbers, the layout of entity positions.
func Vec3(r Record, name string) (mgl64.Vec3, bool, error) {
	v, ok := r.Field(name)
	if !ok {
		return mgl64.Vec3{}, false, nil
	}
	var vals []float64
	switch l := v.(type) {
	case []float64:
		vals = l
	case []float32:
		vals = make([]float64, len(l))
		for i, f := range l {
			vals[i] = float64(f)
		}
	case []any:
		vals = make([]float64, len(l))
		for i, e := range l {
			switch f := e.(type) {
			case float64:
				vals[i] = f
			case float32:
				vals[i] = float64(f)
			default:
				return mgl64.Vec3{}, true, &FieldError{Field: name, Want: "list of 3 floats", Got: v}
			}
		}
	default:
		return mgl64.Vec3{}, true, &FieldError{Field: name, Want: "list of 3 floats", Got: v}
	}
	if len(vals) != 3 {
		return mgl64.Vec3{}, true, &FieldError{Field: name, Want: "list of 3 floats", Got: v}
	}
	vec := mgl64.Vec3{vals[0], vals[1], vals[2]}
	for _, f := range vec {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return mgl64.Vec3{}, true, &FieldError{Field: name, Want: "finite coordinates", Got: v}
		}
	}
	return vec, true, nil
}
