package optional

import "encoding/json"

// Optional is a three-state field value for partial update requests:
// unset (field absent from the payload), null (field present as JSON null),
// or set with a value. json.Unmarshal only invokes UnmarshalJSON for keys
// that appear in the payload, which is what tracks the unset state.
type Optional[T any] struct {
	value T
	set   bool
	null  bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// Null returns an Optional that was explicitly set to null.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// IsSet reports whether the field appeared in the payload at all,
// including as an explicit null.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// IsNull reports whether the field was an explicit null.
func (o Optional[T]) IsNull() bool {
	return o.set && o.null
}

// Value returns the held value and whether one is present
// (set and not null).
func (o Optional[T]) Value() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	if string(data) == "null" {
		o.null = true
		return nil
	}
	return json.Unmarshal(data, &o.value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
