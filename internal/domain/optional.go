package domain

import "encoding/json"

// Optional is a tri-state field for partial updates: absent, explicit null,
// or a value. The zero value is absent. Invalid marks a present key whose
// JSON value did not decode into T; Value is then the zero value.
type Optional[T any] struct {
	Set     bool
	Null    bool
	Invalid bool
	Value   T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// Null returns an Optional that clears the field.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// FromPtr maps nil to an explicit null and anything else to a value.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Null[T]()
	}
	return Some(*p)
}

// Ptr returns nil for an absent, null or invalid field.
func (o Optional[T]) Ptr() *T {
	if !o.Set || o.Null || o.Invalid {
		return nil
	}
	v := o.Value
	return &v
}

// UnmarshalJSON is only invoked by encoding/json when the key is present,
// so reaching it always marks the field as set. A value of the wrong type
// sets Invalid instead of failing the whole document, so callers can report
// it per field or drop it.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	var zero T
	o.Set = true
	o.Value = zero
	o.Null = string(data) == "null"
	o.Invalid = false
	if o.Null {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		o.Value = zero
		o.Invalid = true
	}
	return nil
}

// MarshalJSON writes null for absent and null fields.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set || o.Null {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
