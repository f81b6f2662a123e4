package linear

import (
	"github.com/kbukum/treekit/errors"
)

// Record is a parsed record: named field values in schema order.
type Record struct {
	order  []string
	values map[string]any
}

func newRecord(fieldCount int) *Record {
	return &Record{
		order:  make([]string, 0, fieldCount),
		values: make(map[string]any, fieldCount),
	}
}

func (r *Record) set(name string, value any) {
	if _, ok := r.values[name]; !ok {
		r.order = append(r.order, name)
	}
	r.values[name] = value
}

// Fields returns the field names in schema order.
func (r *Record) Fields() []string { return r.order }

// Get returns the raw value of a field.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Int returns an integer field value.
func (r *Record) Int(name string) (int64, error) {
	v, ok := r.values[name]
	if !ok {
		return 0, errors.MissingField(name)
	}
	n, ok := v.(int64)
	if !ok {
		return 0, errors.InvalidFormat(name, KindInt.String())
	}
	return n, nil
}

// String returns a string field value.
func (r *Record) String(name string) (string, error) {
	v, ok := r.values[name]
	if !ok {
		return "", errors.MissingField(name)
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.InvalidFormat(name, KindString.String())
	}
	return s, nil
}

// Float returns a float field value.
func (r *Record) Float(name string) (float64, error) {
	v, ok := r.values[name]
	if !ok {
		return 0, errors.MissingField(name)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, errors.InvalidFormat(name, KindFloat.String())
	}
	return f, nil
}

// Bool returns a boolean field value.
func (r *Record) Bool(name string) (bool, error) {
	v, ok := r.values[name]
	if !ok {
		return false, errors.MissingField(name)
	}
	b, ok := v.(bool)
	if !ok {
		return false, errors.InvalidFormat(name, KindBool.String())
	}
	return b, nil
}

// List returns a list field's raw elements.
func (r *Record) List(name string) ([]any, error) {
	v, ok := r.values[name]
	if !ok {
		return nil, errors.MissingField(name)
	}
	list, ok := v.([]any)
	if !ok {
		return nil, errors.InvalidFormat(name, "list")
	}
	return list, nil
}

// Strings returns a list field's elements as strings.
func (r *Record) Strings(name string) ([]string, error) {
	list, err := r.List(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(list))
	for i, v := range list {
		s, ok := v.(string)
		if !ok {
			return nil, errors.InvalidFormat(name, KindString.String())
		}
		out[i] = s
	}
	return out, nil
}

// Records returns a list field's elements as nested records.
func (r *Record) Records(name string) ([]*Record, error) {
	list, err := r.List(name)
	if err != nil {
		return nil, err
	}
	out := make([]*Record, len(list))
	for i, v := range list {
		rec, ok := v.(*Record)
		if !ok {
			return nil, errors.InvalidFormat(name, "record")
		}
		out[i] = rec
	}
	return out, nil
}
