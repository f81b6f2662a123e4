package linear

import (
	"strconv"

	"github.com/kbukum/treekit/errors"
)

// Parse consumes tokens from tz and populates a record described by schema.
// Fields parse in declaration order; list lengths referencing a Parameter
// must name a field declared (and therefore parsed) earlier.
func Parse(tz *Tokenizer, schema *Schema) (*Record, error) {
	return parseRecord(tz, schema)
}

func parseRecord(tz *Tokenizer, schema *Schema) (*Record, error) {
	rec := newRecord(len(schema.Fields))
	for _, field := range schema.Fields {
		value, err := parseField(tz, field, rec)
		if err != nil {
			return nil, err
		}
		rec.set(field.Name, value)
	}
	return rec, nil
}

func parseField(tz *Tokenizer, field Field, rec *Record) (any, error) {
	switch {
	case field.List != nil:
		length, err := resolveLength(field, rec)
		if err != nil {
			return nil, err
		}
		elems := make([]any, 0, length)
		for i := 0; i < length; i++ {
			v, err := parseField(tz, field.List.Elem, rec)
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
		}
		return elems, nil
	case field.Record != nil:
		return parseRecord(tz, field.Record)
	default:
		return parseScalar(tz, field)
	}
}

func parseScalar(tz *Tokenizer, field Field) (any, error) {
	token, ok, err := tz.Next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.EmptySequence("parse").WithDetail("field", field.Name)
	}
	switch field.Kind {
	case KindInt:
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, errors.InvalidFormat(field.Name, KindInt.String()).WithCause(err)
		}
		return n, nil
	case KindFloat:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, errors.InvalidFormat(field.Name, KindFloat.String()).WithCause(err)
		}
		return f, nil
	case KindBool:
		b, err := strconv.ParseBool(token)
		if err != nil {
			return nil, errors.InvalidFormat(field.Name, KindBool.String()).WithCause(err)
		}
		return b, nil
	default:
		return token, nil
	}
}

// resolveLength applies the length policies in priority order: Fixed, then
// Parameter, then Func.
func resolveLength(field Field, rec *Record) (int, error) {
	list := field.List
	switch {
	case list.Fixed > 0:
		return list.Fixed, nil
	case list.Parameter != "":
		n, err := rec.Int(list.Parameter)
		if err != nil {
			return 0, err
		}
		return int(n), nil
	case list.Func != nil:
		return list.Func()
	default:
		return 0, errors.MissingLength(field.Name)
	}
}
