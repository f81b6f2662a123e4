// Package linear provides declarative, schema-driven parsing of flat token
// streams into structured records.
//
// A Schema describes the target structure explicitly — field names, scalar
// kinds, nested records, and list fields with a length policy — so parsing is
// a recursive-descent walk over the token stream with no reflection involved.
//
// List lengths come from one of three mutually exclusive policies:
//
//   - Fixed: the list always has n elements
//   - Parameter: a previously parsed sibling field holds the length
//   - Func: a callable produces the length per list
//
// # Usage
//
//	line := &linear.Schema{Name: "line", Fields: []linear.Field{
//	    linear.Int("length"),
//	    linear.ParamList("items", linear.String("item"), "length"),
//	}}
//	doc := &linear.Schema{Name: "doc", Fields: []linear.Field{
//	    linear.Int("num_lines"),
//	    linear.ParamList("lines", linear.RecordField("line", line), "num_lines"),
//	}}
//	rec, err := linear.Parse(linear.FromString(text, " "), doc)
package linear
