package value

import "strings"

// Object is a struct instance: the name of its declaring structure and
// an ordered field→value mapping. Flat parallel-array record; twig
// structs have no parent/prototype chain.
type Object struct {
	Class  string
	Fields []string
	Values []Value
}

// NewObject builds an Object with fields bound positionally from vals,
// stopping at min(len(fields), len(vals)) per spec.md §4.5 rule 3.
func NewObject(class string, fields []string, vals []Value) *Object {
	n := len(fields)
	if len(vals) < n {
		n = len(vals)
	}
	o := &Object{Class: class, Fields: make([]string, n), Values: make([]Value, n)}
	copy(o.Fields, fields[:n])
	copy(o.Values, vals[:n])
	return o
}

// Get returns the value bound to a field name, or (Nil, false) if the
// field is not declared on this instance.
func (o *Object) Get(field string) (Value, bool) {
	for i, f := range o.Fields {
		if f == field {
			return o.Values[i], true
		}
	}
	return Nil, false
}

// WithField returns a new Object equal to o except field is replaced by
// v. If field is not declared, o is returned unchanged (spec.md §4.5
// `set` rule: silently ignored when the field is undeclared).
func (o *Object) WithField(field string, v Value) *Object {
	for i, f := range o.Fields {
		if f == field {
			next := &Object{
				Class:  o.Class,
				Fields: append([]string(nil), o.Fields...),
				Values: append([]Value(nil), o.Values...),
			}
			next.Values[i] = v
			return next
		}
	}
	return o
}

// String renders "Class -> field=value | field=value | " (spec.md §4.3).
func (o *Object) String() string {
	var sb strings.Builder
	sb.WriteString(o.Class)
	sb.WriteString(" -> ")
	for i, f := range o.Fields {
		sb.WriteString(f)
		sb.WriteString("=")
		sb.WriteString(o.Values[i].String())
		sb.WriteString(" | ")
	}
	return sb.String()
}
