// Package values defines the closed value representation the engine
// renders from: string, number, bool, null, ordered list and ordered
// map. Records decoded from YAML, JSON or XML all normalize to this one
// type, so extraction and width measurement never touch reflection.
package values

import (
	"math"
	"strconv"
)

// Kind discriminates the variants of Value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	List
	Map
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case List:
		return "list"
	case Map:
		return "map"
	}
	return "unknown"
}

// Entry is one key/value pair of an ordered map.
type Entry struct {
	Key   string
	Value Value
}

// Value is a single datum in a record tree.
type Value struct {
	kind    Kind
	boolVal bool
	numVal  float64
	strVal  string
	list    []Value
	entries []Entry
}

// NewNull returns the null value.
func NewNull() Value { return Value{kind: Null} }

// NewBool builds a bool value.
func NewBool(b bool) Value { return Value{kind: Bool, boolVal: b} }

// NewNumber builds a number value.
func NewNumber(f float64) Value { return Value{kind: Number, numVal: f} }

// NewString builds a string value.
func NewString(s string) Value { return Value{kind: String, strVal: s} }

// NewList builds a list value.
func NewList(items ...Value) Value { return Value{kind: List, list: items} }

// NewMap builds an ordered map value from entries in the given order.
func NewMap(entries ...Entry) Value { return Value{kind: Map, entries: entries} }

// Kind returns the variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == Null }

// BoolVal returns the bool payload (false for other kinds).
func (v Value) BoolVal() bool { return v.boolVal }

// NumberVal returns the number payload (0 for other kinds).
func (v Value) NumberVal() float64 { return v.numVal }

// StringVal returns the string payload ("" for other kinds).
func (v Value) StringVal() string { return v.strVal }

// Items returns the list payload.
func (v Value) Items() []Value { return v.list }

// Entries returns the ordered map payload.
func (v Value) Entries() []Entry { return v.entries }

// Field looks up a map key. The second return is false when v is not a
// map or the key is absent.
func (v Value) Field(key string) (Value, bool) {
	if v.kind != Map {
		return NewNull(), false
	}
	for _, e := range v.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return NewNull(), false
}

// Index looks up a list position. The second return is false when v is
// not a list or the index is out of range.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != List || i < 0 || i >= len(v.list) {
		return NewNull(), false
	}
	return v.list[i], true
}

// Render returns the display text for v. Whole numbers render without a
// decimal point; null renders as empty text.
func (v Value) Render() string {
	switch v.kind {
	case Null:
		return ""
	case Bool:
		return strconv.FormatBool(v.boolVal)
	case Number:
		if v.numVal == math.Trunc(v.numVal) && !math.IsInf(v.numVal, 0) {
			return strconv.FormatInt(int64(v.numVal), 10)
		}
		return strconv.FormatFloat(v.numVal, 'g', -1, 64)
	case String:
		return v.strVal
	case List:
		out := ""
		for i, item := range v.list {
			if i > 0 {
				out += ", "
			}
			out += item.Render()
		}
		return out
	case Map:
		out := ""
		for i, e := range v.entries {
			if i > 0 {
				out += ", "
			}
			out += e.Key + "=" + e.Value.Render()
		}
		return out
	}
	return ""
}
