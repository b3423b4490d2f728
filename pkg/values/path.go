package values

import (
	"strconv"
	"strings"
)

// Extract traverses a dot-separated path through v. Map segments look
// up keys; list segments accept numeric indices. A missing intermediate
// segment or out-of-range index returns (null, false) rather than an
// error: a table must never fail to render because one field of one row
// is absent.
func Extract(v Value, path string) (Value, bool) {
	if path == "" {
		return v, true
	}
	cur := v
	for _, seg := range strings.Split(path, ".") {
		switch cur.Kind() {
		case Map:
			next, ok := cur.Field(seg)
			if !ok {
				return NewNull(), false
			}
			cur = next
		case List:
			idx, err := strconv.Atoi(seg)
			if err != nil {
				return NewNull(), false
			}
			next, ok := cur.Index(idx)
			if !ok {
				return NewNull(), false
			}
			cur = next
		default:
			return NewNull(), false
		}
	}
	return cur, true
}
