/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package recfactory

import (
	"fmt"
	"strconv"

	"github.com/valyala/bytebufferpool"
	"golang.org/x/exp/slices"
)

// # Implements:
//   - IRecord
//   - IGetter
type record struct {
	typ    *recordType
	values []any
}

func newRecord(t *recordType, values []any) *record {
	return &record{
		typ:    t,
		values: slices.Clone(values),
	}
}

func (r *record) Call(method string, args ...any) (any, error) {
	m, ok := r.typ.methods[method]
	if !ok {
		return nil, ErrMethodNotFound(r.typ, method)
	}
	return m(r, args...)
}

func (r *record) Dig(keys ...any) (any, error) {
	return dig(r, keys...)
}

func (r *record) Each(visit func(any)) {
	for _, v := range r.values {
		visit(v)
	}
}

func (r *record) EachPair(visit func(FieldName, any)) {
	for i, v := range r.values {
		visit(r.typ.fields[i], v)
	}
}

func (r *record) Eql(other any) bool { return r.Equal(other) }

func (r *record) Equal(other any) bool {
	o, ok := other.(*record)
	if !ok || (o == nil) || (o.typ != r.typ) {
		return false
	}
	if o == r {
		return true
	}
	for i, v := range r.values {
		if !valuesEqual(v, o.values[i]) {
			return false
		}
	}
	return true
}

func (r *record) Get(key any) any {
	if i, ok := r.typ.keyIndex(key); ok {
		return r.values[i]
	}
	return nil
}

func (r *record) Length() int { return len(r.values) }

func (r *record) Members() []FieldName { return r.typ.Fields() }

func (r *record) RespondTo(method string) bool { return r.typ.RespondTo(method) }

func (r *record) Select(pred func(any) bool) []any {
	res := make([]any, 0, len(r.values))
	for _, v := range r.values {
		if pred(v) {
			res = append(res, v)
		}
	}
	return res
}

func (r *record) Set(key, value any) (any, error) {
	i, ok := r.typ.keyIndex(key)
	if !ok {
		return nil, fmt.Errorf("%v: %w", r.typ, ErrFieldNotFound(key))
	}
	r.values[i] = value
	return value, nil
}

func (r *record) Size() int { return r.Length() }

// Returns string like `#<record Customer name="Dave", zip=12345>`.
//
// Name is omitted for anonymous types.
func (r *record) String() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(recordStringPrefix) // error impossible
	if r.typ.name != "" {
		_, _ = buf.WriteString(" " + r.typ.name) // error impossible
	}
	for i, v := range r.values {
		if i > 0 {
			_ = buf.WriteByte(',') // error impossible
		}
		_, _ = buf.WriteString(" " + r.typ.fields[i] + "=") // error impossible
		if s, ok := v.(string); ok {
			_, _ = buf.WriteString(strconv.Quote(s)) // error impossible
		} else {
			_, _ = fmt.Fprint(buf, v) // error impossible
		}
	}
	_, _ = buf.WriteString(recordStringSuffix) // error impossible

	return buf.String()
}

func (r *record) Type() IRecordType { return r.typ }

func (r *record) Values() []any { return slices.Clone(r.values) }

func (r *record) ValuesAt(indexes ...int) []any {
	res := make([]any, len(indexes))
	for i, idx := range indexes {
		if j, ok := absIndex(idx, len(r.values)); ok {
			res[i] = r.values[j]
		}
	}
	return res
}
