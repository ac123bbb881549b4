/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package recfactory

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// # Implements:
//   - IRecordType
type recordType struct {
	id      uuid.UUID
	name    string
	fields  []FieldName
	indexes map[FieldName]int
	methods map[string]Method
}

// Makes new record type with specified name and fields.
//
// Method table is filled in order: built-in protocol, field accessors, extensions.
// Each next stage overrides methods with the same names.
func newRecordType(name string, fields []FieldName, ext ...Methods) (*recordType, error) {
	if ok, err := ValidFieldNames(fields); !ok {
		return nil, err
	}

	t := &recordType{
		id:      uuid.New(),
		name:    name,
		fields:  slices.Clone(fields),
		indexes: make(map[FieldName]int, len(fields)),
		methods: make(map[string]Method),
	}
	for i, f := range t.fields {
		t.indexes[f] = i
	}

	t.installProtocol()
	t.installAccessors()

	for _, m := range ext {
		if err := t.mergeMethods(m); err != nil {
			return nil, err
		}
	}

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("record type %v created, fields: %v, methods: %d", t, t.fields, len(t.methods)))
	}

	return t, nil
}

func (t *recordType) Field(idx int) FieldName {
	if (idx < 0) || (idx >= len(t.fields)) {
		return ""
	}
	return t.fields[idx]
}

func (t *recordType) FieldCount() int { return len(t.fields) }

func (t *recordType) FieldIndex(name FieldName) (int, bool) {
	i, ok := t.indexes[name]
	return i, ok
}

func (t *recordType) Fields() []FieldName { return slices.Clone(t.fields) }

func (t *recordType) ID() uuid.UUID { return t.id }

func (t *recordType) Methods() []string {
	mm := maps.Keys(t.methods)
	slices.Sort(mm)
	return mm
}

func (t *recordType) MustNew(values ...any) IRecord {
	r, err := t.New(values...)
	if err != nil {
		panic(err)
	}
	return r
}

func (t *recordType) Name() string { return t.name }

func (t *recordType) New(values ...any) (IRecord, error) {
	if len(values) != len(t.fields) {
		return nil, fmt.Errorf("%v: %w", t, ErrArity(len(values), len(t.fields)))
	}
	return newRecord(t, values), nil
}

func (t *recordType) RespondTo(method string) bool {
	_, ok := t.methods[method]
	return ok
}

func (t *recordType) String() string {
	if t.name != "" {
		return t.name
	}
	return fmt.Sprintf("%s type %v%s", recordStringPrefix, t.id, recordStringSuffix)
}

// Returns field index for key, negative indexes are counted from the end.
//
// Returns false if key is not field name or index or if there is no such field.
func (t *recordType) keyIndex(key any) (int, bool) {
	if n, ok := key.(string); ok {
		i, ok := t.indexes[n]
		return i, ok
	}
	if i, ok := intKey(key); ok {
		return absIndex(i, len(t.fields))
	}
	return 0, false
}

// Installs field accessors. Accessor has the same name as field, reads field
// value if called without arguments and writes if called with one argument.
func (t *recordType) installAccessors() {
	for i, f := range t.fields {
		idx, name := i, f
		t.methods[name] = func(self IRecord, args ...any) (any, error) {
			switch len(args) {
			case 0:
				return self.Get(idx), nil
			case 1:
				return self.Set(idx, args[0])
			}
			return nil, fmt.Errorf("accessor «%s»: %w", name, ErrArity(len(args), 1))
		}
	}
}

// Merges extension methods into method table.
func (t *recordType) mergeMethods(ext Methods) error {
	for n, m := range ext {
		if ok, err := ValidIdent(n); !ok {
			return fmt.Errorf("%v method: %w", t, err)
		}
		if m == nil {
			return ErrInvalid("%v method «%s» is nil", t, n)
		}
		t.methods[n] = m
	}
	return nil
}
