/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package recfactory

import "github.com/google/uuid"

// Field name.
//
// Field names are identifiers, see ValidIdent.
type FieldName = string

// Extension method.
//
// Called with the record it is invoked on and the call arguments.
type Method func(self IRecord, args ...any) (any, error)

// Methods table, method name → method.
//
// Used to inject extension methods into record types at creation time.
type Methods map[string]Method

// Record types factory.
//
// Ref. to impl_factory.go for implementation
type IFactory interface {
	// Creates new anonymous record type with specified fields.
	//
	// Extension methods, if any, are merged into type methods after built-in protocol
	// and field accessors are installed.
	//
	// # Errors:
	//   - ErrMissedError if fields list is empty,
	//   - ErrInvalidError if some field name is not valid identifier,
	//   - ErrAlreadyExistsError if field names are not unique,
	//   - ErrInvalidError if some extension method name is invalid or method is nil.
	New(fields []FieldName, ext ...Methods) (IRecordType, error)

	// Creates new record type with specified fields and registers it in factory registry with
	// specified name.
	//
	// # Errors:
	//   - all errors returned by New,
	//   - ErrInvalidError if name is not a valid type name, see ValidTypeName,
	//   - ErrAlreadyExistsError if type with specified name is already registered.
	NewNamed(name string, fields []FieldName, ext ...Methods) (IRecordType, error)

	// Creates record types from declarations source.
	//
	//	RECORD Customer (name, address, zip);
	//	(a, b, c)
	//
	// Named declarations are registered. Extensions are applied to every declared type.
	Declare(src string, ext ...Methods) ([]IRecordType, error)

	// Returns registered type by name. Returns nil if not found.
	Type(name string) IRecordType

	// Returns factory registry
	Registry() IRegistry
}

// Registry of named record types.
//
// Ref. to impl_registry.go for implementation
type IRegistry interface {
	// Registers type with its name.
	//
	// # Errors:
	//   - ErrInvalidError if type is anonymous,
	//   - ErrAlreadyExistsError if type with same name is already registered.
	Add(IRecordType) error

	// Returns type by name. Returns nil if not found.
	Type(name string) IRecordType

	// Enumerates registered types in name order
	Types(func(IRecordType))

	// Returns registered types count
	TypeCount() int
}

// Record type, produced by factory.
//
// Ref. to impl_type.go for implementation
type IRecordType interface {
	// Returns unique type ID
	ID() uuid.UUID

	// Returns type name. Returns empty string for anonymous types.
	Name() string

	// Returns fields count. This is also constructor arity.
	FieldCount() int

	// Returns field names in declaration order.
	Fields() []FieldName

	// Returns field name by index. Returns empty string if index is out of bounds.
	Field(idx int) FieldName

	// Returns field index by name. Returns false if field not found.
	FieldIndex(name FieldName) (int, bool)

	// Returns method names, sorted. Includes built-in protocol, field accessors and extensions.
	Methods() []string

	// Returns is type has method with specified name
	RespondTo(method string) bool

	// Creates new record. Values are assigned to fields positionally.
	//
	// # Errors:
	//   - ErrArityError if values count is not equal to fields count.
	New(values ...any) (IRecord, error)

	// Same as New, but panics on error
	MustNew(values ...any) IRecord

	String() string
}

// Value with indexed or keyed access.
//
// Records implement this interface. Dig descends into any IGetter.
type IGetter interface {
	// Returns value by key, or nil if there is no value for key.
	Get(key any) any
}

// Record, instance of record type.
//
// Ref. to impl_record.go for implementation
type IRecord interface {
	IGetter

	// Returns record type
	Type() IRecordType

	// Sets field value by key and returns value.
	//
	// Key is field index (int) or field name (string).
	// Negative index counts from the last field.
	//
	// # Errors:
	//   - ErrNotFoundError if there is no field for key.
	Set(key, value any) (any, error)

	// Applies Get with each key sequentially.
	//
	// Returns nil if some intermediate value is nil.
	//
	// # Errors:
	//   - ErrTypeMismatchError if intermediate value is not IGetter or Go container
	//     and there are keys left, or if sequence is indexed by not integer key.
	Dig(keys ...any) (any, error)

	// Enumerates field values in declaration order
	Each(func(value any))

	// Enumerates field names and values in declaration order
	EachPair(func(name FieldName, value any))

	// Returns field values for which predicate is true, in declaration order
	Select(func(value any) bool) []any

	// Returns fields count
	Length() int

	// Same as Length
	Size() int

	// Returns field names in declaration order
	Members() []FieldName

	// Returns field values in declaration order
	Values() []any

	// Returns field values at specified indexes.
	//
	// Value for out of bounds index is nil.
	ValuesAt(indexes ...int) []any

	// Returns is other is record of the same type with equal values
	Equal(other any) bool

	// Same as Equal
	Eql(other any) bool

	// Calls method by name. Method may be built-in, field accessor or extension.
	//
	// # Errors:
	//   - ErrNotFoundError if type has no method with specified name,
	//   - errors returned by method.
	Call(method string, args ...any) (any, error)

	// Returns is record has method with specified name
	RespondTo(method string) bool

	String() string
}
