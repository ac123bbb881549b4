/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package recfactory

import (
	"math"
	"reflect"
)

// Returns is string is valid identifier and error if not.
//
// Identifier starts with ASCII letter, underscore or buck, and continues with
// ASCII letters, digits, underscores or bucks.
func ValidIdent(ident string) (bool, error) {
	if len(ident) < 1 {
		return false, ErrMissed("ident")
	}

	if l := len(ident); l > MaxIdentLen {
		return false, ErrInvalid("ident «%s» too long (%d chars, max is %d)", ident, l, MaxIdentLen)
	}

	digit := func(r rune) bool { return ('0' <= r) && (r <= '9') }

	letter := func(r rune) bool { return (('a' <= r) && (r <= 'z')) || (('A' <= r) && (r <= 'Z')) }

	for p, c := range ident {
		if !letter(c) && (c != '_') && (c != '$') {
			if (p == 0) || !digit(c) {
				return false, ErrInvalid("ident «%s» has invalid char «%c» at pos %d", ident, c, p)
			}
		}
	}

	return true, nil
}

// Returns is string is valid record type name and error if not.
//
// Type name is identifier started with upper case ASCII letter.
func ValidTypeName(name string) (bool, error) {
	if ok, err := ValidIdent(name); !ok {
		return false, err
	}
	if c := name[0]; (c < 'A') || (c > 'Z') {
		return false, ErrInvalid("type name «%s» should start with upper case letter", name)
	}
	return true, nil
}

// Returns is fields list is valid and error if not.
//
// Fields list should be not empty, contains valid identifiers without duplicates.
func ValidFieldNames(fields []FieldName) (bool, error) {
	if len(fields) == 0 {
		return false, ErrMissed("fields")
	}
	exists := make(map[FieldName]int, len(fields))
	for i, f := range fields {
		if ok, err := ValidIdent(f); !ok {
			return false, EnrichError(err, "field %d", i)
		}
		if j, dupe := exists[f]; dupe {
			return false, ErrAlreadyExists("field «%s» at pos %d is already declared at pos %d", f, i, j)
		}
		exists[f] = i
	}
	return true, nil
}

// Converts key to int if key has any integer type.
//
// Integers beyond int range are saturated to math.MaxInt or math.MinInt, so they
// are out of bounds for any sequence.
func intKey(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case int8:
		return int(k), true
	case int16:
		return int(k), true
	case int32:
		return signedKey(int64(k)), true
	case int64:
		return signedKey(k), true
	case uint:
		return unsignedKey(uint64(k)), true
	case uint8:
		return int(k), true
	case uint16:
		return int(k), true
	case uint32:
		return unsignedKey(uint64(k)), true
	case uint64:
		return unsignedKey(k), true
	}
	return 0, false
}

func signedKey(k int64) int {
	switch {
	case k > math.MaxInt:
		return math.MaxInt
	case k < math.MinInt:
		return math.MinInt
	}
	return int(k)
}

func unsignedKey(k uint64) int {
	if k > math.MaxInt {
		return math.MaxInt
	}
	return int(k)
}

// Returns absolute index for sequence with specified length.
//
// Negative index counts from the end. Returns false if index is out of bounds.
func absIndex(idx, length int) (int, bool) {
	if idx < 0 {
		if idx < -length {
			return 0, false
		}
		idx += length
	}
	if (idx < 0) || (idx >= length) {
		return 0, false
	}
	return idx, true
}

// Returns is two field values are equal.
//
// Records are compared with Equal, other values are compared deeply.
func valuesEqual(a, b any) bool {
	if r, ok := a.(*record); ok && (r != nil) {
		return r.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
