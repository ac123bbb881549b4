/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package recfactory

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrMissedError = errors.New("missed")

func ErrMissed(msg string, args ...any) error {
	return EnrichError(ErrMissedError, msg, args...)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

var ErrAlreadyExistsError = errors.New("already exists")

func ErrAlreadyExists(msg string, args ...any) error {
	return EnrichError(ErrAlreadyExistsError, msg, args...)
}

var ErrNotFoundError = errors.New("not found")

func ErrNotFound(msg string, args ...any) error {
	return EnrichError(ErrNotFoundError, msg, args...)
}

func ErrFieldNotFound(key any) error {
	return ErrNotFound("field «%v»", key)
}

func ErrMethodNotFound(t IRecordType, m string) error {
	return ErrNotFound("method «%s» of %v", m, t)
}

var ErrArityError = errors.New("wrong number of arguments")

func ErrArity(given, expected int) error {
	return EnrichError(ErrArityError, "given %d, expected %d", given, expected)
}

var ErrTypeMismatchError = errors.New("type mismatch")

func ErrTypeMismatch(msg string, args ...any) error {
	return EnrichError(ErrTypeMismatchError, msg, args...)
}
