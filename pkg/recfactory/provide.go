/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package recfactory

// Creates and returns new record types factory with its own registry.
func New() IFactory {
	return newFactory(newRegistry())
}

// Creates and returns new record types factory, which registers named types in
// specified registry.
//
// Factories with the same registry share registered names.
func NewWithRegistry(reg IRegistry) IFactory {
	return newFactory(reg)
}

// Creates and returns new empty registry
func NewRegistry() IRegistry {
	return newRegistry()
}
