/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package recfactory

import (
	"sync"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// # Implements:
//   - IRegistry
type registry struct {
	mu    sync.RWMutex
	types map[string]IRecordType
}

func newRegistry() *registry {
	return &registry{types: make(map[string]IRecordType)}
}

func (r *registry) Add(t IRecordType) error {
	name := t.Name()
	if name == "" {
		return ErrInvalid("anonymous type %v can not be registered", t)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[name]; exists {
		return ErrAlreadyExists("record type «%s»", name)
	}
	r.types[name] = t

	if logger.IsVerbose() {
		logger.Verbose("record type", name, "registered")
	}
	return nil
}

func (r *registry) Type(name string) IRecordType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.types[name]
}

func (r *registry) TypeCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

func (r *registry) Types(cb func(IRecordType)) {
	r.mu.RLock()
	names := maps.Keys(r.types)
	tt := make([]IRecordType, 0, len(names))
	slices.Sort(names)
	for _, n := range names {
		tt = append(tt, r.types[n])
	}
	r.mu.RUnlock()

	for _, t := range tt {
		cb(t)
	}
}
