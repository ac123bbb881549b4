/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package recfactory

// # Implements:
//   - IFactory
type factory struct {
	reg IRegistry
}

func newFactory(reg IRegistry) *factory {
	return &factory{reg: reg}
}

func (f *factory) Declare(src string, ext ...Methods) ([]IRecordType, error) {
	return declare(f, src, ext...)
}

func (f *factory) New(fields []FieldName, ext ...Methods) (IRecordType, error) {
	return newRecordType("", fields, ext...)
}

func (f *factory) NewNamed(name string, fields []FieldName, ext ...Methods) (IRecordType, error) {
	if ok, err := ValidTypeName(name); !ok {
		return nil, err
	}
	t, err := newRecordType(name, fields, ext...)
	if err != nil {
		return nil, EnrichError(err, "record type «%s»", name)
	}
	if err := f.reg.Add(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (f *factory) Registry() IRegistry { return f.reg }

func (f *factory) Type(name string) IRecordType { return f.reg.Type(name) }
