/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package recfactory

import "fmt"

// Installs built-in protocol methods, so they can be called by name.
func (t *recordType) installProtocol() {
	t.methods[Method_Get] = func(self IRecord, args ...any) (any, error) {
		if err := checkArgs(Method_Get, args, 1); err != nil {
			return nil, err
		}
		return self.Get(args[0]), nil
	}

	t.methods[Method_Set] = func(self IRecord, args ...any) (any, error) {
		if err := checkArgs(Method_Set, args, 2); err != nil {
			return nil, err
		}
		return self.Set(args[0], args[1])
	}

	t.methods[Method_Dig] = func(self IRecord, args ...any) (any, error) {
		return self.Dig(args...)
	}

	t.methods[Method_Each] = func(self IRecord, args ...any) (any, error) {
		if err := checkArgs(Method_Each, args, 1); err != nil {
			return nil, err
		}
		visit, ok := args[0].(func(any))
		if !ok {
			return nil, argMismatch(Method_Each, args[0])
		}
		self.Each(visit)
		return nil, nil
	}

	t.methods[Method_EachPair] = func(self IRecord, args ...any) (any, error) {
		if err := checkArgs(Method_EachPair, args, 1); err != nil {
			return nil, err
		}
		visit, ok := args[0].(func(FieldName, any))
		if !ok {
			return nil, argMismatch(Method_EachPair, args[0])
		}
		self.EachPair(visit)
		return nil, nil
	}

	t.methods[Method_Select] = func(self IRecord, args ...any) (any, error) {
		if err := checkArgs(Method_Select, args, 1); err != nil {
			return nil, err
		}
		pred, ok := args[0].(func(any) bool)
		if !ok {
			return nil, argMismatch(Method_Select, args[0])
		}
		return self.Select(pred), nil
	}

	t.methods[Method_Length] = noArgs(Method_Length, func(self IRecord) any { return self.Length() })
	t.methods[Method_Size] = noArgs(Method_Size, func(self IRecord) any { return self.Size() })
	t.methods[Method_Members] = noArgs(Method_Members, func(self IRecord) any { return self.Members() })
	t.methods[Method_Values] = noArgs(Method_Values, func(self IRecord) any { return self.Values() })
	t.methods[Method_String] = noArgs(Method_String, func(self IRecord) any { return self.String() })

	t.methods[Method_ValuesAt] = func(self IRecord, args ...any) (any, error) {
		idx := make([]int, len(args))
		for i, a := range args {
			n, ok := intKey(a)
			if !ok {
				return nil, argMismatch(Method_ValuesAt, a)
			}
			idx[i] = n
		}
		return self.ValuesAt(idx...), nil
	}

	t.methods[Method_Equal] = func(self IRecord, args ...any) (any, error) {
		if err := checkArgs(Method_Equal, args, 1); err != nil {
			return nil, err
		}
		return self.Equal(args[0]), nil
	}

	t.methods[Method_Eql] = func(self IRecord, args ...any) (any, error) {
		if err := checkArgs(Method_Eql, args, 1); err != nil {
			return nil, err
		}
		return self.Eql(args[0]), nil
	}
}

func noArgs(name string, f func(IRecord) any) Method {
	return func(self IRecord, args ...any) (any, error) {
		if err := checkArgs(name, args, 0); err != nil {
			return nil, err
		}
		return f(self), nil
	}
}

func checkArgs(method string, args []any, expected int) error {
	if len(args) != expected {
		return fmt.Errorf("method «%s»: %w", method, ErrArity(len(args), expected))
	}
	return nil
}

func argMismatch(method string, arg any) error {
	return ErrTypeMismatch("method «%s» argument has unexpected type %T", method, arg)
}
