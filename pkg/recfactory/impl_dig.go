/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package recfactory

import "reflect"

// Descends from value by keys.
//
// Records and other IGetter are accessed with Get. Go slices and arrays are
// indexed by integer keys, maps are accessed by key.
func dig(value any, keys ...any) (any, error) {
	cur := value
	for i, key := range keys {
		if cur == nil {
			return nil, nil
		}
		next, err := digStep(cur, key)
		if err != nil {
			return nil, EnrichError(err, "dig key #%d «%v»", i, key)
		}
		cur = next
	}
	return cur, nil
}

func digStep(value, key any) (any, error) {
	switch v := value.(type) {
	case IGetter:
		return v.Get(key), nil
	case []any:
		idx, ok := intKey(key)
		if !ok {
			return nil, ErrTypeMismatch("%T can not be indexed by %T", v, key)
		}
		if j, ok := absIndex(idx, len(v)); ok {
			return v[j], nil
		}
		return nil, nil
	case map[string]any:
		if k, ok := key.(string); ok {
			return v[k], nil
		}
		return nil, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		idx, ok := intKey(key)
		if !ok {
			return nil, ErrTypeMismatch("%T can not be indexed by %T", value, key)
		}
		if j, ok := absIndex(idx, rv.Len()); ok {
			return rv.Index(j).Interface(), nil
		}
		return nil, nil
	case reflect.Map:
		return mapIndex(rv, key), nil
	}

	return nil, ErrTypeMismatch("%T does not support keyed access", value)
}

// Returns map value by key.
//
// Returns nil if key is not found, not comparable or can not be a key of map.
func mapIndex(m reflect.Value, key any) any {
	k := reflect.ValueOf(key)
	if !k.IsValid() || !k.Type().Comparable() || !k.Type().AssignableTo(m.Type().Key()) {
		return nil
	}
	if v := m.MapIndex(k); v.IsValid() {
		return v.Interface()
	}
	return nil
}
