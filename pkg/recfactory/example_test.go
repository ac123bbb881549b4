/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package recfactory_test

import (
	"fmt"

	"github.com/voedger/recfactory/pkg/recfactory"
)

func ExampleIFactory_NewNamed() {
	f := recfactory.New()

	// how to create record type with extension method
	_, err := f.NewNamed("Customer", []recfactory.FieldName{"name", "address", "zip"},
		recfactory.Methods{
			"greeting": func(self recfactory.IRecord, _ ...any) (any, error) {
				name, err := self.Call("name")
				if err != nil {
					return nil, err
				}
				return fmt.Sprintf("Hello %v!", name), nil
			},
		})
	if err != nil {
		panic(err)
	}

	// how to construct and inspect records
	joe, err := f.Type("Customer").New("Joe Smith", "123 Maple, Anytown NC", 12345)
	if err != nil {
		panic(err)
	}

	fmt.Println(joe)
	fmt.Println(joe.Get(0), joe.Get("zip"), joe.Length())
	fmt.Println(joe.ValuesAt(0, 2))

	g, _ := joe.Call("greeting")
	fmt.Println(g)

	joe.EachPair(func(n recfactory.FieldName, v any) {
		fmt.Printf("- %s => %v\n", n, v)
	})

	_, err = f.Type("Customer").New("Jane Doe")
	fmt.Println(err)

	// Output:
	// #<record Customer name="Joe Smith", address="123 Maple, Anytown NC", zip=12345>
	// Joe Smith 12345 3
	// [Joe Smith 12345]
	// Hello Joe Smith!
	// - name => Joe Smith
	// - address => 123 Maple, Anytown NC
	// - zip => 12345
	// Customer: wrong number of arguments: given 1, expected 3
}

func ExampleIRecord_Dig() {
	f := recfactory.New()

	c, err := f.New([]recfactory.FieldName{"a"})
	if err != nil {
		panic(err)
	}

	r := c.MustNew(c.MustNew(map[string]any{"b": []any{1, 2, 3}}))

	v, err := r.Dig("a", "a", "b", 0)
	fmt.Println(v, err)

	v, err = r.Dig("b", 0)
	fmt.Println(v, err)

	_, err = r.Dig("a", "a", "b", "c")
	fmt.Println(err != nil)

	// Output:
	// 1 <nil>
	// <nil> <nil>
	// true
}
