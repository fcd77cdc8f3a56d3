// Copyright (c) 2026 ToeiRei
// dataentry - simple people data entry
// This source code is licensed under the MIT license found in the LICENSE file.
package model

import "testing"

func TestPerson_String(t *testing.T) {
	cases := []struct {
		p    Person
		want string
	}{
		{Person{Name: "Alice", Age: 30}, "Alice, 30"},
		{Person{Name: "", Age: 0}, ", 0"},
		{Person{Name: "Bob, Jr.", Age: -1}, "Bob, Jr., -1"},
	}
	for _, c := range cases {
		if got := c.p.String(); got != c.want {
			t.Fatalf("String() = %q, want %q", got, c.want)
		}
	}
}
