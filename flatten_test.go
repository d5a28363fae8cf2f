package huffman

import (
	"reflect"
	"testing"
)

func TestFlatten(t *testing.T) {
	classic, _ := Build(makeTestTable())

	type testRow struct {
		name   string
		root   Node
		expect [][]Symbol
	}

	testData := [...]testRow{
		{name: "fixture", root: makeFixtureTree(), expect: [][]Symbol{{'a'}, {'b', 'c'}}},
		{name: "classic", root: classic, expect: [][]Symbol{{'f'}, {'c', 'd', 'a', 'b', 'e'}}},
		{name: "leaf", root: NewLeaf('z', 1), expect: [][]Symbol{{'z'}}},
		{name: "one-sided", root: NewInternal(nil, NewLeaf('y', 1)), expect: [][]Symbol{{'y'}}},
		{name: "nil", root: nil, expect: nil},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual := Flatten(row.root)
			if !reflect.DeepEqual(row.expect, actual) {
				t.Errorf("wrong groups:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}
		})
	}
}
