package huffman

import (
	"errors"
	"testing"
)

func makeTestTable() *FrequencyTable {
	table := NewFrequencyTable()
	for i, freq := range []uint64{5, 9, 12, 13, 16, 45} {
		table.Add(Symbol('a'+i), freq)
	}
	return table
}

func mustMarshalTree(t *testing.T, root Node) string {
	t.Helper()
	raw, err := MarshalTree(root)
	if err != nil {
		t.Fatalf("MarshalTree failed: %v", err)
	}
	return string(raw)
}

func TestBuild(t *testing.T) {
	type testRow struct {
		name   string
		table  *FrequencyTable
		expect string
		weight uint64
	}

	testData := [...]testRow{
		{
			name:   "classic",
			table:  makeTestTable(),
			expect: `{"0":"f","1":{"0":{"0":"c","1":"d"},"1":{"0":{"0":"a","1":"b"},"1":"e"}}}`,
			weight: 100,
		},
		{
			name:   "foo",
			table:  CountString("foo"),
			expect: `{"0":"f","1":"o"}`,
			weight: 3,
		},
		{
			name:   "ties-by-insertion-order",
			table:  CountString("abcd"),
			expect: `{"0":{"0":"a","1":"b"},"1":{"0":"c","1":"d"}}`,
			weight: 4,
		},
		{
			name:   "lighter-child-first",
			table:  CountString("aabbc"),
			expect: `{"0":"b","1":{"0":"c","1":"a"}}`,
			weight: 5,
		},
		{
			name:   "single",
			table:  CountString("zzz"),
			expect: `"z"`,
			weight: 3,
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			root, err := Build(row.table)
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			actual := mustMarshalTree(t, root)
			if row.expect != actual {
				t.Errorf("wrong tree:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
			if root.Weight() != row.weight {
				t.Errorf("expected root weight %d, got %d", row.weight, root.Weight())
			}
		})
	}
}

func TestBuild_Full(t *testing.T) {
	root, err := Build(CountString("the quick brown fox jumps over the lazy dog"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var check func(n Node)
	check = func(n Node) {
		x, ok := n.(*Internal)
		if !ok {
			return
		}
		if !x.IsFull() {
			t.Errorf("internal node with a missing child")
			return
		}
		if x.Weight() != x.Child(0).Weight()+x.Child(1).Weight() {
			t.Errorf("internal weight %d != %d + %d", x.Weight(), x.Child(0).Weight(), x.Child(1).Weight())
		}
		if x.Child(0).Weight() > x.Child(1).Weight() {
			t.Errorf("child 0 weight %d > child 1 weight %d", x.Child(0).Weight(), x.Child(1).Weight())
		}
		check(x.Child(0))
		check(x.Child(1))
	}
	check(root)
}

func TestBuild_Empty(t *testing.T) {
	if _, err := Build(NewFrequencyTable()); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := Build(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput for nil table, got %v", err)
	}
}
