package huffman

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		code   Code
		expect string
	}

	testData := [...]testRow{
		{code: MakeCode(0, 0), expect: ""},
		{code: MakeCode(1, 0), expect: "0"},
		{code: MakeCode(3, 0x3), expect: "011"},
		{code: MakeCode(4, 0xc), expect: "1100"},
		{code: Code{}.Append(1).Append(0).Append(1), expect: "101"},
	}
	for _, row := range testData {
		t.Run(row.expect, func(t *testing.T) {
			if actual := row.code.String(); row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
			parsed, err := ParseCode(row.expect)
			if err != nil {
				t.Fatalf("ParseCode failed: %v", err)
			}
			if parsed != row.code {
				t.Errorf("ParseCode(%q) = %#v, expected %#v", row.expect, parsed, row.code)
			}
		})
	}
}

func TestCode_GoString(t *testing.T) {
	if actual := MakeCode(0, 0).GoString(); actual != `""` {
		t.Errorf("wrong output for empty code: %s", actual)
	}
	if actual := MakeCode(2, 0x2).GoString(); actual != `"10"` {
		t.Errorf("wrong output: %s", actual)
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		code   string
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{code: "1100", prefix: "", expect: true},
		{code: "1100", prefix: "1", expect: true},
		{code: "1100", prefix: "110", expect: true},
		{code: "1100", prefix: "1100", expect: true},
		{code: "1100", prefix: "111", expect: false},
		{code: "1100", prefix: "11000", expect: false},
		{code: "0", prefix: "1", expect: false},
	}
	for _, row := range testData {
		t.Run(row.code+"/"+row.prefix, func(t *testing.T) {
			hc, _ := ParseCode(row.code)
			prefix, _ := ParseCode(row.prefix)
			if actual := hc.HasPrefix(prefix); actual != row.expect {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}

func TestCode_ParentSibling(t *testing.T) {
	hc, _ := ParseCode("1101")
	if actual := hc.Parent().String(); actual != "110" {
		t.Errorf("wrong parent: %s", actual)
	}
	if actual := hc.Sibling().String(); actual != "1100" {
		t.Errorf("wrong sibling: %s", actual)
	}
	if actual := (Code{}).Parent(); actual != (Code{}) {
		t.Errorf("parent of empty code must be empty, got %#v", actual)
	}
}

func TestParseCode_Invalid(t *testing.T) {
	if _, err := ParseCode("012"); err == nil {
		t.Errorf("expected error for invalid bit")
	}
	long := make([]byte, MaxCodeSize+1)
	for i := range long {
		long[i] = '1'
	}
	if _, err := ParseCode(string(long)); err == nil {
		t.Errorf("expected error for overlong code")
	}
}
