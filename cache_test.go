package huffman

import (
	"errors"
	"sync"
	"testing"
)

func TestCache_Build(t *testing.T) {
	c := NewCache(128)

	first, err := c.Build(CountString("mississippi"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	second, err := c.Build(CountString("mississippi"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if first != second {
		t.Errorf("expected the cached tree to be returned")
	}

	expect := mustMarshalTree(t, first)
	uncached, _ := Build(CountString("mississippi"))
	if actual := mustMarshalTree(t, uncached); expect != actual {
		t.Errorf("cached tree differs:\n\texpect: %s\n\tactual: %s", expect, actual)
	}

	if stats := c.Stats(); stats != (CacheStats{Hits: 1, Misses: 1}) {
		t.Errorf("wrong stats: %+v", stats)
	}

	if _, err := c.Build(NewFrequencyTable()); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestCache_Build_Collision(t *testing.T) {
	c := NewCache(128)

	a := CountString("ab")
	b := CountString("xyz")
	rootB, err := Build(b)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// Store b's tree under a's fingerprint, as a hash collision would.
	c.lfu.Add(a.Fingerprint(), cacheEntry{table: b, root: rootB})

	root, err := c.Build(a)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	expect := `{"0":"a","1":"b"}`
	if actual := mustMarshalTree(t, root); expect != actual {
		t.Errorf("wrong tree:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if stats := c.Stats(); stats != (CacheStats{Hits: 0, Misses: 1}) {
		t.Errorf("wrong stats: %+v", stats)
	}
}

func TestCache_Encode(t *testing.T) {
	c := NewCache(128)
	inputs := []string{"foo", "abracadabra", "foo", "zzz", "abracadabra"}

	var wg sync.WaitGroup
	errs := make([]error, len(inputs))
	outs := make([]string, len(inputs))
	for i, input := range inputs {
		wg.Add(1)
		go func(i int, input string) {
			defer wg.Done()
			outs[i], errs[i] = c.Encode(input)
		}(i, input)
	}
	wg.Wait()

	for i, input := range inputs {
		if errs[i] != nil {
			t.Errorf("Encode(%q) failed: %v", input, errs[i])
			continue
		}
		expect, _ := Encode(input)
		if outs[i] != expect {
			t.Errorf("wrong output for %q:\n\texpect: %s\n\tactual: %s", input, expect, outs[i])
		}
	}

	stats := c.Stats()
	if stats.Hits+stats.Misses != uint64(len(inputs)) {
		t.Errorf("expected %d lookups, got %+v", len(inputs), stats)
	}
}
