package generators

import (
	"math/rand"
	"sort"
	"testing"
)

func TestShuffle_IsPermutationAndIgnoresCount(t *testing.T) {
	items := []string{"x", "y", "z", "x"}
	got, err := Shuffle(rand.New(rand.NewSource(9)), ShuffleOptions{Items: items, Count: 99})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(items) {
		t.Fatalf("expected %d items, got %d", len(items), len(got))
	}
	a := append([]string(nil), items...)
	b := append([]string(nil), got...)
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("not a permutation: %v vs %v", items, got)
		}
	}
	if items[0] != "x" || items[3] != "x" {
		t.Fatal("input slice was modified")
	}
}

func TestShuffle_DefaultAlphabet(t *testing.T) {
	got, err := Shuffle(rand.New(rand.NewSource(1)), ShuffleOptions{Count: 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 26 {
		t.Fatalf("expected 26 letters, got %d", len(got))
	}

	empty, err := Shuffle(rand.New(rand.NewSource(1)), ShuffleOptions{Items: []string{}})
	if err != nil {
		t.Fatal(err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty shuffle, got %v", empty)
	}
}
