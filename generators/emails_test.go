package generators

import (
	"errors"
	"math/rand"
	"regexp"
	"testing"
)

func TestEmails_FirstDotLast(t *testing.T) {
	re := regexp.MustCompile(`^jane\.doe@example\.(com|net|org|edu)$`)
	got, err := Emails(rand.New(rand.NewSource(1)), []string{"Jane Doe", "Jane Q Doe"})
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range got {
		if !re.MatchString(e) {
			t.Fatalf("unexpected email %q", e)
		}
	}
}

func TestEmails_SingleTokenAndTransliteration(t *testing.T) {
	got, err := Emails(rand.New(rand.NewSource(2)), []string{"Cher", "José Müller", "Søren Łukasz-Straße"})
	if err != nil {
		t.Fatal(err)
	}
	wantPrefix := []string{"cher@example.", "jose.muller@example.", "soren.lukaszstrasse@example."}
	for i, e := range got {
		if len(e) < len(wantPrefix[i]) || e[:len(wantPrefix[i])] != wantPrefix[i] {
			t.Fatalf("expected %q prefix, got %q", wantPrefix[i], e)
		}
	}
}

func TestEmails_RejectsEmptyName(t *testing.T) {
	_, err := Emails(rand.New(rand.NewSource(1)), []string{"Jane Doe", "  "})
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration, got %v", err)
	}
}

func TestTransliterate(t *testing.T) {
	cases := map[string]string{
		"Ångström":   "Angstrom",
		"naïve":      "naive",
		"José":       "Jose",
		"Ｊａｎｅ": "Jane",
	}
	for in, want := range cases {
		if got := Transliterate(in); got != want {
			t.Fatalf("Transliterate(%q) = %q, want %q", in, got, want)
		}
	}

	han := Transliterate("東京")
	if han == "" {
		t.Fatal("expected Han characters to transliterate to latin")
	}
	for _, r := range han {
		if r > 0x7f {
			t.Fatalf("non-ASCII rune %q in %q", r, han)
		}
	}
}

func TestEmails_ChineseFakerNames(t *testing.T) {
	names, err := Names(FakerNames{}, NameOptions{Count: 5, Sex: Both, Country: "cn", Parts: FirstLast})
	if err != nil {
		t.Fatal(err)
	}
	got, err := Emails(rand.New(rand.NewSource(3)), names)
	if err != nil {
		t.Fatalf("emails for %q: %v", names, err)
	}
	re := regexp.MustCompile(`^[a-z0-9]+(\.[a-z0-9]+)?@example\.(com|net|org|edu)$`)
	if len(got) != len(names) {
		t.Fatalf("expected %d emails, got %d", len(names), len(got))
	}
	for i, e := range got {
		if !re.MatchString(e) {
			t.Fatalf("name %q gave unexpected email %q", names[i], e)
		}
	}
}
