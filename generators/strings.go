package generators

import (
	"math/rand"
	"strings"
)

type CharSet string

const (
	Alnum         CharSet = "alnum"
	VisibleASCII  CharSet = "ascii"
	Base64        CharSet = "base64"
	AlnumLower    CharSet = "alnumlower"
	Hex           CharSet = "hex"
	Alpha         CharSet = "alpha"
	Digits        CharSet = "digit"
	Binary        CharSet = "binary"
	Morse         CharSet = "morse"
	Pronounceable CharSet = "pronounceable"
)

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars   = "0123456789"
	consonants   = "bcdfghjklmnprstvwz"
	vowels       = "aeiou"
)

var alphabets = map[CharSet]string{
	Alnum:      upperLetters + lowerLetters + digitChars,
	Base64:     upperLetters + lowerLetters + digitChars + "+/",
	AlnumLower: lowerLetters + digitChars,
	Hex:        digitChars + "abcdef",
	Alpha:      lowerLetters,
	Digits:     digitChars,
	Binary:     "01",
	Morse:      ".-",
}

func init() {
	var b strings.Builder
	for c := byte(0x21); c <= 0x7e; c++ {
		b.WriteByte(c)
	}
	alphabets[VisibleASCII] = b.String()
}

// CharSets lists every supported character class.
func CharSets() []CharSet {
	return []CharSet{Alnum, VisibleASCII, Base64, AlnumLower, Hex, Alpha, Digits, Binary, Morse, Pronounceable}
}

type StringOptions struct {
	Count   int
	Length  int
	CharSet CharSet
}

func DefaultStringOptions() StringOptions {
	return StringOptions{Count: DefaultCount, Length: 8, CharSet: Alnum}
}

// Strings returns Count+1 random strings of Length characters drawn from CharSet.
func Strings(rng *rand.Rand, opts StringOptions) ([]string, error) {
	if err := checkCommon(rng, opts.Count); err != nil {
		return nil, err
	}
	if opts.Length < 1 {
		return nil, invalidf("string length must be >= 1, got %d", opts.Length)
	}
	alphabet, ok := alphabets[opts.CharSet]
	if !ok && opts.CharSet != Pronounceable {
		return nil, invalidf("unknown charset %q", opts.CharSet)
	}

	out := make([]string, 0, opts.Count+1)
	for i := 0; i <= opts.Count; i++ {
		if opts.CharSet == Pronounceable {
			out = append(out, pronounceable(rng, opts.Length))
			continue
		}
		out = append(out, randomString(rng, alphabet, opts.Length))
	}
	return out, nil
}

func randomString(rng *rand.Rand, alphabet string, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(buf)
}

// pronounceable alternates consonants and vowels, starting with either.
func pronounceable(rng *rand.Rand, n int) string {
	buf := make([]byte, n)
	vowel := rng.Intn(2) == 0
	for i := range buf {
		set := consonants
		if vowel {
			set = vowels
		}
		buf[i] = set[rng.Intn(len(set))]
		vowel = !vowel
	}
	return string(buf)
}
