package generators

import (
	"math/rand"
	"strings"
)

// TopLevelDomains are the suffixes appended after "@example.".
var TopLevelDomains = []string{"com", "net", "org", "edu"}

// Emails derives one address per name: first and last token, transliterated
// and lower-cased, joined by a dot, at example.<tld>.
func Emails(rng *rand.Rand, names []string) ([]string, error) {
	if rng == nil {
		return nil, invalidf("random source is required")
	}
	out := make([]string, 0, len(names))
	for i, name := range names {
		local := emailLocalPart(name)
		if local == "" {
			return nil, invalidf("name %d (%q) has no usable token", i, name)
		}
		tld := TopLevelDomains[rng.Intn(len(TopLevelDomains))]
		out = append(out, local+"@example."+tld)
	}
	return out, nil
}

func emailLocalPart(name string) string {
	tokens := make([]string, 0, 3)
	for _, tok := range strings.Fields(name) {
		if t := cleanToken(tok); t != "" {
			tokens = append(tokens, t)
		}
	}
	switch len(tokens) {
	case 0:
		return ""
	case 1:
		return tokens[0]
	default:
		return tokens[0] + "." + tokens[len(tokens)-1]
	}
}

func cleanToken(tok string) string {
	ascii := strings.ToLower(Transliterate(tok))
	var b strings.Builder
	for _, r := range ascii {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
