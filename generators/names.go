package generators

import (
	"fmt"
	"strings"
)

type Sex int

const (
	Both Sex = iota
	Male
	Female
)

func (s Sex) String() string {
	switch s {
	case Male:
		return "male"
	case Female:
		return "female"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Sex(%d)", int(s))
	}
}

// ParseSex accepts m/male, f/female and b/both, case-insensitively.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male":
		return Male, nil
	case "f", "female":
		return Female, nil
	case "b", "both", "":
		return Both, nil
	default:
		return 0, invalidf("unknown sex %q", s)
	}
}

// NameParts selects how much of a full name is kept.
type NameParts int

const (
	LastName  NameParts = 1
	FirstLast NameParts = 2
	FullName  NameParts = 3
)

// NameProvider returns a full display name, given name first and family name last.
type NameProvider interface {
	FullName(sex Sex, country string) (string, error)
}

type NameOptions struct {
	Count   int
	Sex     Sex
	Country string
	Parts   NameParts
}

func DefaultNameOptions() NameOptions {
	return NameOptions{
		Count:   DefaultCount,
		Sex:     Both,
		Country: "us",
		Parts:   FirstLast,
	}
}

// Names returns Count+1 names from provider. With Both, even slots are male
// and odd slots female.
func Names(provider NameProvider, opts NameOptions) ([]string, error) {
	if provider == nil {
		return nil, invalidf("name provider is required")
	}
	if err := checkCount(opts.Count); err != nil {
		return nil, err
	}
	if opts.Sex < Both || opts.Sex > Female {
		return nil, invalidf("unknown sex %s", opts.Sex)
	}
	if opts.Parts < LastName || opts.Parts > FullName {
		return nil, invalidf("name parts must be 1, 2 or 3, got %d", opts.Parts)
	}

	out := make([]string, 0, opts.Count+1)
	for i := 0; i <= opts.Count; i++ {
		sex := opts.Sex
		if sex == Both {
			sex = Male
			if i%2 == 1 {
				sex = Female
			}
		}
		full, err := provider.FullName(sex, opts.Country)
		if err != nil {
			return nil, fmt.Errorf("name provider: %w", err)
		}
		out = append(out, truncateName(full, opts.Parts))
	}
	return out, nil
}

func truncateName(full string, parts NameParts) string {
	tokens := strings.Fields(full)
	if len(tokens) == 0 {
		return ""
	}
	switch parts {
	case LastName:
		return tokens[len(tokens)-1]
	case FirstLast:
		if len(tokens) == 1 {
			return tokens[0]
		}
		return tokens[0] + " " + tokens[len(tokens)-1]
	default:
		return strings.Join(tokens, " ")
	}
}
