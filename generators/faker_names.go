package generators

import (
	"math/rand"
	"strings"

	"github.com/go-faker/faker/v4"
)

// FakerNames builds "First Middle Last" names from go-faker's name pools.
// Country "cn" or "zh" uses the Chinese pools; any other country uses the
// default English pools.
type FakerNames struct{}

func (FakerNames) FullName(sex Sex, country string) (string, error) {
	switch strings.ToLower(country) {
	case "cn", "zh":
		return faker.ChineseFirstName() + " " + faker.ChineseFirstName() + " " + faker.ChineseLastName(), nil
	}

	first := faker.FirstNameMale
	if sex == Female {
		first = faker.FirstNameFemale
	}
	return first() + " " + first() + " " + faker.LastName(), nil
}

// SeedFakerNames reseeds faker's package-level source. It affects every faker
// caller in the process.
func SeedFakerNames(seed int64) {
	faker.SetRandomSource(faker.NewSafeSource(rand.NewSource(seed)))
}
