package columns

import (
	"errors"

	"github.com/mmrzaf/mockdata/generators"
)

func isGenerationFailure(err error) bool {
	return errors.Is(err, generators.ErrGenerationFailed)
}
