package columns

import (
	"fmt"

	"github.com/mmrzaf/mockdata/internal/domain"
	"github.com/spf13/cast"
)

// Absent keys take the default; a present key is always used as given, so
// 0, false and "" are real values.

func intParam(spec domain.ColumnSpec, key string, def int) (int, error) {
	v, ok := spec.Param(key)
	if !ok {
		return def, nil
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("'%s' must be an integer: %w", key, err)
	}
	return n, nil
}

func boolParam(spec domain.ColumnSpec, key string, def bool) (bool, error) {
	v, ok := spec.Param(key)
	if !ok {
		return def, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, fmt.Errorf("'%s' must be a boolean: %w", key, err)
	}
	return b, nil
}

func stringParam(spec domain.ColumnSpec, key string, def string) (string, error) {
	v, ok := spec.Param(key)
	if !ok {
		return def, nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("'%s' must be a string: %w", key, err)
	}
	return s, nil
}

func stringsParam(spec domain.ColumnSpec, key string, def []string) ([]string, error) {
	v, ok := spec.Param(key)
	if !ok {
		return def, nil
	}
	out, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil, fmt.Errorf("'%s' must be a list of strings: %w", key, err)
	}
	return out, nil
}
