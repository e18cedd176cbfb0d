package gym

import (
	"fmt"
	"strconv"

	"github.com/goorum04/Nlvip-sub000/pkg/errors"
)

func stringArg(args map[string]interface{}, key string) (string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return "", errors.Wrapf(errors.ErrInvalidInput, "missing required argument %q", key)
	}

	value, ok := raw.(string)
	if !ok {
		return "", errors.Wrapf(errors.ErrInvalidInput, "argument %q must be a string", key)
	}
	if value == "" {
		return "", errors.Wrapf(errors.ErrInvalidInput, "argument %q cannot be empty", key)
	}

	return value, nil
}

func optionalStringArg(args map[string]interface{}, key string) string {
	if raw, ok := args[key]; ok {
		if value, ok := raw.(string); ok {
			return value
		}
	}

	return ""
}

// Numbers arrive as float64 from JSON decoding, but some models send
// them as strings. Accept both.
func numberArg(args map[string]interface{}, key string) (float64, bool) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return 0, false
	}

	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func intArgOrDefault(args map[string]interface{}, key string, fallback int) int {
	if value, ok := numberArg(args, key); ok {
		return int(value)
	}

	return fallback
}

func countLabel(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}

	return fmt.Sprintf("%d %s", n, plural)
}
