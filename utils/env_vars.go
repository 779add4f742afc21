package utils

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// GetEnv reads an environment variable into a string, int, bool or duration,
// falling back to defaultValue when unset or empty.
func GetEnv[T cfgtypes](name string, defaultValue T) T {
	envValue, ok := os.LookupEnv(name)
	if !ok || envValue == "" {
		return defaultValue
	}

	value, err := parseEnv[T](name, envValue)
	if err != nil {
		panic(err)
	}
	return value
}

// GetRequiredEnv panics at boot when the variable is missing, because the
// process cannot run without it.
func GetRequiredEnv[T cfgtypes](name string) T {
	envValue, ok := os.LookupEnv(name)
	if !ok || envValue == "" {
		panic(fmt.Sprintf("%s environment variable is required", name))
	}

	value, err := parseEnv[T](name, envValue)
	if err != nil {
		panic(err)
	}
	return value
}

type cfgtypes interface {
	string | int | bool | time.Duration
}

func parseEnv[T cfgtypes](name, envValue string) (T, error) {
	var zero T

	switch any(zero).(type) {
	case string:
		return any(envValue).(T), nil
	case int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			return zero, fmt.Errorf("environment variable %s is not valid: '%s' is not an integer", name, envValue)
		}
		return any(intValue).(T), nil
	case bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			return zero, fmt.Errorf("environment variable %s is not valid: '%s' is not a boolean", name, envValue)
		}
		return any(boolValue).(T), nil
	case time.Duration:
		durationValue, err := time.ParseDuration(envValue)
		if err != nil {
			return zero, fmt.Errorf("environment variable %s is not valid: '%s' is not a duration", name, envValue)
		}
		return any(durationValue).(T), nil
	default:
		return zero, fmt.Errorf("environment variable %s has unsupported type", name)
	}
}
