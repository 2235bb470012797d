package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

func envOrDefault(key, defaultValue string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val != "" {
		return val
	}
	return defaultValue
}

func durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

// secondsEnvOrDefault reads a whole number of seconds. Zero is allowed and disables caching.
func secondsEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return defaultValue
	}
	return time.Duration(val) * time.Second
}

// nonNegativeIntEnvOrDefault accepts zero; invalid or negative values fall back.
func nonNegativeIntEnvOrDefault(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return defaultValue
	}
	return val
}

func boolEnvOrDefault(key string, defaultValue bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	if raw == "1" || strings.EqualFold(raw, "true") || strings.EqualFold(raw, "yes") {
		return true
	}
	if raw == "0" || strings.EqualFold(raw, "false") || strings.EqualFold(raw, "no") {
		return false
	}
	return defaultValue
}

// jsonEnv decodes a JSON env var into a generic value. ok is false when unset or invalid.
func jsonEnv(key string) (any, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil, false
	}
	var out any
	if err := json.UnmarshalFromString(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

// listEnv reads a comma-delimited list, dropping blank items. ok is false when nothing usable is set.
func listEnv(key string) ([]string, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return nil, false
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out, len(out) > 0
}

// pairsEnv reads "PAT=NAME;PAT=NAME". Malformed parts are skipped.
func pairsEnv(key string) ([]NamePattern, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return nil, false
	}
	var out []NamePattern
	for _, part := range strings.Split(raw, ";") {
		pat, name, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		pat, name = strings.TrimSpace(pat), strings.TrimSpace(name)
		if pat != "" && name != "" {
			out = append(out, NamePattern{Pattern: pat, Name: name})
		}
	}
	return out, len(out) > 0
}
