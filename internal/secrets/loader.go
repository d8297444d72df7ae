package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where a secret value comes from. A configured File takes
// precedence over an inline Value.
type Source struct {
	// Name gives error messages context about which secret failed to load.
	Name string
	// Value is an inline secret provided via configuration.
	Value string
	// File points to a file containing the secret.
	File string
}

// Load resolves the secret from the source, trimmed of surrounding
// whitespace. An error is returned when neither File nor Value yields a
// usable value.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	value := src.Value
	if file := strings.TrimSpace(src.File); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		value = string(data)
	}

	secret := strings.TrimSpace(value)
	if secret == "" {
		return "", fmt.Errorf("%s is not configured", name)
	}

	return secret, nil
}
