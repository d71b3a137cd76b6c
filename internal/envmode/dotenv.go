package envmode

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnvFile overlays variables from a dotenv file beneath base. Keys that
// are already set in base keep their value.
func LoadEnvFile(path string, base Env) (Env, error) {
	merged := make(Env, len(base))
	for k, v := range base {
		merged[k] = v
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return merged, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	for k, v := range values {
		if _, ok := merged[k]; ok {
			continue
		}
		merged[k] = v
	}
	return merged, nil
}
