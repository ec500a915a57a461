package configuration

import (
	"fmt"

	"github.com/joho/godotenv"
)

// EnvFileProvider reads env-style files through godotenv. Unlike a bare
// [godotenv.Read], it never falls back to an implicit ".env" file.
type EnvFileProvider struct{}

// Read parses each file in order into one map. Keys of later files replace
// those of earlier ones. Errors name the file that failed.
func (*EnvFileProvider) Read(filenames ...string) (map[string]string, error) {
	if len(filenames) == 0 {
		return nil, fmt.Errorf("(config-env) %w", ErrNoConfigFile)
	}

	envMap := make(map[string]string)

	for _, name := range filenames {
		fileMap, err := godotenv.Read(name)
		if err != nil {
			return nil, fmt.Errorf("(config-env) %s: %w", name, err)
		}

		for key, value := range fileMap {
			envMap[key] = value
		}
	}

	return envMap, nil
}
