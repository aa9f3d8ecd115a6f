package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

// loadDotEnv exports the variables of a .env file into the process
// environment. Variables that are already set are left alone and a missing
// file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}
