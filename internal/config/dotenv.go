package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// loadDotenv reads a .env file from the working directory into the process
// environment. godotenv never overwrites variables that are already set, so
// the real environment keeps priority over file entries.
//
// An absent file is fine; any other read error is reported.
func loadDotenv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("error loading .env file: %w", err)
}
