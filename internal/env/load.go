package env

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// DefaultFile is the dotenv file read at startup.
const DefaultFile = ".env"

// Load reads the given file (e.g. ".env") and sets an environment variable for each
// KEY=VALUE entry. Variables already set in the process environment win.
// The file may be missing; that is not an error.
func Load(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
