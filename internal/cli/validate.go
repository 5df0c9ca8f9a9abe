package cli

import (
	"fmt"
	"os"

	"github.com/sdejongh/dirdiff/internal/platform"
)

// validateRoots checks that both positional arguments exist and are
// directories. Any failure here is a fatal startup error; no diff runs.
func validateRoots(leftRoot, rightRoot string) error {
	for label, path := range map[string]string{
		"directory1": leftRoot,
		"directory2": rightRoot,
	} {
		if err := platform.ValidatePath(path); err != nil {
			return err
		}

		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			return fmt.Errorf("%s does not exist: %s", label, path)
		}
		if err != nil {
			return fmt.Errorf("failed to access %s: %w", label, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory: %s", label, path)
		}
	}

	return nil
}
