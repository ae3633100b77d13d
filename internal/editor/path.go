package editor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/linedit/linedit/internal/config"
)

// validatePath checks the path/command combination before anything touches
// the filesystem: absoluteness first, then the existence rule for the
// command, then the directory rule. No side effects.
func validatePath(command, path, workdir string) error {
	if !filepath.IsAbs(path) {
		suggested := filepath.Join(workdir, path)
		return errInvalidPath(command, path,
			fmt.Sprintf("The path should be an absolute path, starting with `/`. Maybe you meant %s?", suggested))
	}
	info, statErr := os.Stat(path)
	exists := statErr == nil
	if command == CmdCreate && exists {
		return errInvalidPath(command, path,
			fmt.Sprintf("File already exists at: %s. Cannot overwrite files using command `create`.", path))
	}
	if command != CmdCreate && !exists {
		return errInvalidPath(command, path,
			fmt.Sprintf("The path %s does not exist. Please provide a valid path.", path))
	}
	if command != CmdView && exists && info.IsDir() {
		return errInvalidPath(command, path,
			fmt.Sprintf("The path %s is a directory and only the `view` command can be used on directories.", path))
	}
	return nil
}

// checkAccess applies the configured access rules after the structural path
// checks passed. With no rules configured every path is allowed.
func checkAccess(cfg *config.Config, command, path string) error {
	switch cfg.CheckPath(path, command != CmdView) {
	case config.PathDenied:
		return errInvalidPath(command, path,
			fmt.Sprintf("The path %s is in a location this editor is configured to refuse.", path))
	case config.PathOutsideRoots:
		return errInvalidPath(command, path,
			fmt.Sprintf("The path %s is outside the configured editing roots.", path))
	}
	return nil
}
