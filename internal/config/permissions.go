package config

import (
	"os"
	"path/filepath"
	"strings"
)

// PathAccess is the decision for one path against the configured access
// rules.
type PathAccess int

const (
	PathAllowed PathAccess = iota
	PathDenied
	PathOutsideRoots
)

// CheckPath evaluates path against the editor's access rules. Denied
// locations refuse every command. Editing roots, when configured, confine
// mutating commands; viewing stays unrestricted. Empty rule lists allow
// everything, which is the default.
func (c *Config) CheckPath(path string, mutating bool) PathAccess {
	path = filepath.Clean(path)

	for _, denied := range c.Editor.DeniedPaths {
		if underRoot(path, expandHome(denied)) {
			return PathDenied
		}
	}

	if !mutating || len(c.Editor.AllowedRoots) == 0 {
		return PathAllowed
	}
	for _, root := range c.Editor.AllowedRoots {
		if underRoot(path, expandHome(root)) {
			return PathAllowed
		}
	}
	return PathOutsideRoots
}

// underRoot reports whether path is root itself or lives below it. The
// separator check keeps /tmp/foobar out of /tmp/foo.
func underRoot(path, root string) bool {
	root = filepath.Clean(root)
	return path == root || strings.HasPrefix(path, root+string(filepath.Separator))
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
