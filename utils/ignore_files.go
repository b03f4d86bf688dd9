package utils

import (
	"strings"
)

// defaultIgnoredDirs lists directory names that never hold snapshot files:
// VCS metadata, editor state, dependency trees and build output.
var defaultIgnoredDirs = []string{
	".git",
	".svn",
	".idea",
	".vscode",
	".cache",
	".snapseed-cache",
	"node_modules",
	"target",
}

// IsDefaultIgnored reports whether the slash-separated relative path has a
// component from the default ignore set. Matching is by exact component name.
func IsDefaultIgnored(path string) bool {
	parts := strings.Split(path, "/")

	for _, part := range parts {
		for _, ignored := range defaultIgnoredDirs {
			if part == ignored {
				return true
			}
		}
	}

	return false
}
