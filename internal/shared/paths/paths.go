// Package paths provides standardized filesystem paths for consistent access
// across the framework.
//
// All paths are resolved against a single base directory, which defaults to
// the current working directory and can be overridden with SetBase (tests)
// or the BASE_DIR environment variable.
package paths

import (
	"os"
	"path/filepath"
	"sort"
)

// Well-known subdirectories of the base directory.
const (
	Prompts   = "prompts"
	Memory    = "memory"
	Knowledge = "knowledge"
	Tmp       = "tmp"
)

// Sentinel subdirectories excluded from selector listings per category.
const (
	EmbeddingsSubdir = "embeddings"
	DefaultKnowledge = "default"
)

var baseDir = resolveBase()

func resolveBase() string {
	if dir := os.Getenv("BASE_DIR"); dir != "" {
		return dir
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

// Base returns the resolved base directory.
func Base() string {
	return baseDir
}

// SetBase overrides the base directory, returning the previous value.
func SetBase(dir string) string {
	prev := baseDir
	baseDir = dir
	return prev
}

// GetAbsPath resolves a path relative to the base directory.
func GetAbsPath(elem ...string) string {
	return filepath.Join(append([]string{baseDir}, elem...)...)
}

// SettingsFile returns the path of the persisted settings document.
func SettingsFile() string {
	return GetAbsPath(Tmp, "settings.json")
}

// EnvFile returns the path of the secret env file.
func EnvFile() string {
	return GetAbsPath(".env")
}

// Subdirectories lists the subdirectory names of a category directory under
// the base dir, sorted, with any excluded names omitted. A missing category
// directory yields an empty list.
func Subdirectories(category string, exclude ...string) []string {
	entries, err := os.ReadDir(GetAbsPath(category))
	if err != nil {
		return nil
	}

	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() && !skip[entry.Name()] {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}
