// Package paths resolves the virtual directory and file paths used on simulated servers.
//
// A Directory is either the root ("") or a slash-terminated relative path without a
// leading slash ("scripts/hack/"). A FilePath is a directory followed by a file name
// ("scripts/hack/loop.js"). User input may be absolute (leading "/") or relative to a
// base directory, and may contain "." and ".." components.
package paths

import (
	"strings"
)

type Directory string

type FilePath string

const Root Directory = ""

const invalidCharacters = "*?[]!\\~|#\"' \t\n"

var (
	scriptExtensions = []string{".js", ".jsx", ".ts", ".tsx", ".script"}
	textExtensions   = []string{".txt", ".json"}
)

const (
	ProgramExtension    = ".exe"
	ContractExtension   = ".cct"
	LiteratureExtension = ".lit"
	MessageExtension    = ".msg"
)

// ResolveDirectory resolves path against base. Absolute paths ignore base.
func ResolveDirectory(path string, base Directory) (Directory, bool) {
	if strings.HasPrefix(path, "/") {
		base = Root
		path = strings.TrimPrefix(path, "/")
	}

	parts, ok := resolveComponents(string(base) + path)
	if !ok {
		return "", false
	}
	if len(parts) == 0 {
		return Root, true
	}

	return Directory(strings.Join(parts, "/") + "/"), true
}

// ResolveFilePath resolves path against base. Paths ending in a slash never name a file.
func ResolveFilePath(path string, base Directory) (FilePath, bool) {
	if path == "" || strings.HasSuffix(path, "/") {
		return "", false
	}
	if strings.HasPrefix(path, "/") {
		base = Root
		path = strings.TrimPrefix(path, "/")
	}

	parts, ok := resolveComponents(string(base) + path)
	if !ok || len(parts) == 0 {
		return "", false
	}

	name := parts[len(parts)-1]
	if name == "." || name == ".." || !hasExtension(name) {
		return "", false
	}

	return FilePath(strings.Join(parts, "/")), true
}

// IsFilePath reports whether s can be resolved from the root as a file path.
func IsFilePath(s string) bool {
	_, ok := ResolveFilePath(s, Root)
	return ok
}

func resolveComponents(raw string) ([]string, bool) {
	parts := make([]string, 0, 4)
	for _, component := range strings.Split(raw, "/") {
		switch component {
		case "", ".":
			continue
		case "..":
			if len(parts) == 0 {
				return nil, false
			}
			parts = parts[:len(parts)-1]
		default:
			if strings.ContainsAny(component, invalidCharacters) {
				return nil, false
			}
			parts = append(parts, component)
		}
	}

	return parts, true
}

func hasExtension(name string) bool {
	dot := strings.LastIndex(name, ".")
	return dot > 0 && dot < len(name)-1
}

// Dir returns the directory that contains the file.
func (p FilePath) Dir() Directory {
	idx := strings.LastIndex(string(p), "/")
	if idx < 0 {
		return Root
	}
	return Directory(p[:idx+1])
}

// Base returns the file name without its directory.
func (p FilePath) Base() string {
	idx := strings.LastIndex(string(p), "/")
	return string(p[idx+1:])
}

// Absolute renders the path the way the terminal prints it.
func (p FilePath) Absolute() string {
	return "/" + string(p)
}

func (d Directory) Absolute() string {
	return "/" + string(d)
}

// Contains reports whether the file lives in d or one of its subdirectories.
func (d Directory) Contains(p FilePath) bool {
	return strings.HasPrefix(string(p), string(d))
}

func (p FilePath) HasScriptExtension() bool {
	return hasAnySuffix(string(p), scriptExtensions)
}

func (p FilePath) HasTextExtension() bool {
	return hasAnySuffix(string(p), textExtensions)
}

func (p FilePath) IsProgram() bool {
	return strings.HasSuffix(string(p), ProgramExtension)
}

func (p FilePath) IsContract() bool {
	return strings.HasSuffix(string(p), ContractExtension)
}

func (p FilePath) IsLiterature() bool {
	return strings.HasSuffix(string(p), LiteratureExtension)
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
