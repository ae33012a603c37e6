package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/netrun/internal/application"
	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/parser"
	"github.com/bnema/netrun/internal/paths"
)

func ls(t *application.Terminal, args []parser.Arg, server *domain.Server) {
	var (
		target  string
		pattern string
	)
	for i := 0; i < len(args); i++ {
		switch {
		case args[i].Is("--grep") || args[i].Is("-g"):
			if i+1 >= len(args) {
				usageError(t, "ls [dir] [--grep pattern]")
				return
			}
			i++
			pattern = args[i].Raw
		case target == "":
			target = args[i].Raw
		default:
			usageError(t, "ls [dir] [--grep pattern]")
			return
		}
	}

	dir := t.Cwd()
	if target != "" {
		resolved, ok := t.GetDirectory(target)
		if !ok {
			t.Error(fmt.Sprintf("Invalid path %s", target))
			return
		}
		dir = resolved
	}

	dirs, files := listDirectory(server, dir)
	for _, name := range append(dirs, files...) {
		if pattern != "" && !strings.Contains(name, pattern) {
			continue
		}
		t.Print(name)
	}
}

// listDirectory splits the entries directly under dir into subdirectories
// and files, each sorted.
func listDirectory(server *domain.Server, dir paths.Directory) ([]string, []string) {
	seen := make(map[string]bool)
	var dirs, files []string
	for _, name := range server.FileNames() {
		if !dir.Contains(name) {
			continue
		}
		rel := strings.TrimPrefix(string(name), string(dir))
		if idx := strings.Index(rel, "/"); idx >= 0 {
			sub := rel[:idx+1]
			if !seen[sub] {
				seen[sub] = true
				dirs = append(dirs, sub)
			}
			continue
		}
		files = append(files, rel)
	}
	sort.Strings(dirs)
	sort.Strings(files)
	return dirs, files
}

func cd(t *application.Terminal, args []parser.Arg, server *domain.Server) {
	if len(args) > 1 {
		t.Error("Incorrect number of arguments. Usage: cd [dir]")
		return
	}
	if len(args) == 0 || args[0].Is("/") {
		t.SetCwd(paths.Root)
		return
	}

	dir, ok := t.GetDirectory(args[0].Raw)
	if !ok {
		t.Error("Invalid path. Failed to change directories")
		return
	}
	if dir != paths.Root && !hasDirectory(server, dir) {
		t.Error(fmt.Sprintf("Invalid path. %s does not exist", dir.Absolute()))
		return
	}
	t.SetCwd(dir)
}

func hasDirectory(server *domain.Server, dir paths.Directory) bool {
	for _, name := range server.FileNames() {
		if dir.Contains(name) {
			return true
		}
	}
	return false
}

func cat(t *application.Terminal, args []parser.Arg, server *domain.Server) {
	if len(args) != 1 {
		usageError(t, "cat [file]")
		return
	}

	name := args[0].Raw
	path, ok := t.GetFilepath(name)
	if !ok {
		t.Error("Invalid filename: " + name)
		return
	}

	switch {
	case path.IsLiterature() || strings.HasSuffix(string(path), paths.MessageExtension):
		found, ok := t.GetLitFile(name)
		if !ok {
			t.Error("No such file " + path.Absolute())
			return
		}
		t.Print(found.Base())
		if content := server.Files[found]; content != "" {
			t.Print(content)
		}
	case path.HasTextExtension():
		_, content, ok := t.GetTextFile(name)
		if !ok {
			t.Error("No such file " + path.Absolute())
			return
		}
		t.Print(content)
	default:
		t.Error("Only .msg, .txt, .lit, and .json files are viewable with cat (filename must end with .msg, .txt, .lit, or .json)")
	}
}

func free(t *application.Terminal, args []parser.Arg, server *domain.Server) {
	if len(args) != 0 {
		usageError(t, "free")
		return
	}

	total := domain.FormatRAM(server.MaxRAM)
	used := domain.FormatRAM(server.RAMUsed)
	avail := domain.FormatRAM(server.MaxRAM - server.RAMUsed)
	width := max(len(total), len(used), len(avail))

	usedPercent := 0.0
	if server.MaxRAM > 0 {
		usedPercent = server.RAMUsed / server.MaxRAM
	}

	t.Print(fmt.Sprintf("Total:     %*s", width, total))
	t.Print(fmt.Sprintf("Used:      %*s (%s)", width, used, domain.FormatPercent(usedPercent, 2)))
	t.Print(fmt.Sprintf("Available: %*s", width, avail))
}
