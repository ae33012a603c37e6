package application

import (
	"strings"

	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/paths"
)

const darkwebHint = "You are now connected to the dark web. From the dark web you can purchase illegal items. " +
	"Use the 'buy -l' command to display a list of all the items you can buy. " +
	"Use 'buy [item-name]' to purchase an item."

// ConnectToServer moves the player to the server named by hostname or IP.
func (t *Terminal) ConnectToServer(target string) {
	server, ok := t.deps.Servers.Get(target)
	if !ok {
		t.Error("Invalid server. Connection failed.")
		return
	}

	if current := t.deps.Player.CurrentServer(); current != nil {
		current.IsConnectedTo = false
	}
	if err := t.deps.Player.SetCurrentServer(server.Hostname); err != nil {
		t.Error(err.Error())
		return
	}
	server.IsConnectedTo = true

	t.Print("Connected to " + server.Hostname)
	t.SetCwd(paths.Root)
	if server.Hostname == domain.DarkwebHostname {
		t.Print(darkwebHint)
	}
}

// GetFilepath resolves path against the current directory, or from the root
// when it starts with a slash.
func (t *Terminal) GetFilepath(path string) (paths.FilePath, bool) {
	if strings.HasPrefix(path, "/") {
		return paths.ResolveFilePath(path, paths.Root)
	}
	return paths.ResolveFilePath("./"+path, t.cwd)
}

func (t *Terminal) GetDirectory(path string) (paths.Directory, bool) {
	if strings.HasPrefix(path, "/") {
		return paths.ResolveDirectory(path, paths.Root)
	}
	return paths.ResolveDirectory("./"+path, t.cwd)
}

// GetFile looks a script, text or literature file up on the current server.
func (t *Terminal) GetFile(name string) (paths.FilePath, string, bool) {
	path, ok := t.GetFilepath(name)
	if !ok {
		return "", "", false
	}

	switch {
	case path.HasScriptExtension():
		return t.GetScript(name)
	case path.HasTextExtension():
		return t.GetTextFile(name)
	case path.IsLiterature():
		lit, ok := t.GetLitFile(name)
		if !ok {
			return "", "", false
		}
		return lit, t.deps.Player.CurrentServer().Files[lit], true
	default:
		return "", "", false
	}
}

func (t *Terminal) GetScript(name string) (paths.FilePath, string, bool) {
	return t.lookupFile(name, paths.FilePath.HasScriptExtension)
}

func (t *Terminal) GetTextFile(name string) (paths.FilePath, string, bool) {
	return t.lookupFile(name, paths.FilePath.HasTextExtension)
}

func (t *Terminal) GetLitFile(name string) (paths.FilePath, bool) {
	path, ok := t.GetFilepath(name)
	if !ok {
		return "", false
	}
	if !t.deps.Player.CurrentServer().HasMessage(path) {
		return "", false
	}
	return path, true
}

func (t *Terminal) lookupFile(name string, kind func(paths.FilePath) bool) (paths.FilePath, string, bool) {
	path, ok := t.GetFilepath(name)
	if !ok || !kind(path) {
		return "", "", false
	}
	content, ok := t.deps.Player.CurrentServer().Files[path]
	if !ok {
		return "", "", false
	}
	return path, content, true
}
