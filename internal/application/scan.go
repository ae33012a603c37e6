package application

import (
	"fmt"
	"strings"

	"github.com/bnema/netrun/internal/domain"
)

type scanEntry struct {
	server *domain.Server
	depth  int
}

// ScanAnalyze walks the network from the current server, depth first, and
// prints every server up to maxDepth hops away. Purchased and hacknet servers
// are skipped unless all is set.
func (t *Terminal) ScanAnalyze(maxDepth int, all bool) {
	t.Print("~~~~~~~~~~ Beginning scan-analyze ~~~~~~~~~~")
	t.Print(" ")

	autoLink := t.deps.Player.HasProgram(domain.ProgramAutoLink)
	visited := make(map[string]bool)
	stack := []scanEntry{{server: t.deps.Player.CurrentServer(), depth: 0}}

	for len(stack) > 0 {
		entry := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		s := entry.server
		switch {
		case !all && s.PurchasedByPlayer && s.Hostname != domain.HomeHostname:
			continue
		case visited[s.Hostname] || entry.depth > maxDepth:
			continue
		case !all && s.Category == domain.CategoryHacknet:
			continue
		}
		visited[s.Hostname] = true

		for i := len(s.Neighbors) - 1; i >= 0; i-- {
			neighbor, ok := t.deps.Servers.Get(s.Neighbors[i])
			if !ok {
				continue
			}
			stack = append(stack, scanEntry{server: neighbor, depth: entry.depth + 1})
		}

		if entry.depth == 0 {
			continue
		}

		titleDashes := strings.Repeat("-", (entry.depth-1)*4)
		if autoLink {
			t.Append(domain.Link{Dashes: titleDashes, Hostname: s.Hostname})
		} else {
			t.Print(titleDashes + s.Hostname)
		}

		dashes := titleDashes + "--"
		if s.Category.HasHackingDetails() {
			t.Print(fmt.Sprintf("%sRoot Access: %s, Required hacking skill: %d", dashes, yesNo(s.HasAdminRights), s.RequiredHackingSkill))
			t.Print(fmt.Sprintf("%sNumber of open ports required to NUKE: %d", dashes, s.NumOpenPortsRequired))
		}
		t.Print(dashes + "RAM: " + domain.FormatRAM(s.MaxRAM))
		t.Print(" ")
	}
}
