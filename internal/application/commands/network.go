package commands

import (
	"fmt"

	"github.com/bnema/netrun/internal/application"
	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/parser"
)

const (
	defaultScanDepth = 1
	maxScanDepth     = 3
	maxScanDepthV1   = 5
	maxScanDepthV2   = 10
)

func connect(t *application.Terminal, args []parser.Arg, server *domain.Server) {
	if len(args) != 1 {
		usageError(t, "connect [hostname]")
		return
	}

	target := args[0].Raw
	for _, hostname := range server.Neighbors {
		neighbor, ok := t.Servers().Get(hostname)
		if !ok {
			continue
		}
		if neighbor.Hostname == target || (neighbor.IP != "" && neighbor.IP == target) {
			t.ConnectToServer(neighbor.Hostname)
			return
		}
	}

	other, ok := t.Servers().Get(target)
	if !ok {
		t.Error("Host not found")
		return
	}
	if other.Category.HasHackingDetails() && other.BackdoorInstalled {
		t.ConnectToServer(other.Hostname)
		return
	}
	t.Error(fmt.Sprintf("Cannot directly connect to %s. Make sure the server is backdoored or adjacent to your current server", target))
}

func home(t *application.Terminal, args []parser.Arg, _ *domain.Server) {
	if len(args) != 0 {
		usageError(t, "home")
		return
	}
	t.ConnectToServer(domain.HomeHostname)
}

func hostname(t *application.Terminal, args []parser.Arg, server *domain.Server) {
	if len(args) != 0 {
		usageError(t, "hostname")
		return
	}
	t.Print(server.Hostname)
}

func scan(t *application.Terminal, args []parser.Arg, server *domain.Server) {
	if len(args) != 0 {
		usageError(t, "scan")
		return
	}

	rows := make([][]any, 0, len(server.Neighbors))
	for _, hostname := range server.Neighbors {
		neighbor, ok := t.Servers().Get(hostname)
		if !ok {
			continue
		}
		root := "N"
		if neighbor.HasAdminRights {
			root = "Y"
		}
		rows = append(rows, []any{neighbor.Hostname, neighbor.IP, root})
	}
	printTable(t, []any{"Hostname", "IP", "Root Access"}, rows)
}

func scanAnalyze(t *application.Terminal, args []parser.Arg, _ *domain.Server) {
	if len(args) == 0 {
		t.ScanAnalyze(defaultScanDepth, false)
		return
	}
	if len(args) > 2 {
		usageError(t, "scan-analyze [depth]")
		return
	}

	if args[0].Kind != parser.KindNumber || args[0].Num < 0 {
		t.Error("Incorrect usage of scan-analyze command. depth argument must be positive numeric")
		return
	}
	depth := int(args[0].Num)
	all := len(args) == 2 && args[1].Is("-a")

	player := t.Player()
	switch {
	case depth > maxScanDepth && !player.HasProgram(domain.ProgramDeepscanV1) && !player.HasProgram(domain.ProgramDeepscanV2):
		t.Error(fmt.Sprintf("You cannot scan-analyze with that high of a depth. Maximum depth is %d", maxScanDepth))
		return
	case depth > maxScanDepthV1 && !player.HasProgram(domain.ProgramDeepscanV2):
		t.Error(fmt.Sprintf("You cannot scan-analyze with that high of a depth. Maximum depth is %d", maxScanDepthV1))
		return
	case depth > maxScanDepthV2:
		t.Error(fmt.Sprintf("You cannot scan-analyze with that high of a depth. Maximum depth is %d", maxScanDepthV2))
		return
	}

	t.ScanAnalyze(depth, all)
}
