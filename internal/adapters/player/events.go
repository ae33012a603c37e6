package player

import (
	"strconv"

	"github.com/bnema/netrun/internal/ports"
)

// FactionServers maps a server whose backdoor earns an invitation to the
// faction that sends it.
var FactionServers = map[string]string{
	"CSEC":         "CyberSec",
	"avmnite-02h":  "NiteSec",
	"I.I.I.I":      "The Black Hand",
	"run4theh111z": "BitRunners",
}

// Events implements the game-level hooks the terminal fires.
type Events struct {
	player  *Player
	servers ports.ServerRegistry

	// Notify, when set, receives one message per new invitation or transition.
	Notify func(message string)

	checks      int
	invitations []string
	endGame     bool
}

func NewEvents(player *Player, servers ports.ServerRegistry) *Events {
	return &Events{player: player, servers: servers}
}

func (e *Events) CheckFactionInvitations() {
	e.checks++
	for _, server := range e.servers.All() {
		faction, ok := FactionServers[server.Hostname]
		if !ok || !server.BackdoorInstalled || e.invited(faction) {
			continue
		}
		e.invitations = append(e.invitations, faction)
		e.player.JoinFaction(faction)
		e.notify("You received a faction invitation from " + faction)
	}
}

func (e *Events) EnterEndGame() {
	if e.endGame {
		return
	}
	e.endGame = true
	e.notify("BitNode " + strconv.Itoa(e.player.BitNode()) + " destroyed")
}

func (e *Events) Checks() int { return e.checks }
func (e *Events) Invitations() []string { return append([]string(nil), e.invitations...) }
func (e *Events) EndGame() bool { return e.endGame }

func (e *Events) invited(faction string) bool {
	for _, f := range e.invitations {
		if f == faction {
			return true
		}
	}
	return false
}

func (e *Events) notify(message string) {
	if e.Notify != nil {
		e.Notify(message)
	}
}

var _ ports.GameEvents = (*Events)(nil)
