package player

import (
	"testing"

	"github.com/bnema/netrun/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFactionInvitations(t *testing.T) {
	world := newWorld(t)
	p, err := New(world, Seed{})
	require.NoError(t, err)

	var notes []string
	events := NewEvents(p, world)
	events.Notify = func(m string) { notes = append(notes, m) }

	events.CheckFactionInvitations()
	assert.Empty(t, events.Invitations())

	csec, _ := world.Get("CSEC")
	csec.BackdoorInstalled = true
	events.CheckFactionInvitations()
	events.CheckFactionInvitations()

	assert.Equal(t, 3, events.Checks())
	assert.Equal(t, []string{"CyberSec"}, events.Invitations())
	assert.Equal(t, []string{"CyberSec"}, p.Factions())
	assert.Equal(t, []string{"You received a faction invitation from CyberSec"}, notes)
}

func TestEnterEndGameOnce(t *testing.T) {
	world := newWorld(t, &domain.Server{Hostname: domain.HomeHostname})
	p, err := New(world, Seed{BitNode: 3})
	require.NoError(t, err)

	var notes []string
	events := NewEvents(p, world)
	events.Notify = func(m string) { notes = append(notes, m) }

	events.EnterEndGame()
	events.EnterEndGame()

	assert.True(t, events.EndGame())
	assert.Equal(t, []string{"BitNode 3 destroyed"}, notes)
}
