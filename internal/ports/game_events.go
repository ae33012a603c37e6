package ports

type GameEvents interface {
	CheckFactionInvitations()
	EnterEndGame()
}
