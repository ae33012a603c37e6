package ports

import "github.com/bnema/netrun/internal/domain"

type Tutorial interface {
	Running() bool
	Step() domain.TutorialStep
	Advance()
}
