package ports

import "github.com/bnema/netrun/internal/domain"

type ServerRegistry interface {
	// Get looks a server up by hostname or IP.
	Get(hostOrIP string) (*domain.Server, bool)
	All() []*domain.Server
}
