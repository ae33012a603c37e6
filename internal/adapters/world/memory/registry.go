package memory

import (
	"fmt"

	"github.com/bnema/netrun/internal/domain"
)

// Registry is an in-memory server registry keyed by hostname and IP.
type Registry struct {
	order  []*domain.Server
	byHost map[string]*domain.Server
	byIP   map[string]*domain.Server
}

func NewRegistry(servers ...*domain.Server) (*Registry, error) {
	r := &Registry{
		byHost: make(map[string]*domain.Server, len(servers)),
		byIP:   make(map[string]*domain.Server, len(servers)),
	}
	for _, server := range servers {
		if err := r.Add(server); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) Add(server *domain.Server) error {
	if server == nil || server.Hostname == "" {
		return fmt.Errorf("add server: %w: missing hostname", domain.ErrInvalidWorld)
	}
	if _, exists := r.byHost[server.Hostname]; exists {
		return fmt.Errorf("add server %q: %w: duplicate hostname", server.Hostname, domain.ErrInvalidWorld)
	}
	if server.IP != "" {
		if other, exists := r.byIP[server.IP]; exists {
			return fmt.Errorf("add server %q: %w: ip %s already used by %s", server.Hostname, domain.ErrInvalidWorld, server.IP, other.Hostname)
		}
		r.byIP[server.IP] = server
	}

	r.byHost[server.Hostname] = server
	r.order = append(r.order, server)
	return nil
}

func (r *Registry) Get(hostOrIP string) (*domain.Server, bool) {
	if server, ok := r.byHost[hostOrIP]; ok {
		return server, true
	}
	server, ok := r.byIP[hostOrIP]
	return server, ok
}

// All returns servers in insertion order.
func (r *Registry) All() []*domain.Server {
	out := make([]*domain.Server, len(r.order))
	copy(out, r.order)
	return out
}

// Validate checks that every neighbor reference resolves and that links are
// symmetric.
func (r *Registry) Validate() error {
	for _, server := range r.order {
		for _, neighbor := range server.Neighbors {
			other, ok := r.byHost[neighbor]
			if !ok {
				return fmt.Errorf("server %q: %w: unknown neighbor %q", server.Hostname, domain.ErrInvalidWorld, neighbor)
			}
			if !linksTo(other, server.Hostname) {
				return fmt.Errorf("server %q: %w: %q does not link back", server.Hostname, domain.ErrInvalidWorld, neighbor)
			}
		}
	}
	if _, ok := r.byHost[domain.HomeHostname]; !ok {
		return fmt.Errorf("%w: no %s server", domain.ErrInvalidWorld, domain.HomeHostname)
	}
	return nil
}

func linksTo(server *domain.Server, hostname string) bool {
	for _, n := range server.Neighbors {
		if n == hostname {
			return true
		}
	}
	return false
}
