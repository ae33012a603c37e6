package domain

import (
	"math"
	"slices"
	"sort"

	"github.com/bnema/netrun/internal/paths"
)

type Ports struct {
	SSH  bool
	FTP  bool
	SMTP bool
	HTTP bool
	SQL  bool
}

func (p Ports) OpenCount() int {
	count := 0
	for _, open := range []bool{p.SSH, p.FTP, p.SMTP, p.HTTP, p.SQL} {
		if open {
			count++
		}
	}
	return count
}

// Server is a node of the simulated network. The engine holds references to
// servers but never owns their lifecycle.
type Server struct {
	Hostname         string
	IP               string
	OrganizationName string
	Category         ServerCategory

	HasAdminRights    bool
	PurchasedByPlayer bool
	BackdoorInstalled bool
	IsConnectedTo     bool

	HackDifficulty float64
	MinDifficulty  float64
	BaseDifficulty float64

	MoneyAvailable float64
	MoneyMax       float64
	ServerGrowth   float64

	RequiredHackingSkill int
	NumOpenPortsRequired int
	Ports                Ports

	MaxRAM   float64
	RAMUsed  float64
	CPUCores int

	Neighbors []string

	Files     map[paths.FilePath]string
	Programs  []string
	Messages  []string
	Contracts []*Contract
}

// Fortify raises security, capped at 100.
func (s *Server) Fortify(amount float64) {
	s.HackDifficulty += amount
	s.capDifficulty()
}

// Weaken lowers security, never below the configured minimum.
func (s *Server) Weaken(amount float64) {
	s.HackDifficulty -= amount
	s.capDifficulty()
}

func (s *Server) capDifficulty() {
	if s.HackDifficulty < s.MinDifficulty {
		s.HackDifficulty = s.MinDifficulty
	}
	if s.HackDifficulty < 1 {
		s.HackDifficulty = 1
	}
	if s.HackDifficulty > 100 {
		s.HackDifficulty = 100
	}
}

// ApplyGrowth grows the available money by multiplier for the given thread
// count, fortifies the server accordingly and returns new/old money.
func (s *Server) ApplyGrowth(multiplier float64, threads int) float64 {
	if multiplier < 1 || math.IsNaN(multiplier) {
		multiplier = 1
	}

	old := s.MoneyAvailable
	s.MoneyAvailable += float64(threads)
	s.MoneyAvailable *= multiplier
	if s.MoneyMax > 0 && s.MoneyAvailable > s.MoneyMax {
		s.MoneyAvailable = s.MoneyMax
	}

	if old != s.MoneyAvailable {
		s.Fortify(2 * ServerFortifyAmount * float64(threads))
	}

	if old <= 0 {
		return s.MoneyAvailable
	}
	return s.MoneyAvailable / old
}

func (s *Server) CanRunScripts() bool {
	return s.HasAdminRights && s.MaxRAM > 0
}

func (s *Server) HasProgram(name string) bool {
	return slices.Contains(s.Programs, name)
}

func (s *Server) GetContract(path paths.FilePath) *Contract {
	for _, contract := range s.Contracts {
		if contract.Path == path {
			return contract
		}
	}
	return nil
}

func (s *Server) RemoveContract(contract *Contract) {
	s.Contracts = slices.DeleteFunc(s.Contracts, func(c *Contract) bool {
		return c == contract
	})
}

func (s *Server) HasMessage(path paths.FilePath) bool {
	return slices.Contains(s.Messages, string(path))
}

// FileNames lists every file visible on the server, sorted and without
// duplicates.
func (s *Server) FileNames() []paths.FilePath {
	names := make([]paths.FilePath, 0, len(s.Files)+len(s.Programs)+len(s.Messages)+len(s.Contracts))
	for name := range s.Files {
		names = append(names, name)
	}
	for _, program := range s.Programs {
		names = append(names, paths.FilePath(program))
	}
	for _, message := range s.Messages {
		names = append(names, paths.FilePath(message))
	}
	for _, contract := range s.Contracts {
		names = append(names, contract.Path)
	}

	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return slices.Compact(names)
}
