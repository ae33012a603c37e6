// Package yaml loads world definitions written in YAML.
package yaml

import (
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/bnema/netrun/internal/adapters/player"
	"github.com/bnema/netrun/internal/adapters/world/memory"
	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/paths"
	json "github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v5"
	yamlv3 "gopkg.in/yaml.v3"
)

const schemaURL = "world.schema.json"

//go:embed schema.json
var schemaJSON []byte

//go:embed default_world.yaml
var defaultWorld []byte

// World is a loaded world: the server registry and the player seed.
type World struct {
	Servers *memory.Registry
	Player  player.Seed
}

type worldFile struct {
	Player  playerFile   `yaml:"player"`
	Servers []serverFile `yaml:"servers"`
}

type playerFile struct {
	Hostname        string  `yaml:"hostname"`
	Money           float64 `yaml:"money"`
	HackingExp      float64 `yaml:"hacking_exp"`
	IntelligenceExp float64 `yaml:"intelligence_exp"`
	BitNode         int     `yaml:"bitnode"`
}

type serverFile struct {
	Hostname             string            `yaml:"hostname"`
	IP                   string            `yaml:"ip"`
	Organization         string            `yaml:"organization"`
	Category             string            `yaml:"category"`
	Purchased            bool              `yaml:"purchased"`
	Admin                bool              `yaml:"admin"`
	Backdoor             bool              `yaml:"backdoor"`
	RAM                  float64           `yaml:"ram"`
	Cores                int               `yaml:"cores"`
	RequiredHackingSkill int               `yaml:"required_hacking_skill"`
	PortsRequired        int               `yaml:"ports_required"`
	Security             securityFile      `yaml:"security"`
	Money                moneyFile         `yaml:"money"`
	Programs             []string          `yaml:"programs"`
	Messages             []string          `yaml:"messages"`
	Files                map[string]string `yaml:"files"`
	Neighbors            []string          `yaml:"neighbors"`
	Contracts            []contractFile    `yaml:"contracts"`
}

type securityFile struct {
	Current float64 `yaml:"current"`
	Min     float64 `yaml:"min"`
	Base    float64 `yaml:"base"`
}

type moneyFile struct {
	Available float64 `yaml:"available"`
	Max       float64 `yaml:"max"`
	Growth    float64 `yaml:"growth"`
}

type contractFile struct {
	Path        string      `yaml:"path"`
	Type        string      `yaml:"type"`
	Description string      `yaml:"description"`
	Answer      string      `yaml:"answer"`
	Difficulty  float64     `yaml:"difficulty"`
	MaxTries    int         `yaml:"max_tries"`
	Reward      *rewardFile `yaml:"reward"`
}

type rewardFile struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name"`
}

// Default loads the world embedded in the binary.
func Default() (*World, error) {
	return Parse(defaultWorld)
}

// Load reads a world file, or the embedded world when path is empty.
func Load(path string) (*World, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read world %s: %w", path, err)
	}
	world, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("load world %s: %w", path, err)
	}
	return world, nil
}

// Parse validates raw against the world schema and builds the registry.
func Parse(raw []byte) (*World, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}

	var file worldFile
	if err := yamlv3.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode world: %w", err)
	}

	servers := make([]*domain.Server, 0, len(file.Servers))
	for _, sf := range file.Servers {
		server, err := sf.toDomain()
		if err != nil {
			return nil, err
		}
		servers = append(servers, server)
	}
	symmetrize(servers)

	registry, err := memory.NewRegistry(servers...)
	if err != nil {
		return nil, err
	}
	if err := registry.Validate(); err != nil {
		return nil, err
	}

	return &World{
		Servers: registry,
		Player: player.Seed{
			Hostname:        file.Player.Hostname,
			Money:           file.Player.Money,
			HackingExp:      file.Player.HackingExp,
			IntelligenceExp: file.Player.IntelligenceExp,
			BitNode:         file.Player.BitNode,
		},
	}, nil
}

// Validate checks raw YAML against the embedded JSON schema.
func Validate(raw []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := yamlv3.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode world: %w", err)
	}
	// Round-trip through JSON so numbers and maps take the shapes the
	// validator expects.
	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode world: %w", err)
	}
	var instance any
	if err := json.Unmarshal(encoded, &instance); err != nil {
		return fmt.Errorf("encode world: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidWorld, err)
	}
	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add world schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile world schema: %w", err)
	}
	return schema, nil
}

func (sf serverFile) toDomain() (*domain.Server, error) {
	category, ok := domain.ParseServerCategory(sf.Category)
	if !ok {
		return nil, fmt.Errorf("server %q: %w: category %q", sf.Hostname, domain.ErrInvalidWorld, sf.Category)
	}

	cores := sf.Cores
	if cores == 0 {
		cores = 1
	}
	security := sf.Security
	if security.Base == 0 {
		security.Base = security.Current
	}
	if security.Min == 0 && security.Current > 0 {
		security.Min = max(1, math.Round(security.Current/3))
	}
	moneyMax := sf.Money.Max
	if moneyMax == 0 {
		moneyMax = sf.Money.Available * 25
	}

	files := make(map[paths.FilePath]string, len(sf.Files))
	for name, content := range sf.Files {
		path, ok := paths.ResolveFilePath(name, paths.Root)
		if !ok {
			return nil, fmt.Errorf("server %q: %w: file %q", sf.Hostname, domain.ErrInvalidWorld, name)
		}
		files[path] = content
	}

	contracts := make([]*domain.Contract, 0, len(sf.Contracts))
	for _, cf := range sf.Contracts {
		contracts = append(contracts, cf.toDomain())
	}

	return &domain.Server{
		Hostname:             sf.Hostname,
		IP:                   sf.IP,
		OrganizationName:     sf.Organization,
		Category:             category,
		HasAdminRights:       sf.Admin,
		PurchasedByPlayer:    sf.Purchased,
		BackdoorInstalled:    sf.Backdoor,
		HackDifficulty:       security.Current,
		MinDifficulty:        security.Min,
		BaseDifficulty:       security.Base,
		MoneyAvailable:       sf.Money.Available,
		MoneyMax:             moneyMax,
		ServerGrowth:         sf.Money.Growth,
		RequiredHackingSkill: sf.RequiredHackingSkill,
		NumOpenPortsRequired: sf.PortsRequired,
		MaxRAM:               sf.RAM,
		CPUCores:             cores,
		Neighbors:            append([]string(nil), sf.Neighbors...),
		Files:                files,
		Programs:             append([]string(nil), sf.Programs...),
		Messages:             append([]string(nil), sf.Messages...),
		Contracts:            contracts,
	}, nil
}

func (cf contractFile) toDomain() *domain.Contract {
	contract := &domain.Contract{
		Path:        paths.FilePath(strings.TrimPrefix(cf.Path, "/")),
		Type:        cf.Type,
		Description: cf.Description,
		Answer:      cf.Answer,
		Difficulty:  cf.Difficulty,
		MaxTries:    cf.MaxTries,
	}
	if contract.Difficulty == 0 {
		contract.Difficulty = 1
	}
	if cf.Reward != nil {
		contract.Reward = &domain.ContractReward{Kind: domain.RewardKind(cf.Reward.Kind), Name: cf.Reward.Name}
	}
	return contract
}

// symmetrize adds the reverse of every neighbor link whose target exists.
func symmetrize(servers []*domain.Server) {
	byHost := make(map[string]*domain.Server, len(servers))
	for _, s := range servers {
		byHost[s.Hostname] = s
	}
	for _, s := range servers {
		for _, n := range s.Neighbors {
			other, ok := byHost[n]
			if !ok || slices.Contains(other.Neighbors, s.Hostname) {
				continue
			}
			other.Neighbors = append(other.Neighbors, s.Hostname)
		}
	}
}
