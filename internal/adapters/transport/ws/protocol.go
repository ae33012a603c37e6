package ws

import (
	"github.com/bnema/netrun/internal/adapters/recordjson"
	"github.com/goccy/go-json"
)

const ProtocolVersion = 1

const (
	TypeHello   = "hello"
	TypeCommand = "command"
	TypeAnswer  = "answer"
	TypeCancel  = "cancel"

	TypeWelcome = "welcome"
	TypeRecord  = "record"
	TypeState   = "state"
	TypePrompt  = "prompt"
)

type baseMsg struct {
	Type string `json:"type"`
}

type HelloMsg struct {
	Type            string `json:"type"`
	ProtocolVersion int    `json:"protocol_version"`
}

type CommandMsg struct {
	Type string `json:"type"`
	Line string `json:"line"`
}

type AnswerMsg struct {
	Type   string `json:"type"`
	Answer string `json:"answer"`
}

type WelcomeMsg struct {
	Type            string              `json:"type"`
	ProtocolVersion int                 `json:"protocol_version"`
	Session         string              `json:"session"`
	Version         string              `json:"version"`
	Records         []recordjson.Record `json:"records"`
}

type RecordMsg struct {
	Type   string            `json:"type"`
	Record recordjson.Record `json:"record"`
}

type ActionState struct {
	Kind     string  `json:"kind"`
	Hostname string  `json:"hostname"`
	Progress float64 `json:"progress"`
}

type StateMsg struct {
	Type         string       `json:"type"`
	Hostname     string       `json:"hostname"`
	Cwd          string       `json:"cwd"`
	Action       *ActionState `json:"action,omitempty"`
	ContractOpen bool         `json:"contract_open"`
}

type PromptMsg struct {
	Type           string `json:"type"`
	Path           string `json:"path"`
	ContractType   string `json:"contract_type"`
	Description    string `json:"description,omitempty"`
	TriesRemaining int    `json:"tries_remaining"`
}

func decodeBase(b []byte) (baseMsg, error) {
	var base baseMsg
	err := json.Unmarshal(b, &base)
	return base, err
}
