package application

import (
	"fmt"

	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/paths"
)

// RunContract opens the prompt for the contract at path on the current server.
// The prompt runs on its own goroutine; its result is applied back on the
// terminal goroutine through the scheduler. Without a scheduler the prompt
// blocks the caller.
func (t *Terminal) RunContract(path paths.FilePath) {
	if t.contractOpen {
		t.Error("There's already a Coding Contract in Progress")
		return
	}

	server := t.deps.Player.CurrentServer()
	contract := server.GetContract(path)
	if contract == nil {
		t.Error("No such contract")
		return
	}

	t.contractOpen = true

	if t.deps.Prompter == nil {
		t.finishContract(server, contract, domain.ContractCancelled)
		return
	}

	ctx := t.ctx
	snapshot := *contract
	if t.deps.Scheduler == nil {
		t.finishContract(server, contract, t.deps.Prompter.Prompt(ctx, snapshot))
		return
	}

	go func() {
		result := t.deps.Prompter.Prompt(ctx, snapshot)
		t.deps.Scheduler.Schedule(func() {
			t.finishContract(server, contract, result)
		})
	}()
}

func (t *Terminal) finishContract(server *domain.Server, contract *domain.Contract, result domain.ContractResult) {
	defer func() {
		t.contractOpen = false
	}()

	if server.GetContract(contract.Path) != contract {
		t.Error("Contract no longer exists (Was it solved by a script?)")
		return
	}

	switch result {
	case domain.ContractSuccess:
		if contract.Reward != nil {
			reward := t.deps.Player.GainCodingContractReward(contract.Reward, contract.Difficulty)
			t.Print("Contract SUCCESS - " + reward)
		}
		server.RemoveContract(contract)
	case domain.ContractFailure:
		contract.Tries++
		if contract.Tries >= contract.MaxNumTries() {
			t.Error("Contract FAILED - Contract is now self-destructing")
			server.RemoveContract(contract)
		} else {
			t.Error(fmt.Sprintf("Contract FAILED - %d tries remaining", contract.MaxNumTries()-contract.Tries))
		}
	default:
		t.Print("Contract cancelled")
	}
}
