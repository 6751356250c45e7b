// Copyright (c) 2024 Soprano Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soprano.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package processor

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/soprano-foundation/Aria/go/aria"
	"github.com/soprano-foundation/Aria/go/processor/mario"
	"github.com/soprano-foundation/Aria/go/state/memory"
	"github.com/soprano-foundation/Aria/go/tracing"
)

// Scenario represents a test scenario for a transaction processor. A
// scenario consists of a world state before and after the operation, a
// transaction to be executed, the revision to run under, and the expected
// receipt. An optional Behavior scripts the virtual machine; without one,
// every run completes immediately without consuming gas.
type Scenario struct {
	Before      WorldState
	After       WorldState
	Revision    aria.Revision
	Block       aria.BlockHeader
	Transaction aria.Transaction
	Behavior    Behavior
	Receipt     ExpectedReceipt
}

// ExpectedReceipt lists the receipt fields scenarios verify.
type ExpectedReceipt struct {
	Status  aria.StatusCode
	GasUsed aria.Gas
	Logs    []aria.Log
}

// Behavior scripts a machine run. It may consume gas by lowering
// state.GasAvailable and mutate the world through the given providers.
type Behavior func(state *aria.EvmState, world *memory.State, storage *memory.Storage) aria.RunResult

func (s *Scenario) Run(t *testing.T, processorName string) {
	t.Helper()

	world := memory.NewState()
	storage := memory.NewStorage()
	seedSpec := aria.Spec{}
	for addr, account := range s.Before {
		world.CreateAccount(addr, account.Balance)
		world.SetNonce(addr, account.Nonce)
		if len(account.Code) > 0 {
			hash := world.UpdateCode(account.Code)
			world.UpdateCodeHash(addr, hash, seedSpec)
		}
		for key, value := range account.Storage {
			storage.SetStorage(addr, key, value)
		}
	}
	world.Commit(seedSpec)
	storage.Commit(seedSpec)

	machine := &scriptedMachine{world: world, storage: storage, behavior: s.Behavior}
	processor, err := aria.NewProcessor(processorName, aria.Services{
		State:   world,
		Storage: storage,
		Machine: machine,
		Specs:   aria.FixedSchedule(s.Revision),
		Tracer:  tracing.NopTracer{},
	})
	if err != nil {
		t.Fatalf("failed to create processor: %v", err)
	}

	block := s.Block
	priorGasUsed := block.GasUsed
	receipt := processor.Execute(&s.Transaction, &block)

	// check the receipt
	if want, got := s.Receipt.Status, receipt.Status; want != got {
		t.Errorf("unexpected status, want %v, got %v", want, got)
	}
	if want, got := s.Receipt.GasUsed, block.GasUsed-priorGasUsed; want != got {
		t.Errorf("unexpected gas usage, want %v, got %v", want, got)
	}
	if want, got := block.GasUsed, receipt.CumulativeGasUsed; want != got {
		t.Errorf("unexpected cumulative gas, want %v, got %v", want, got)
	}
	if want, got := len(s.Receipt.Logs), len(receipt.Logs); want != got {
		t.Fatalf("unexpected receipt logs: %v", receipt.Logs)
	}
	for i, want := range s.Receipt.Logs {
		got := receipt.Logs[i]
		if want.Address != got.Address ||
			!slices.Equal(want.Topics, got.Topics) ||
			!bytes.Equal(want.Data, got.Data) {
			t.Errorf("unexpected receipt log %d, want %v, got %v", i, want, got)
		}
	}
	if want, got := mario.BuildBloom(receipt.Logs), receipt.Bloom; want != got {
		t.Errorf("receipt bloom does not cover its logs")
	}

	// check the world state after the operation
	if diffs := s.diffWorldState(world, storage); len(diffs) > 0 {
		t.Errorf("unexpected world state after the operation: \n\t%v",
			strings.Join(diffs, "\n\t"))
	}
}

func (s *Scenario) diffWorldState(world *memory.State, storage *memory.Storage) []string {
	var diffs []string
	seen := map[aria.Address]bool{}
	for addr := range s.After {
		seen[addr] = true
	}
	for addr := range s.Before {
		seen[addr] = true
	}

	for addr := range seen {
		want, expected := s.After[addr]
		if !expected {
			if world.AccountExists(addr) {
				diffs = append(diffs, addr.String()+"/account should not exist")
			}
			continue
		}
		if !world.AccountExists(addr) {
			diffs = append(diffs, addr.String()+"/account is missing")
			continue
		}
		got := Account{
			Balance: world.GetBalance(addr),
			Nonce:   world.GetNonce(addr),
			Code:    world.CodeByHash(world.GetCodeHash(addr)),
		}
		gotStorage := Storage{}
		for key := range want.Storage {
			gotStorage[key] = storage.GetStorage(addr, key)
		}
		got.Storage = gotStorage
		if !want.Equal(&got) {
			diffs = append(diffs, want.Diff(addr.String()+"/", &got)...)
		}
	}
	return diffs
}

// ----------------------------------------------------------------------------

// scriptedMachine implements the aria.VirtualMachine interface by running a
// scenario-provided behavior function in place of byte-code.
type scriptedMachine struct {
	world    *memory.State
	storage  *memory.Storage
	behavior Behavior
}

func (m *scriptedMachine) Run(state *aria.EvmState, spec aria.Spec, _ *aria.TransactionTrace) (aria.RunResult, error) {
	account := state.Env.ExecutingAccount
	if !m.world.AccountExists(account) {
		m.world.CreateAccount(account, state.Env.TransferValue)
	} else {
		m.world.AddBalance(account, state.Env.TransferValue, spec)
	}

	if m.behavior == nil {
		return aria.RunResult{}, nil
	}
	return m.behavior(state, m.world, m.storage), nil
}

func (m *scriptedMachine) GetCachedCodeInfo(addr aria.Address) aria.CodeInfo {
	hash := m.world.GetCodeHash(addr)
	return aria.CodeInfo{
		Code:     m.world.CodeByHash(hash),
		CodeHash: hash,
	}
}
