// Copyright (c) 2024 Soprano Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soprano.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package nullvm

import (
	"fmt"

	"github.com/soprano-foundation/Aria/go/aria"

	lru "github.com/hashicorp/golang-lru/v2"
)

func init() {
	aria.RegisterVirtualMachineFactory("null", newVirtualMachine)
}

// CodeSource resolves deployed code images by their hash. The memory state
// provider implements it; machines without a source report empty images.
type CodeSource interface {
	CodeByHash(aria.Hash) aria.Code
}

// Config parameterizes the null machine.
type Config struct {
	// State is the provider the machine credits transfers against.
	State aria.StateProvider
	// Codes optionally resolves code images for GetCachedCodeInfo.
	Codes CodeSource
	// CodeCacheSize is the maximum number of cached code infos. If zero, a
	// default size is used.
	CodeCacheSize int
}

// The null machine executes every code image as an immediate stop: the run
// succeeds, produces no output, no logs, and leaves all gas unconsumed. It
// still honors the transaction-level machine contract by crediting the
// transfer value to the executing account. Precompile invocations are not
// supported and fault. The machine is mainly useful for driving processors
// through transfer and creation flows without a byte-code interpreter.
type machine struct {
	state aria.StateProvider
	codes CodeSource
	cache *lru.Cache[aria.Hash, aria.CodeInfo]
}

func newVirtualMachine(config any) (aria.VirtualMachine, error) {
	c, ok := config.(Config)
	if !ok {
		return nil, fmt.Errorf("null machine requires a nullvm.Config, got %T", config)
	}
	return NewMachine(c)
}

// NewMachine creates a null machine with the given configuration.
func NewMachine(config Config) (aria.VirtualMachine, error) {
	if config.State == nil {
		return nil, fmt.Errorf("null machine requires a state provider")
	}
	if config.CodeCacheSize == 0 {
		config.CodeCacheSize = 1024
	}
	cache, err := lru.New[aria.Hash, aria.CodeInfo](config.CodeCacheSize)
	if err != nil {
		return nil, err
	}
	return &machine{
		state: config.State,
		codes: config.Codes,
		cache: cache,
	}, nil
}

func (m *machine) Run(state *aria.EvmState, spec aria.Spec, _ *aria.TransactionTrace) (aria.RunResult, error) {
	if state.Type == aria.DirectPrecompile {
		state.GasAvailable = 0
		return aria.RunResult{Fault: aria.FaultInvalidInstruction}, nil
	}

	account := state.Env.ExecutingAccount
	if !m.state.AccountExists(account) {
		m.state.CreateAccount(account, state.Env.TransferValue)
	} else {
		m.state.AddBalance(account, state.Env.TransferValue, spec)
	}

	return aria.RunResult{}, nil
}

func (m *machine) GetCachedCodeInfo(addr aria.Address) aria.CodeInfo {
	hash := m.state.GetCodeHash(addr)
	if info, found := m.cache.Get(hash); found {
		return info
	}

	info := aria.CodeInfo{CodeHash: hash}
	if m.codes != nil {
		info.Code = m.codes.CodeByHash(hash)
	}
	m.cache.Add(hash, info)
	return info
}
