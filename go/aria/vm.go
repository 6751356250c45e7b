// Copyright (c) 2024 Soprano Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soprano.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package aria

import "fmt"

//go:generate mockgen -source vm.go -destination vm_mock.go -package aria

// VirtualMachine is a component capable of executing contract byte-code.
// A full client pairs it with a transaction processor, which handles gas
// fees, nonces, contract creation, and receipt construction. Processors
// treat the machine as a black box bound by the contract below.
type VirtualMachine interface {
	// Run executes the code referenced by the environment held in the given
	// state. The machine consumes gas from state.GasAvailable and reports
	// the remaining gas through it on every exit path. Code-level failures
	// (out of gas, invalid instruction, stack violations) are reported as a
	// fault in the result, not as an error; a revert is a successful run
	// whose substate carries the ShouldRevert flag. The error return is
	// reserved for machine-internal problems; in that case the result is
	// undefined and the caller is expected to treat the condition as a
	// programmer error. The machine credits the environment's TransferValue
	// to the executing account when entering the outermost frame.
	Run(state *EvmState, spec Spec, trace *TransactionTrace) (RunResult, error)

	// GetCachedCodeInfo resolves the code deployed at the given address,
	// caching the resolution across calls.
	GetCachedCodeInfo(Address) CodeInfo
}

// EvmState is the scoped handle owning the gas of a single machine run. It
// is created by the processor before entering the machine and remains valid
// until the surrounding transaction completes.
type EvmState struct {
	GasAvailable Gas
	Env          ExecutionEnvironment
	Type         ExecutionType
}

// ExecutionEnvironment is the per-transaction input handed to the machine.
type ExecutionEnvironment struct {
	Value      Value
	Sender     Address
	Originator Address
	GasPrice   Value
	InputData  Data
	CodeInfo   CodeInfo

	// ExecutingAccount is the account whose context the code runs in: the
	// message recipient, or the address of a freshly created contract.
	ExecutingAccount Address

	// TransferValue is the amount credited to the executing account on frame
	// entry. It always equals Value; a divergence indicates a corrupted
	// environment and processors refuse to run it.
	TransferValue Value

	Block *BlockHeader
}

// ExecutionType distinguishes the three entry modes of a transaction-level
// machine run.
type ExecutionType int

const (
	// DirectCall is a plain message call to an account.
	DirectCall ExecutionType = iota
	// DirectCreate runs the init code of a contract-creation transaction.
	DirectCreate
	// DirectPrecompile invokes a precompiled contract.
	DirectPrecompile
)

func (t ExecutionType) String() string {
	switch t {
	case DirectCall:
		return "call"
	case DirectCreate:
		return "direct_create"
	case DirectPrecompile:
		return "direct_precompile"
	default:
		return "unknown"
	}
}

// RunResult summarizes the outcome of a machine run. Exactly one of the
// following holds: Fault is FaultNone and the run completed (possibly with
// Substate.ShouldRevert set), or Fault names the failure that aborted it.
type RunResult struct {
	Output   Data
	Substate Substate
	Fault    FaultKind
}

// FaultKind enumerates the code-level failures a machine run can end in.
type FaultKind int

const (
	FaultNone FaultKind = iota
	FaultOutOfGas
	FaultInvalidInstruction
	FaultStackOverflow
	FaultStackUnderflow
	FaultGasOverflow
)

func (k FaultKind) String() string {
	switch k {
	case FaultNone:
		return "none"
	case FaultOutOfGas:
		return "out_of_gas"
	case FaultInvalidInstruction:
		return "invalid_instruction"
	case FaultStackOverflow:
		return "stack_overflow"
	case FaultStackUnderflow:
		return "stack_underflow"
	case FaultGasOverflow:
		return "gas_overflow"
	default:
		return fmt.Sprintf("FaultKind(%d)", k)
	}
}

// Substate is the accumulated observable effect of a machine run: the log
// trail, the set of accounts marked for destruction, the gas the machine
// elects to refund, and the revert flag.
type Substate struct {
	ShouldRevert bool
	Logs         []Log

	// DestroyList holds the destroyed addresses in insertion order without
	// duplicates.
	DestroyList []Address

	Refund Gas
}

// MarkDestroyed adds the address to the destroy list unless already present.
func (s *Substate) MarkDestroyed(addr Address) {
	for _, present := range s.DestroyList {
		if present == addr {
			return
		}
	}
	s.DestroyList = append(s.DestroyList, addr)
}

// CodeInfo is the resolved code image a machine run executes. For
// precompiled contracts the image is a sentinel carrying the address bytes.
type CodeInfo struct {
	Code       Code
	CodeHash   Hash
	Precompile bool
}

// PrecompileCodeInfo builds the sentinel code image identifying the given
// precompiled contract.
func PrecompileCodeInfo(addr Address) CodeInfo {
	return CodeInfo{Code: Code(addr[:]), Precompile: true}
}

// Log is the type summarizing a log message emitted as a side effect of a
// contract execution.
type Log struct {
	Address Address
	Topics  []Hash
	Data    Data
}

// Data represents the input or output of contract invocations.
type Data []byte

// Gas represents the type used to represent the Gas values.
type Gas int64
