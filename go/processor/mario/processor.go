// Copyright (c) 2024 Soprano Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soprano.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package mario

import (
	"fmt"
	"math"

	"github.com/soprano-foundation/Aria/go/aria"

	// geth dependencies
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"
)

func init() {
	aria.RegisterProcessorFactory("mario", newProcessor)
}

func newProcessor(services aria.Services) aria.Processor {
	return &processor{
		state:   services.State,
		storage: services.Storage,
		machine: services.Machine,
		specs:   services.Specs,
		tracer:  services.Tracer,
	}
}

type processor struct {
	state   aria.StateProvider
	storage aria.StorageProvider
	machine aria.VirtualMachine
	specs   aria.SpecProvider
	tracer  aria.Tracer
}

func (p *processor) Execute(transaction *aria.Transaction, block *aria.BlockHeader) aria.Receipt {
	spec := p.specs.GetSpec(block.Number)

	// Signature recovery failed upstream; nobody can be charged.
	if transaction.Sender == nil {
		return p.nullReceipt(transaction.Recipient, block, spec)
	}
	sender := *transaction.Sender

	intrinsicGas := IntrinsicGas(transaction, spec)
	if transaction.GasLimit < intrinsicGas {
		return p.nullReceipt(transaction.Recipient, block, spec)
	}
	if transaction.GasLimit > block.GasLimit-block.GasUsed {
		return p.nullReceipt(transaction.Recipient, block, spec)
	}

	// Upstream validators create missing sender accounts before checking
	// them; the processor mirrors that for symmetry. The balance and nonce
	// checks below read the then-current values.
	if !p.state.AccountExists(sender) {
		p.state.CreateAccount(sender, aria.Value{})
	}

	cost := new(uint256.Int).Mul(
		transaction.GasPrice.ToUint256(),
		uint256.NewInt(uint64(intrinsicGas)))
	cost, overflow := cost.AddOverflow(cost, transaction.Value.ToUint256())
	if overflow || p.state.GetBalance(sender).ToUint256().Cmp(cost) < 0 {
		return p.nullReceipt(transaction.Recipient, block, spec)
	}
	if p.state.GetNonce(sender) != transaction.Nonce {
		return p.nullReceipt(transaction.Recipient, block, spec)
	}

	// Admission: the nonce increment and the gas pre-debit survive any
	// later revert, so they are committed before snapshots are taken.
	p.state.IncrementNonce(sender)
	p.state.SubBalance(sender, transaction.GasPrice.Scale(uint64(transaction.GasLimit)), spec)
	p.state.Commit(spec)

	unspentGas := transaction.GasLimit - intrinsicGas

	recipient := resolveRecipient(transaction, sender)

	// if transaction.IsContractCreation() &&
	//	p.state.AccountExists(recipient) && !p.state.IsEmptyAccount(recipient) {
	//	return p.nullReceipt(transaction.Recipient, block, spec)
	// }
	// TODO: enable the collision check above once the receipt semantics for
	// creations landing on occupied addresses are settled.

	snapshot := p.state.TakeSnapshot()
	storageSnapshot := p.storage.TakeSnapshot()

	p.state.SubBalance(sender, transaction.Value, spec)

	environment, executionType := p.buildEnvironment(transaction, block, sender, recipient, spec)
	if environment.TransferValue != environment.Value {
		// A diverging transfer value would charge the sender twice.
		panic("execution environment with split transfer value is not supported")
	}

	var trace *aria.TransactionTrace
	if p.tracer.IsEnabled() {
		trace = &aria.TransactionTrace{}
	}

	evmState := &aria.EvmState{
		GasAvailable: unspentGas,
		Env:          environment,
		Type:         executionType,
	}
	result, err := p.machine.Run(evmState, spec, trace)
	if err != nil {
		panic(fmt.Sprintf("virtual machine failure: %v", err))
	}

	unspentGas = evmState.GasAvailable
	substate := result.Substate
	faulted := result.Fault != aria.FaultNone

	if !faulted && !substate.ShouldRevert && transaction.IsContractCreation() {
		depositCost := codeDepositCost(len(result.Output), spec)
		switch {
		case unspentGas >= depositCost:
			codeHash := p.state.UpdateCode(aria.Code(result.Output))
			p.state.UpdateCodeHash(recipient, codeHash, spec)
			unspentGas -= depositCost
		case spec.IsEip2Enabled:
			// An unaffordable deposit aborts the whole creation.
			faulted = true
		default:
			// Pre-Homestead the contract survives with empty code and the
			// deposit is not charged.
		}
	}

	var logs []aria.Log
	if faulted {
		p.storage.Restore(storageSnapshot)
		p.state.Restore(snapshot)
		substate = aria.Substate{ShouldRevert: true}
		unspentGas = 0
	} else if substate.ShouldRevert {
		p.storage.Restore(storageSnapshot)
		p.state.Restore(snapshot)
		substate.Logs = nil
		substate.DestroyList = nil
	} else {
		logs = append(logs, substate.Logs...)
	}

	spentGas := refundGas(p.state, transaction, unspentGas, substate, spec)
	block.GasUsed += spentGas

	// The destroy count already contributed to the refund above; only now
	// are the accounts actually removed.
	destroyed := substate.DestroyList
	for _, addr := range destroyed {
		p.state.DeleteAccount(addr)
	}

	if !containsAddress(destroyed, block.Beneficiary) {
		fee := transaction.GasPrice.Scale(uint64(spentGas))
		if !p.state.AccountExists(block.Beneficiary) {
			p.state.CreateAccount(block.Beneficiary, fee)
		} else {
			p.state.AddBalance(block.Beneficiary, fee, spec)
		}
	}

	p.storage.Commit(spec)
	p.state.Commit(spec)

	if trace != nil {
		trace.Gas = spentGas
		trace.ReturnValue = result.Output
		trace.Failed = substate.ShouldRevert
		p.tracer.SaveTrace(transaction.Hash, trace)
	}

	status := aria.StatusSuccess
	if substate.ShouldRevert {
		status = aria.StatusFailure
	}
	return buildReceipt(p.state, status, block.GasUsed, logs, &recipient, spec)
}

// nullReceipt is the canonical rejection receipt: the transaction never
// entered the machine and contributes no gas to the block.
func (p *processor) nullReceipt(recipient *aria.Address, block *aria.BlockHeader, spec aria.Spec) aria.Receipt {
	return buildReceipt(p.state, aria.StatusFailure, block.GasUsed, nil, recipient, spec)
}

// resolveRecipient yields the account the transaction acts on. Contract
// creations derive it from the sender and the pre-admission nonce.
func resolveRecipient(transaction *aria.Transaction, sender aria.Address) aria.Address {
	if transaction.IsContractCreation() {
		return createContractAddress(sender, transaction.Nonce)
	}
	return *transaction.Recipient
}

func (p *processor) buildEnvironment(
	transaction *aria.Transaction,
	block *aria.BlockHeader,
	sender aria.Address,
	recipient aria.Address,
	spec aria.Spec,
) (aria.ExecutionEnvironment, aria.ExecutionType) {
	var executionType aria.ExecutionType
	var codeInfo aria.CodeInfo
	switch {
	case spec.IsPrecompile(recipient):
		executionType = aria.DirectPrecompile
		codeInfo = aria.PrecompileCodeInfo(recipient)
	case transaction.IsContractCreation():
		executionType = aria.DirectCreate
		codeInfo = aria.CodeInfo{
			Code:     aria.Code(transaction.Payload),
			CodeHash: keccak(transaction.Payload),
		}
	default:
		executionType = aria.DirectCall
		codeInfo = p.machine.GetCachedCodeInfo(recipient)
	}

	environment := aria.ExecutionEnvironment{
		Value:            transaction.Value,
		TransferValue:    transaction.Value,
		Sender:           sender,
		Originator:       sender,
		GasPrice:         transaction.GasPrice,
		InputData:        transaction.Payload,
		CodeInfo:         codeInfo,
		ExecutingAccount: recipient,
		Block:            block,
	}
	return environment, executionType
}

// codeDepositCost yields the gas charged for installing the given number of
// output bytes as contract code. Outputs over the EIP-170 cap are priced
// unaffordable.
func codeDepositCost(outputLength int, spec aria.Spec) aria.Gas {
	if spec.IsEip170Enabled && outputLength > aria.MaxCodeSize {
		return math.MaxInt64
	}
	return aria.Gas(outputLength) * aria.CodeDepositGasPerByte
}

func containsAddress(addresses []aria.Address, addr aria.Address) bool {
	for _, a := range addresses {
		if a == addr {
			return true
		}
	}
	return false
}

func createContractAddress(sender aria.Address, nonce uint64) aria.Address {
	return aria.Address(crypto.CreateAddress(common.Address(sender), nonce))
}

func keccak(data []byte) aria.Hash {
	res := aria.Hash{}
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)
	hasher.Sum(res[0:0])
	return res
}
