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

//go:generate mockgen -source processor.go -destination processor_mock.go -package aria

// Processor is an interface for a component capable of executing
// transactions. Implementations apply individual transactions against the
// world state to progress the chain. In particular, they handle the charging
// of gas fees, the checking of nonces, the invocation of the virtual
// machine, the creation of new contracts, and the construction of receipts.
// A processor never fails a call for a transaction-level problem; callers
// always receive a well-formed receipt.
type Processor interface {
	// Execute applies the transaction in the context of the given block
	// header, incrementing the header's GasUsed by the gas the transaction
	// consumed.
	Execute(transaction *Transaction, block *BlockHeader) Receipt
}

// Services bundles the collaborators a transaction processor consumes. The
// state and storage providers and the block header are owned by the caller;
// processors mutate them through their interfaces only and retain no
// references across calls.
type Services struct {
	State   StateProvider
	Storage StorageProvider
	Machine VirtualMachine
	Specs   SpecProvider
	Tracer  Tracer
}

// Transaction summarizes the parameters of a transaction to be executed on a
// chain. Instances are immutable inputs; signature recovery happens upstream.
type Transaction struct {
	// Sender is the account paying for the execution, recovered from the
	// signature upstream. It is nil if recovery failed.
	Sender *Address

	// Recipient is the receiver of a message call, nil if a new contract is
	// to be created. For creations the Payload carries the init code.
	Recipient *Address

	Nonce    uint64
	Payload  Data
	Value    Value
	GasPrice Value
	GasLimit Gas
	Hash     Hash
}

// IsContractCreation reports whether the transaction creates a new contract.
func (t *Transaction) IsContractCreation() bool {
	return t.Recipient == nil
}

// BlockHeader carries the block context a transaction executes in. The
// processor increments GasUsed; all other fields are read-only. The header
// is borrowed from the caller for the duration of a single Execute call.
type BlockHeader struct {
	Number      int64
	Beneficiary Address
	GasLimit    Gas
	GasUsed     Gas
	Time        int64
}

// StatusCode is the outcome marker of a transaction receipt.
type StatusCode byte

const (
	StatusFailure StatusCode = 0
	StatusSuccess StatusCode = 1
)

func (s StatusCode) String() string {
	if s == StatusSuccess {
		return "success"
	}
	return "failure"
}

// Receipt summarizes the observable result of the execution of a
// transaction.
type Receipt struct {
	Status StatusCode

	// CumulativeGasUsed is the block's running gas counter after this
	// transaction.
	CumulativeGasUsed Gas

	Logs  []Log
	Bloom Bloom

	// Recipient is the account the transaction acted on; for contract
	// creations it is the address of the created contract.
	Recipient *Address

	// PostStateRoot carries the world-state hash after the transaction.
	// It is only populated for rule sets predating status-code receipts.
	PostStateRoot *Hash
}
