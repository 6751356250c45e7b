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

//go:generate mockgen -source spec.go -destination spec_mock.go -package aria

const (
	// TxGas is the base cost of any transaction envelope.
	TxGas = 21_000
	// TxGasContractCreation is the surcharge for contract-creation
	// transactions, charged since Homestead.
	TxGasContractCreation = 32_000
	// TxDataZeroGas is the cost of a zero byte in the payload.
	TxDataZeroGas = 4
	// TxDataNonZeroGas is the cost of a non-zero byte in the payload.
	TxDataNonZeroGas = 68
	// TxDataNonZeroGasEIP2028 is the reduced non-zero byte cost since Istanbul.
	TxDataNonZeroGasEIP2028 = 16

	// CodeDepositGasPerByte is charged per byte of code deposited by a
	// contract-creation transaction.
	CodeDepositGasPerByte = 200
	// SelfDestructRefundGas is credited per account destroyed in a transaction.
	SelfDestructRefundGas = 24_000
	// MaxCodeSize is the deployed-code size cap introduced by EIP-170.
	MaxCodeSize = 0x6000
)

// Spec is the set of hard-fork rules active for a single transaction. It is
// derived from the block number by a SpecProvider and immutable thereafter.
type Spec struct {
	// IsEip2Enabled activates the contract-creation surcharge and makes an
	// unaffordable code deposit fatal to the creating transaction.
	IsEip2Enabled bool
	// IsEip158Enabled activates empty-account cleanup on commit.
	IsEip158Enabled bool
	// IsEip170Enabled activates the deployed-code size cap of MaxCodeSize.
	IsEip170Enabled bool
	// IsEip198Enabled extends the precompiled contracts from 1-4 to 1-8.
	IsEip198Enabled bool
	// IsEip658Enabled switches receipts from post-state roots to status codes.
	IsEip658Enabled bool
	// IsEip2028Enabled reduces the non-zero payload byte cost to 16.
	IsEip2028Enabled bool
}

// IsPrecompile reports whether the given address hosts a precompiled
// contract under this rule set.
func (s Spec) IsPrecompile(recipient Address) bool {
	for i := 0; i < 19; i++ {
		if recipient[i] != 0 {
			return false
		}
	}
	last := s.numPrecompiles()
	return 1 <= recipient[19] && recipient[19] <= last
}

func (s Spec) numPrecompiles() byte {
	if s.IsEip198Enabled {
		return 8
	}
	return 4
}

// SpecProvider resolves the hard-fork rule set applicable at a block number.
type SpecProvider interface {
	GetSpec(blockNumber int64) Spec
}
