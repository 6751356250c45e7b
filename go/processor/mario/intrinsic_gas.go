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
	"github.com/soprano-foundation/Aria/go/aria"
)

// IntrinsicGas computes the gas charged for a transaction before any
// byte-code executes: the envelope cost, the payload bytes, and the
// contract-creation surcharge where the rule set charges one. The function
// is deterministic and free of side effects.
func IntrinsicGas(transaction *aria.Transaction, spec aria.Spec) aria.Gas {
	gas := aria.Gas(aria.TxGas)
	if transaction.IsContractCreation() && spec.IsEip2Enabled {
		gas += aria.TxGasContractCreation
	}

	if len(transaction.Payload) > 0 {
		nonZeroBytes := aria.Gas(0)
		for _, payloadByte := range transaction.Payload {
			if payloadByte != 0 {
				nonZeroBytes++
			}
		}
		zeroBytes := aria.Gas(len(transaction.Payload)) - nonZeroBytes

		nonZeroGas := aria.Gas(aria.TxDataNonZeroGas)
		if spec.IsEip2028Enabled {
			nonZeroGas = aria.TxDataNonZeroGasEIP2028
		}

		// No overflow check for the gas computation is required: it would
		// only be triggered by a payload of more than 2^63 / 68 bytes,
		// which no real-world transaction can carry.
		gas += zeroBytes * aria.TxDataZeroGas
		gas += nonZeroBytes * nonZeroGas
	}

	return gas
}
