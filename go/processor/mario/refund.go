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

// refundGas settles the gas account of the sender after the machine run:
// the unspent gas plus the granted refund is credited back at the original
// price, and the gas actually charged to the transaction is returned. The
// refund claim is the machine's refund counter plus the destruction bounty,
// capped at half the consumed gas; a reverted execution forfeits the claim
// entirely.
func refundGas(
	state aria.StateProvider,
	transaction *aria.Transaction,
	unspentGas aria.Gas,
	substate aria.Substate,
	spec aria.Spec,
) aria.Gas {
	spentGas := transaction.GasLimit - unspentGas

	refund := aria.Gas(0)
	if !substate.ShouldRevert {
		claim := substate.Refund +
			aria.Gas(len(substate.DestroyList))*aria.SelfDestructRefundGas
		refund = spentGas / 2
		if claim < refund {
			refund = claim
		}
	}

	state.AddBalance(
		*transaction.Sender,
		transaction.GasPrice.Scale(uint64(unspentGas+refund)),
		spec,
	)

	return spentGas - refund
}
