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

// buildReceipt assembles the observable record of a transaction. Receipts
// always carry a log array (possibly empty) and its bloom; a post-state
// root is only included for rule sets predating status-code receipts.
func buildReceipt(
	state aria.StateProvider,
	status aria.StatusCode,
	cumulativeGasUsed aria.Gas,
	logs []aria.Log,
	recipient *aria.Address,
	spec aria.Spec,
) aria.Receipt {
	if logs == nil {
		logs = []aria.Log{}
	}
	receipt := aria.Receipt{
		Status:            status,
		CumulativeGasUsed: cumulativeGasUsed,
		Logs:              logs,
		Bloom:             BuildBloom(logs),
		Recipient:         recipient,
	}
	if !spec.IsEip658Enabled {
		root := state.StateRoot()
		receipt.PostStateRoot = &root
	}
	return receipt
}
