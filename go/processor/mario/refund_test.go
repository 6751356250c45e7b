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
	"testing"

	"github.com/soprano-foundation/Aria/go/aria"
	"go.uber.org/mock/gomock"
)

func TestRefundGas_Arithmetic(t *testing.T) {
	sender := aria.Address{1}
	tests := map[string]struct {
		gasLimit    aria.Gas
		unspentGas  aria.Gas
		substate    aria.Substate
		wantSpent   aria.Gas
		wantCredit  aria.Value
	}{
		"no-claim": {
			gasLimit:   100_000,
			unspentGas: 40_000,
			substate:   aria.Substate{},
			wantSpent:  60_000,
			wantCredit: aria.NewValue(80_000),
		},
		"claim-below-cap": {
			gasLimit:   100_000,
			unspentGas: 40_000,
			substate:   aria.Substate{Refund: 10_000},
			wantSpent:  50_000,
			wantCredit: aria.NewValue(100_000),
		},
		"claim-capped-at-half": {
			gasLimit:   100_000,
			unspentGas: 40_000,
			substate:   aria.Substate{Refund: 50_000},
			wantSpent:  30_000,
			wantCredit: aria.NewValue(140_000),
		},
		"destroy-bounty-counts": {
			gasLimit:   100_000,
			unspentGas: 40_000,
			substate: aria.Substate{
				Refund:      1_000,
				DestroyList: []aria.Address{{7}},
			},
			wantSpent:  35_000,
			wantCredit: aria.NewValue(130_000),
		},
		"revert-forfeits-claim": {
			gasLimit:   100_000,
			unspentGas: 40_000,
			substate: aria.Substate{
				ShouldRevert: true,
				Refund:       50_000,
				DestroyList:  []aria.Address{{7}},
			},
			wantSpent:  60_000,
			wantCredit: aria.NewValue(80_000),
		},
		"all-gas-consumed": {
			gasLimit:   100_000,
			unspentGas: 0,
			substate:   aria.Substate{ShouldRevert: true},
			wantSpent:  100_000,
			wantCredit: aria.NewValue(0),
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			state := aria.NewMockStateProvider(ctrl)
			state.EXPECT().AddBalance(sender, test.wantCredit, aria.Spec{})

			transaction := &aria.Transaction{
				Sender:   &sender,
				GasLimit: test.gasLimit,
				GasPrice: aria.NewValue(2),
			}
			got := refundGas(state, transaction, test.unspentGas, test.substate, aria.Spec{})
			if got != test.wantSpent {
				t.Errorf("unexpected spent gas, want %d, got %d", test.wantSpent, got)
			}
		})
	}
}

func TestRefundGas_SpentGasNeverDropsBelowHalfTheConsumption(t *testing.T) {
	sender := aria.Address{1}
	for _, unspent := range []aria.Gas{0, 1, 10_000, 50_000, 99_999} {
		for _, claim := range []aria.Gas{0, 1, 25_000, 1 << 40} {
			ctrl := gomock.NewController(t)
			state := aria.NewMockStateProvider(ctrl)
			state.EXPECT().AddBalance(gomock.Any(), gomock.Any(), gomock.Any())

			transaction := &aria.Transaction{
				Sender:   &sender,
				GasLimit: 100_000,
				GasPrice: aria.NewValue(1),
			}
			spent := refundGas(state, transaction, unspent,
				aria.Substate{Refund: claim}, aria.Spec{})

			consumed := transaction.GasLimit - unspent
			if spent < consumed/2 || spent < consumed-claim {
				t.Errorf("refund exceeded its cap: unspent %d, claim %d, spent %d",
					unspent, claim, spent)
			}
		}
	}
}
