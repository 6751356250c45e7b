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
)

func TestIntrinsicGas_Costs(t *testing.T) {
	recipient := aria.Address{2}
	tests := map[string]struct {
		recipient *aria.Address
		payload   aria.Data
		spec      aria.Spec
		want      aria.Gas
	}{
		"plain-transfer": {
			recipient: &recipient,
			want:      21_000,
		},
		"zero-bytes": {
			recipient: &recipient,
			payload:   aria.Data{0, 0, 0},
			want:      21_000 + 3*4,
		},
		"non-zero-bytes": {
			recipient: &recipient,
			payload:   aria.Data{1, 2, 3},
			want:      21_000 + 3*68,
		},
		"mixed-bytes": {
			recipient: &recipient,
			payload:   aria.Data{0, 1, 0, 2},
			want:      21_000 + 2*4 + 2*68,
		},
		"non-zero-bytes-istanbul": {
			recipient: &recipient,
			payload:   aria.Data{1, 2, 3},
			spec:      aria.Spec{IsEip2028Enabled: true},
			want:      21_000 + 3*16,
		},
		"creation-frontier": {
			want: 21_000,
		},
		"creation-homestead": {
			spec: aria.Spec{IsEip2Enabled: true},
			want: 21_000 + 32_000,
		},
		"creation-with-init-code": {
			payload: aria.Data{0x60, 0x00},
			spec:    aria.Spec{IsEip2Enabled: true},
			want:    21_000 + 32_000 + 68 + 4,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			transaction := &aria.Transaction{
				Recipient: test.recipient,
				Payload:   test.payload,
			}
			if got := IntrinsicGas(transaction, test.spec); got != test.want {
				t.Errorf("unexpected intrinsic gas, want %d, got %d", test.want, got)
			}
		})
	}
}

func TestIntrinsicGas_IsDeterministic(t *testing.T) {
	transaction := &aria.Transaction{
		Payload: aria.Data{0, 1, 2, 0, 3},
	}
	spec := aria.R07_Istanbul.Spec()
	first := IntrinsicGas(transaction, spec)
	for i := 0; i < 10; i++ {
		if got := IntrinsicGas(transaction, spec); got != first {
			t.Fatalf("intrinsic gas changed between calls: %d != %d", got, first)
		}
	}
}
