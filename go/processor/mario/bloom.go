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

// BuildBloom derives the 2048-bit filter over the given log trail. Each log
// contributes its logger address and every topic; per item, three bit
// positions are taken from the first six bytes of its Keccak-256 hash,
// reduced modulo 2048. The filter is purely additive, so the bloom of a
// union of logs is the bitwise or of the individual blooms. An empty trail
// yields the all-zero bloom.
func BuildBloom(logs []aria.Log) aria.Bloom {
	var bloom aria.Bloom
	for _, log := range logs {
		addToBloom(&bloom, log.Address[:])
		for _, topic := range log.Topics {
			addToBloom(&bloom, topic[:])
		}
	}
	return bloom
}

func addToBloom(bloom *aria.Bloom, item []byte) {
	hash := keccak(item)
	for i := 0; i < 6; i += 2 {
		bit := (uint(hash[i])<<8 | uint(hash[i+1])) & 0x7ff
		bloom[len(bloom)-1-int(bit/8)] |= 1 << (bit % 8)
	}
}
