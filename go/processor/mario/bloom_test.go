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

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"pgregory.net/rand"
)

func TestBuildBloom_EmptyTrailYieldsZeroBloom(t *testing.T) {
	if got := BuildBloom(nil); got != (aria.Bloom{}) {
		t.Errorf("empty log trail must produce the all-zero bloom")
	}
	if got := BuildBloom([]aria.Log{}); got != (aria.Bloom{}) {
		t.Errorf("empty log trail must produce the all-zero bloom")
	}
}

func TestBuildBloom_SingleLogSetsThreeBitsPerItem(t *testing.T) {
	log := aria.Log{
		Address: aria.Address{0xab},
		Topics:  []aria.Hash{{0x01}, {0x02}},
	}
	bloom := BuildBloom([]aria.Log{log})

	ones := 0
	for _, b := range bloom {
		for ; b != 0; b &= b - 1 {
			ones++
		}
	}
	// three items, up to three bits each, minus possible collisions
	if ones == 0 || ones > 9 {
		t.Errorf("unexpected number of bloom bits: %d", ones)
	}
}

func TestBuildBloom_MatchesReferenceImplementation(t *testing.T) {
	rnd := rand.New(0)
	for i := 0; i < 100; i++ {
		logs := randomLogs(rnd, int(rnd.Uint64n(5)))
		want := referenceBloom(logs)
		if got := BuildBloom(logs); got != want {
			t.Fatalf("bloom deviates from the reference, want %v, got %v", want, got)
		}
	}
}

func TestBuildBloom_IsMonotonicUnderUnion(t *testing.T) {
	rnd := rand.New(42)
	for i := 0; i < 100; i++ {
		logs := randomLogs(rnd, 1+int(rnd.Uint64n(5)))
		combined := BuildBloom(logs)
		for _, log := range logs {
			single := BuildBloom([]aria.Log{log})
			for j := range single {
				if combined[j]&single[j] != single[j] {
					t.Fatalf("bloom of %d logs misses bits of entry %v", len(logs), log)
				}
			}
		}
	}
}

func randomLogs(rnd *rand.Rand, count int) []aria.Log {
	logs := make([]aria.Log, count)
	for i := range logs {
		var log aria.Log
		rnd.Read(log.Address[:])
		topics := make([]aria.Hash, rnd.Uint64n(4))
		for j := range topics {
			rnd.Read(topics[j][:])
		}
		log.Topics = topics
		data := make([]byte, rnd.Uint64n(32))
		rnd.Read(data)
		log.Data = data
		logs[i] = log
	}
	return logs
}

// referenceBloom computes the expected filter using the go-ethereum types.
func referenceBloom(logs []aria.Log) aria.Bloom {
	converted := make([]*types.Log, len(logs))
	for i, log := range logs {
		topics := make([]common.Hash, len(log.Topics))
		for j, topic := range log.Topics {
			topics[j] = common.Hash(topic)
		}
		converted[i] = &types.Log{
			Address: common.Address(log.Address),
			Topics:  topics,
			Data:    log.Data,
		}
	}
	return aria.Bloom(types.LogsBloom(converted))
}
