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

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestRevision_String(t *testing.T) {
	tests := map[Revision]string{
		R00_Frontier:       "Frontier",
		R01_Homestead:      "Homestead",
		R04_SpuriousDragon: "SpuriousDragon",
		R05_Byzantium:      "Byzantium",
		R07_Istanbul:       "Istanbul",
		Revision(42):       "Revision(42)",
	}
	for revision, want := range tests {
		if got := revision.String(); got != want {
			t.Errorf("unexpected name, want %s, got %s", want, got)
		}
	}
}

func TestRevision_JsonRoundTrip(t *testing.T) {
	for r := Revision(0); int(r) < numRevisions; r++ {
		encoded, err := json.Marshal(r)
		if err != nil {
			t.Fatalf("failed to marshal %v: %v", r, err)
		}
		var restored Revision
		if err := json.Unmarshal(encoded, &restored); err != nil {
			t.Fatalf("failed to unmarshal %s: %v", encoded, err)
		}
		if restored != r {
			t.Errorf("round trip changed revision: %v != %v", restored, r)
		}
	}
}

func TestRevision_UnknownRevisionsFailToMarshal(t *testing.T) {
	if _, err := json.Marshal(Revision(42)); err == nil {
		t.Errorf("expected marshaling of unknown revision to fail")
	}
}

func TestRevision_SpecFlagsAreCumulative(t *testing.T) {
	tests := map[Revision]Spec{
		R00_Frontier: {},
		R01_Homestead: {
			IsEip2Enabled: true,
		},
		R04_SpuriousDragon: {
			IsEip2Enabled:   true,
			IsEip158Enabled: true,
			IsEip170Enabled: true,
		},
		R05_Byzantium: {
			IsEip2Enabled:   true,
			IsEip158Enabled: true,
			IsEip170Enabled: true,
			IsEip198Enabled: true,
			IsEip658Enabled: true,
		},
		R07_Istanbul: {
			IsEip2Enabled:    true,
			IsEip158Enabled:  true,
			IsEip170Enabled:  true,
			IsEip198Enabled:  true,
			IsEip658Enabled:  true,
			IsEip2028Enabled: true,
		},
	}
	for revision, want := range tests {
		t.Run(revision.String(), func(t *testing.T) {
			if got := revision.Spec(); got != want {
				t.Errorf("unexpected spec, want %+v, got %+v", want, got)
			}
		})
	}
}

func TestRevisionSchedule_MainNetForkHeights(t *testing.T) {
	schedule := MainNetSchedule()
	tests := []struct {
		block int64
		want  Revision
	}{
		{0, R00_Frontier},
		{1_149_999, R00_Frontier},
		{1_150_000, R01_Homestead},
		{2_675_000, R04_SpuriousDragon},
		{4_370_000, R05_Byzantium},
		{9_068_999, R05_Byzantium},
		{9_069_000, R07_Istanbul},
		{20_000_000, R07_Istanbul},
	}
	for _, test := range tests {
		t.Run(fmt.Sprintf("block-%d", test.block), func(t *testing.T) {
			if got := schedule.GetRevision(test.block); got != test.want {
				t.Errorf("unexpected revision at block %d, want %v, got %v", test.block, test.want, got)
			}
		})
	}
}

func TestFixedSchedule_PinsEveryBlock(t *testing.T) {
	for r := Revision(0); int(r) < numRevisions; r++ {
		schedule := FixedSchedule(r)
		for _, block := range []int64{0, 1, 1_000_000, maxBlockNumber - 1} {
			if got := schedule.GetRevision(block); got != r {
				t.Errorf("unexpected revision at block %d, want %v, got %v", block, r, got)
			}
		}
	}
}
