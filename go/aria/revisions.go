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
	"regexp"
)

// Revision is an enumeration for hard-fork revisions. The numeric tags
// reflect the position of the fork in the main-net history.
type Revision int

const (
	R00_Frontier Revision = iota
	R01_Homestead
	R04_SpuriousDragon
	R05_Byzantium
	R07_Istanbul
	numRevisions int = iota
)

func (r Revision) String() string {
	switch r {
	case R00_Frontier:
		return "Frontier"
	case R01_Homestead:
		return "Homestead"
	case R04_SpuriousDragon:
		return "SpuriousDragon"
	case R05_Byzantium:
		return "Byzantium"
	case R07_Istanbul:
		return "Istanbul"
	default:
		return fmt.Sprintf("Revision(%d)", r)
	}
}

func (r Revision) MarshalJSON() ([]byte, error) {
	revString := r.String()
	reg := regexp.MustCompile(`Revision\([0-9]+\)`)
	if reg.MatchString(revString) {
		return nil, &json.UnsupportedValueError{}
	}
	return json.Marshal(revString)
}

func (r *Revision) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}
	var revision Revision

	switch s {
	case "Frontier":
		revision = R00_Frontier
	case "Homestead":
		revision = R01_Homestead
	case "SpuriousDragon":
		revision = R04_SpuriousDragon
	case "Byzantium":
		revision = R05_Byzantium
	case "Istanbul":
		revision = R07_Istanbul
	default:
		return &json.InvalidUnmarshalError{}
	}

	*r = revision
	return nil
}

// Spec returns the rule set a transaction processed under this revision is
// subject to. Each revision extends the flags of its predecessors.
func (r Revision) Spec() Spec {
	spec := Spec{}
	if r >= R01_Homestead {
		spec.IsEip2Enabled = true
	}
	if r >= R04_SpuriousDragon {
		spec.IsEip158Enabled = true
		spec.IsEip170Enabled = true
	}
	if r >= R05_Byzantium {
		spec.IsEip198Enabled = true
		spec.IsEip658Enabled = true
	}
	if r >= R07_Istanbul {
		spec.IsEip2028Enabled = true
	}
	return spec
}

// RevisionSchedule is a SpecProvider mapping block heights to revisions.
// A zero height activates the corresponding revision from genesis; the zero
// value of the schedule thus runs every block under the latest revision.
type RevisionSchedule struct {
	HomesteadBlock      int64
	SpuriousDragonBlock int64
	ByzantiumBlock      int64
	IstanbulBlock       int64
}

// MainNetSchedule returns the revision schedule of the Ethereum main net.
func MainNetSchedule() RevisionSchedule {
	return RevisionSchedule{
		HomesteadBlock:      1_150_000,
		SpuriousDragonBlock: 2_675_000,
		ByzantiumBlock:      4_370_000,
		IstanbulBlock:       9_069_000,
	}
}

// FixedSchedule returns a schedule running every block under the given
// revision. Mostly useful for testing and replay tools.
func FixedSchedule(revision Revision) RevisionSchedule {
	schedule := RevisionSchedule{
		HomesteadBlock:      maxBlockNumber,
		SpuriousDragonBlock: maxBlockNumber,
		ByzantiumBlock:      maxBlockNumber,
		IstanbulBlock:       maxBlockNumber,
	}
	if revision >= R01_Homestead {
		schedule.HomesteadBlock = 0
	}
	if revision >= R04_SpuriousDragon {
		schedule.SpuriousDragonBlock = 0
	}
	if revision >= R05_Byzantium {
		schedule.ByzantiumBlock = 0
	}
	if revision >= R07_Istanbul {
		schedule.IstanbulBlock = 0
	}
	return schedule
}

const maxBlockNumber = int64(^uint64(0) >> 1)

// GetRevision resolves the revision active at the given block number.
func (s RevisionSchedule) GetRevision(blockNumber int64) Revision {
	revision := R00_Frontier
	if blockNumber >= s.HomesteadBlock {
		revision = R01_Homestead
	}
	if blockNumber >= s.SpuriousDragonBlock {
		revision = R04_SpuriousDragon
	}
	if blockNumber >= s.ByzantiumBlock {
		revision = R05_Byzantium
	}
	if blockNumber >= s.IstanbulBlock {
		revision = R07_Istanbul
	}
	return revision
}

func (s RevisionSchedule) GetSpec(blockNumber int64) Spec {
	return s.GetRevision(blockNumber).Spec()
}
