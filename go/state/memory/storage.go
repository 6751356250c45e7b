// Copyright (c) 2024 Soprano Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soprano.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package memory

import (
	"fmt"

	"github.com/soprano-foundation/Aria/go/aria"
)

// Storage is a journal-backed in-memory implementation of the
// aria.StorageProvider interface. It keeps its own journal, independent of
// any State instance, so processors can snapshot and restore the two
// providers in concert without interference.
type Storage struct {
	slots map[slotKey]aria.Word
	undo  []func()
}

type slotKey struct {
	addr aria.Address
	key  aria.Key
}

// NewStorage creates an empty slot storage.
func NewStorage() *Storage {
	return &Storage{
		slots: map[slotKey]aria.Word{},
	}
}

func (s *Storage) GetStorage(addr aria.Address, key aria.Key) aria.Word {
	return s.slots[slotKey{addr, key}]
}

func (s *Storage) SetStorage(addr aria.Address, key aria.Key, value aria.Word) {
	slot := slotKey{addr, key}
	original, existed := s.slots[slot]
	s.slots[slot] = value
	s.undo = append(s.undo, func() {
		if existed {
			s.slots[slot] = original
		} else {
			delete(s.slots, slot)
		}
	})
}

func (s *Storage) TakeSnapshot() aria.Snapshot {
	return aria.Snapshot(len(s.undo))
}

func (s *Storage) Restore(snapshot aria.Snapshot) {
	if int(snapshot) > len(s.undo) {
		panic(fmt.Sprintf("unknown snapshot handle: %d", snapshot))
	}
	for len(s.undo) > int(snapshot) {
		s.undo[len(s.undo)-1]()
		s.undo = s.undo[:len(s.undo)-1]
	}
}

func (s *Storage) Commit(aria.Spec) {
	s.undo = s.undo[:0]
}
