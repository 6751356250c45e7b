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
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/soprano-foundation/Aria/go/aria"

	"golang.org/x/crypto/sha3"
)

// State is a journal-backed in-memory implementation of the
// aria.StateProvider interface. Every mutation appends an undo entry to the
// journal; snapshots are journal positions and restoring one unwinds all
// later entries. Commit finalizes the journal, making earlier mutations
// unreachable for later restores.
type State struct {
	accounts map[aria.Address]account
	codes    map[aria.Hash]aria.Code
	undo     []func()
}

type account struct {
	balance  aria.Value
	nonce    uint64
	codeHash aria.Hash
}

// NewState creates an empty world state.
func NewState() *State {
	return &State{
		accounts: map[aria.Address]account{},
		codes:    map[aria.Hash]aria.Code{},
	}
}

func (s *State) AccountExists(addr aria.Address) bool {
	_, exists := s.accounts[addr]
	return exists
}

func (s *State) IsEmptyAccount(addr aria.Address) bool {
	account := s.accounts[addr]
	return account.balance == aria.Value{} &&
		account.nonce == 0 &&
		(account.codeHash == aria.Hash{} || account.codeHash == emptyCodeHash)
}

func (s *State) CreateAccount(addr aria.Address, balance aria.Value) {
	s.set(addr, account{balance: balance})
}

func (s *State) GetBalance(addr aria.Address) aria.Value {
	return s.accounts[addr].balance
}

func (s *State) AddBalance(addr aria.Address, value aria.Value, _ aria.Spec) {
	modified := s.accounts[addr]
	modified.balance = aria.Add(modified.balance, value)
	s.set(addr, modified)
}

func (s *State) SubBalance(addr aria.Address, value aria.Value, _ aria.Spec) {
	modified := s.accounts[addr]
	if modified.balance.Cmp(value) < 0 {
		panic(fmt.Sprintf("balance underflow for %v: %v < %v", addr, modified.balance, value))
	}
	modified.balance = aria.Sub(modified.balance, value)
	s.set(addr, modified)
}

func (s *State) GetNonce(addr aria.Address) uint64 {
	return s.accounts[addr].nonce
}

func (s *State) IncrementNonce(addr aria.Address) {
	modified := s.accounts[addr]
	modified.nonce++
	s.set(addr, modified)
}

// SetNonce overwrites the nonce of the account. Processors advance nonces
// through IncrementNonce; this is for seeding states in tests and tools.
func (s *State) SetNonce(addr aria.Address, nonce uint64) {
	modified := s.accounts[addr]
	modified.nonce = nonce
	s.set(addr, modified)
}

// UpdateCode stores the code in the content-addressed code store. The store
// is write-once and shared across snapshots; entries never need journaling.
func (s *State) UpdateCode(code aria.Code) aria.Hash {
	hash := keccak(code)
	if _, present := s.codes[hash]; !present {
		s.codes[hash] = aria.Code(bytes.Clone(code))
	}
	return hash
}

func (s *State) UpdateCodeHash(addr aria.Address, hash aria.Hash, _ aria.Spec) {
	modified := s.accounts[addr]
	modified.codeHash = hash
	s.set(addr, modified)
}

func (s *State) GetCodeHash(addr aria.Address) aria.Hash {
	return s.accounts[addr].codeHash
}

// CodeByHash resolves a code image previously stored with UpdateCode.
func (s *State) CodeByHash(hash aria.Hash) aria.Code {
	return s.codes[hash]
}

func (s *State) DeleteAccount(addr aria.Address) {
	original, existed := s.accounts[addr]
	if !existed {
		return
	}
	delete(s.accounts, addr)
	s.undo = append(s.undo, func() { s.accounts[addr] = original })
}

func (s *State) TakeSnapshot() aria.Snapshot {
	return aria.Snapshot(len(s.undo))
}

func (s *State) Restore(snapshot aria.Snapshot) {
	if int(snapshot) > len(s.undo) {
		panic(fmt.Sprintf("unknown snapshot handle: %d", snapshot))
	}
	for len(s.undo) > int(snapshot) {
		s.undo[len(s.undo)-1]()
		s.undo = s.undo[:len(s.undo)-1]
	}
}

// Commit finalizes the journal. Under EIP-158 rules, accounts that ended up
// empty are removed from the state.
func (s *State) Commit(spec aria.Spec) {
	if spec.IsEip158Enabled {
		for addr := range s.accounts {
			if s.IsEmptyAccount(addr) {
				delete(s.accounts, addr)
			}
		}
	}
	s.undo = s.undo[:0]
}

// StateRoot hashes the current account set into a single summary value. The
// encoding is a stand-in for trie persistence: accounts are folded in
// address order as address, balance, nonce, and code hash.
func (s *State) StateRoot() aria.Hash {
	addresses := make([]aria.Address, 0, len(s.accounts))
	for addr := range s.accounts {
		addresses = append(addresses, addr)
	}
	sort.Slice(addresses, func(i, j int) bool {
		return bytes.Compare(addresses[i][:], addresses[j][:]) < 0
	})

	hasher := sha3.NewLegacyKeccak256()
	var nonce [8]byte
	for _, addr := range addresses {
		account := s.accounts[addr]
		binary.BigEndian.PutUint64(nonce[:], account.nonce)
		hasher.Write(addr[:])
		hasher.Write(account.balance[:])
		hasher.Write(nonce[:])
		hasher.Write(account.codeHash[:])
	}

	root := aria.Hash{}
	hasher.Sum(root[0:0])
	return root
}

func (s *State) set(addr aria.Address, modified account) {
	original, existed := s.accounts[addr]
	s.accounts[addr] = modified
	s.undo = append(s.undo, func() {
		if existed {
			s.accounts[addr] = original
		} else {
			delete(s.accounts, addr)
		}
	})
}

var emptyCodeHash = keccak(nil)

func keccak(data []byte) aria.Hash {
	res := aria.Hash{}
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)
	hasher.Sum(res[0:0])
	return res
}
