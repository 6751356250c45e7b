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

//go:generate mockgen -source world_state.go -destination world_state_mock.go -package aria

// StateProvider is an interface to access and manipulate the account portion
// of the world state. Accounts carry a balance, a nonce, and a code hash.
// All modifications are journaled; a snapshot marks a position in the journal
// and restoring a snapshot rolls back every later entry. Commit finalizes the
// journal under the rules of the given chain spec.
type StateProvider interface {
	AccountExists(Address) bool

	// IsEmptyAccount reports whether the account has zero balance, zero
	// nonce, and no code. Only meaningful for existing accounts.
	IsEmptyAccount(Address) bool

	CreateAccount(Address, Value)

	GetBalance(Address) Value
	AddBalance(Address, Value, Spec)
	SubBalance(Address, Value, Spec)

	GetNonce(Address) uint64
	IncrementNonce(Address)

	// UpdateCode stores the given code in the code store and returns its hash.
	// The code is not yet bound to any account; use UpdateCodeHash for that.
	UpdateCode(Code) Hash
	UpdateCodeHash(Address, Hash, Spec)
	GetCodeHash(Address) Hash

	DeleteAccount(Address)

	TakeSnapshot() Snapshot
	Restore(Snapshot)
	Commit(Spec)

	// StateRoot returns the hash summarizing the current world state.
	StateRoot() Hash
}

// StorageProvider is an interface to access and manipulate the per-account
// slot storage of the world state. It shares the snapshot discipline of the
// StateProvider but maintains its own independent journal; transaction
// processors snapshot and restore both providers in concert. The per-slot
// operations are consumed by virtual machines, not by processors.
type StorageProvider interface {
	GetStorage(Address, Key) Word
	SetStorage(Address, Key, Word)

	TakeSnapshot() Snapshot
	Restore(Snapshot)
	Commit(Spec)
}

// Address represents the 160-bit (20 bytes) address of an account.
type Address [20]byte

// Key represents the 256-bit (32 bytes) key of a storage slot.
type Key [32]byte

// Word represents an arbitrary 256-bit (32 byte) word of slot storage.
type Word [32]byte

// Value represents an amount of chain currency, typically wei.
type Value [32]byte

// Hash represents the 256-bit (32 bytes) hash of a code, a block, a topic
// or similar sequence of cryptographic summary information.
type Hash [32]byte

// Code represents the byte-code of a contract.
type Code []byte

// Bloom is the 2048-bit filter derived from the log trail of a transaction.
type Bloom [256]byte

// Snapshot is an opaque handle into the journal of a state or storage
// provider. Handles are only valid for the scope of a single transaction
// execution.
type Snapshot int
