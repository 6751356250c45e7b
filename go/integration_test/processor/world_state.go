// Copyright (c) 2024 Soprano Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soprano.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package processor

import (
	"bytes"
	"fmt"
	"maps"

	"github.com/soprano-foundation/Aria/go/aria"
)

// ----------------------------------------------------------------------------
// WorldState
// ----------------------------------------------------------------------------

// WorldState provides a utility type to model the world state of a chain for
// testing. It is mainly intended to be used to define pre/post states of
// test scenarios for transaction processors.
type WorldState map[aria.Address]Account

func (s WorldState) Clone() WorldState {
	if s == nil {
		return nil
	}
	res := make(WorldState, len(s))
	for k, v := range s {
		res[k] = v.Clone()
	}
	return res
}

// ----------------------------------------------------------------------------
// Account
// ----------------------------------------------------------------------------

// Account represents an account in the world state. The default account is
// an empty account.
type Account struct {
	Balance aria.Value
	Nonce   uint64
	Code    aria.Code
	Storage Storage
}

func (a *Account) Equal(other *Account) bool {
	return a.Balance == other.Balance &&
		a.Nonce == other.Nonce &&
		bytes.Equal(a.Code, other.Code) &&
		a.Storage.Equal(other.Storage)
}

func (a *Account) Clone() Account {
	return Account{
		Balance: a.Balance,
		Nonce:   a.Nonce,
		Code:    append(aria.Code(nil), a.Code...),
		Storage: a.Storage.Clone(),
	}
}

func (a *Account) Diff(prefix string, other *Account) []string {
	var res []string
	if a.Balance != other.Balance {
		res = append(res, fmt.Sprintf("different balance: %v != %v", a.Balance, other.Balance))
	}
	if a.Nonce != other.Nonce {
		res = append(res, fmt.Sprintf("different nonce: %v != %v", a.Nonce, other.Nonce))
	}
	if !bytes.Equal(a.Code, other.Code) {
		res = append(res, fmt.Sprintf("different code: 0x%x != 0x%x", a.Code, other.Code))
	}
	res = append(res, a.Storage.Diff(prefix+"Storage/", other.Storage)...)
	for i, diff := range res {
		res[i] = prefix + diff
	}
	return res
}

// ----------------------------------------------------------------------------
// Storage
// ----------------------------------------------------------------------------

// Storage represents the storage of an account in the world state.
// Zero-valued entries are ignored.
type Storage map[aria.Key]aria.Word

func (s Storage) Equal(other Storage) bool {
	for k, v := range s {
		if other[k] != v {
			return false
		}
	}
	for k, v := range other {
		if s[k] != v {
			return false
		}
	}
	return true
}

func (s Storage) Clone() Storage {
	return maps.Clone(s)
}

func (s Storage) Diff(prefix string, other Storage) []string {
	var diffs []string
	for k, v := range s {
		if other[k] != v {
			diffs = append(diffs, fmt.Sprintf("%sdifferent value for key %v: %v != %v", prefix, k, v, other[k]))
		}
	}
	for k, v := range other {
		if _, overlap := s[k]; !overlap && v != (aria.Word{}) {
			diffs = append(diffs, fmt.Sprintf("%sdifferent value for key %v: %v != %v", prefix, k, aria.Word{}, v))
		}
	}
	return diffs
}
