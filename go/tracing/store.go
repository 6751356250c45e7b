// Copyright (c) 2024 Soprano Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soprano.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package tracing

import (
	"sync"

	"github.com/soprano-foundation/Aria/go/aria"
)

// Store is an in-memory aria.Tracer keeping the traces of all executed
// transactions keyed by their hash. It is safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	traces map[aria.Hash]*aria.TransactionTrace
}

// NewStore creates an enabled, empty trace store.
func NewStore() *Store {
	return &Store{
		traces: map[aria.Hash]*aria.TransactionTrace{},
	}
}

func (s *Store) IsEnabled() bool {
	return true
}

func (s *Store) SaveTrace(txHash aria.Hash, trace *aria.TransactionTrace) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.traces[txHash] = trace
}

// GetTrace returns the trace recorded for the given transaction, or nil.
func (s *Store) GetTrace(txHash aria.Hash) *aria.TransactionTrace {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.traces[txHash]
}

// NopTracer is the disabled tracer used when no tracing is requested.
type NopTracer struct{}

func (NopTracer) IsEnabled() bool {
	return false
}

func (NopTracer) SaveTrace(aria.Hash, *aria.TransactionTrace) {
	// nothing to record
}
