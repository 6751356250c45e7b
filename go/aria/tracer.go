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

//go:generate mockgen -source tracer.go -destination tracer_mock.go -package aria

// Tracer observes transaction executions. Processors allocate a trace
// container only when tracing is enabled and hand the populated trace over
// once the transaction completed.
type Tracer interface {
	IsEnabled() bool
	SaveTrace(txHash Hash, trace *TransactionTrace)
}

// TransactionTrace is the container a processor fills for a traced
// transaction. Machines may record additional detail while running.
type TransactionTrace struct {
	Gas         Gas
	ReturnValue Data
	Failed      bool
}
