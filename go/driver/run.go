// Copyright (c) 2024 Soprano Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soprano.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/soprano-foundation/Aria/go/aria"
	"github.com/soprano-foundation/Aria/go/state/memory"
	"github.com/soprano-foundation/Aria/go/tracing"
	"github.com/soprano-foundation/Aria/go/vm/nullvm"

	// processors available to the driver
	_ "github.com/soprano-foundation/Aria/go/processor/mario"

	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"
)

var RunCmd = cli.Command{
	Action:    doRun,
	Name:      "run",
	Usage:     "Run a transaction scenario against a fresh world state",
	ArgsUsage: "<scenario.json>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "processor",
			Usage: "the transaction processor to run",
			Value: "mario",
		},
		&cli.StringFlag{
			Name:  "vm",
			Usage: "the virtual machine implementation to run",
			Value: "null",
		},
		&cli.BoolFlag{
			Name:  "trace",
			Usage: "collect and print the transaction trace",
		},
	},
}

// scenario is the on-disk description of a single transaction execution: a
// world state, a block context, and the transaction to apply.
type scenario struct {
	Revision    aria.Revision                 `json:"revision"`
	State       map[aria.Address]accountInput `json:"state"`
	Block       blockInput                    `json:"block"`
	Transaction transactionInput              `json:"transaction"`
}

type accountInput struct {
	Balance aria.Value             `json:"balance"`
	Nonce   uint64                 `json:"nonce"`
	Code    aria.Code              `json:"code,omitempty"`
	Storage map[aria.Key]aria.Word `json:"storage,omitempty"`
}

type blockInput struct {
	Number      int64        `json:"number"`
	Beneficiary aria.Address `json:"beneficiary"`
	GasLimit    aria.Gas     `json:"gasLimit"`
	GasUsed     aria.Gas     `json:"gasUsed"`
	Time        int64        `json:"time"`
}

type transactionInput struct {
	Sender    *aria.Address `json:"sender"`
	Recipient *aria.Address `json:"recipient"`
	Nonce     uint64        `json:"nonce"`
	Payload   aria.Data     `json:"payload,omitempty"`
	Value     aria.Value    `json:"value"`
	GasPrice  aria.Value    `json:"gasPrice"`
	GasLimit  aria.Gas      `json:"gasLimit"`
	Hash      aria.Hash     `json:"hash"`
}

func doRun(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("expected a single scenario file as argument")
	}

	input, err := os.ReadFile(context.Args().Get(0))
	if err != nil {
		return fmt.Errorf("failed to read scenario: %w", err)
	}
	var scenario scenario
	if err := json.Unmarshal(input, &scenario); err != nil {
		return fmt.Errorf("failed to parse scenario: %w", err)
	}

	world := memory.NewState()
	storage := memory.NewStorage()
	for addr, account := range scenario.State {
		world.CreateAccount(addr, account.Balance)
		world.SetNonce(addr, account.Nonce)
		if len(account.Code) > 0 {
			hash := world.UpdateCode(account.Code)
			world.UpdateCodeHash(addr, hash, aria.Spec{})
		}
		for key, value := range account.Storage {
			storage.SetStorage(addr, key, value)
		}
	}
	world.Commit(aria.Spec{})
	storage.Commit(aria.Spec{})

	machine, err := aria.NewVirtualMachine(context.String("vm"), nullvm.Config{
		State: world,
		Codes: world,
	})
	if err != nil {
		return fmt.Errorf("failed to create virtual machine: %w", err)
	}

	var tracer aria.Tracer = tracing.NopTracer{}
	var traces *tracing.Store
	if context.Bool("trace") {
		traces = tracing.NewStore()
		tracer = traces
	}

	processor, err := aria.NewProcessor(context.String("processor"), aria.Services{
		State:   world,
		Storage: storage,
		Machine: machine,
		Specs:   aria.FixedSchedule(scenario.Revision),
		Tracer:  tracer,
	})
	if err != nil {
		return fmt.Errorf("failed to create processor: %w", err)
	}

	block := aria.BlockHeader{
		Number:      scenario.Block.Number,
		Beneficiary: scenario.Block.Beneficiary,
		GasLimit:    scenario.Block.GasLimit,
		GasUsed:     scenario.Block.GasUsed,
		Time:        scenario.Block.Time,
	}
	transaction := aria.Transaction{
		Sender:    scenario.Transaction.Sender,
		Recipient: scenario.Transaction.Recipient,
		Nonce:     scenario.Transaction.Nonce,
		Payload:   scenario.Transaction.Payload,
		Value:     scenario.Transaction.Value,
		GasPrice:  scenario.Transaction.GasPrice,
		GasLimit:  scenario.Transaction.GasLimit,
		Hash:      scenario.Transaction.Hash,
	}

	priorGasUsed := block.GasUsed
	receipt := processor.Execute(&transaction, &block)

	encoded, err := json.MarshalIndent(receipt, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode receipt: %w", err)
	}
	fmt.Printf("%s\n", encoded)
	fmt.Printf("gas used: %sgas\n",
		unitconv.FormatPrefix(float64(block.GasUsed-priorGasUsed), unitconv.SI, 2))

	if traces != nil {
		if trace := traces.GetTrace(transaction.Hash); trace != nil {
			fmt.Printf("trace: gas=%d failed=%t return=0x%x\n",
				trace.Gas, trace.Failed, trace.ReturnValue)
		}
	}
	return nil
}
