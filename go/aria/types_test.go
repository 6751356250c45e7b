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
	"math"
	"testing"

	"github.com/holiman/uint256"
)

func TestNewValue_ArgumentsFillWordsFromLeastSignificant(t *testing.T) {
	tests := map[string]struct {
		args []uint64
		want *uint256.Int
	}{
		"empty":    {nil, uint256.NewInt(0)},
		"one":      {[]uint64{12}, uint256.NewInt(12)},
		"two":      {[]uint64{1, 2}, new(uint256.Int).SetBytes([]byte{1, 0, 0, 0, 0, 0, 0, 0, 2})},
		"max64":    {[]uint64{math.MaxUint64}, uint256.NewInt(math.MaxUint64)},
		"all-four": {[]uint64{1, 2, 3, 4}, new(uint256.Int).SetBytes([]byte{1, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 3, 0, 0, 0, 0, 0, 0, 0, 4})},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := NewValue(test.args...)
			if got.ToUint256().Cmp(test.want) != 0 {
				t.Errorf("unexpected value, want %v, got %v", test.want, got.ToUint256())
			}
		})
	}
}

func TestNewValue_TooManyArgumentsPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic for too many arguments")
		}
	}()
	NewValue(1, 2, 3, 4, 5)
}

func TestValue_AddSub(t *testing.T) {
	tests := map[string]struct {
		a, b Value
		sum  Value
	}{
		"zero":        {NewValue(), NewValue(), NewValue()},
		"small":       {NewValue(1), NewValue(2), NewValue(3)},
		"carry":       {NewValue(math.MaxUint64), NewValue(1), NewValue(1, 0)},
		"cross-words": {NewValue(1, math.MaxUint64, math.MaxUint64, math.MaxUint64), NewValue(1), NewValue(2, 0, 0, 0)},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Add(test.a, test.b); got != test.sum {
				t.Errorf("unexpected sum, want %v, got %v", test.sum, got)
			}
			if got := Sub(test.sum, test.b); got != test.a {
				t.Errorf("unexpected difference, want %v, got %v", test.a, got)
			}
		})
	}
}

func TestValue_ScaleMatchesUint256Multiplication(t *testing.T) {
	values := []Value{
		NewValue(),
		NewValue(1),
		NewValue(21_000),
		NewValue(math.MaxUint64),
		NewValue(1, 2, 3, 4),
	}
	scalars := []uint64{0, 1, 2, 21_000, math.MaxUint64}

	for _, value := range values {
		for _, scalar := range scalars {
			want := ValueFromUint256(new(uint256.Int).Mul(
				value.ToUint256(), uint256.NewInt(scalar)))
			if got := value.Scale(scalar); got != want {
				t.Errorf("%v * %d: want %v, got %v", value, scalar, want, got)
			}
		}
	}
}

func TestValue_CmpOrdersNumerically(t *testing.T) {
	small := NewValue(1)
	large := NewValue(1, 0)
	if small.Cmp(large) >= 0 {
		t.Errorf("%v should be less than %v", small, large)
	}
	if large.Cmp(small) <= 0 {
		t.Errorf("%v should be greater than %v", large, small)
	}
	if small.Cmp(small) != 0 {
		t.Errorf("%v should equal itself", small)
	}
}

func TestAddress_MarshalingRoundTrip(t *testing.T) {
	addr := Address{0x01, 0x02, 0xab}
	text, err := addr.MarshalText()
	if err != nil {
		t.Fatalf("failed to marshal address: %v", err)
	}
	var restored Address
	if err := restored.UnmarshalText(text); err != nil {
		t.Fatalf("failed to unmarshal address: %v", err)
	}
	if restored != addr {
		t.Errorf("round trip changed address: %v != %v", restored, addr)
	}
}

func TestAddress_UnmarshalingInvalidTextFails(t *testing.T) {
	tests := map[string]string{
		"missing-prefix": "0102ab",
		"odd-length":     "0x012",
		"wrong-size":     "0x0102",
		"not-hex":        "0x01xy",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			var addr Address
			if err := addr.UnmarshalText([]byte(input)); err == nil {
				t.Errorf("expected unmarshaling of %q to fail", input)
			}
		})
	}
}

func TestValue_StringIsDecimal(t *testing.T) {
	if want, got := "1000000000000000000", NewValue(1_000_000_000_000_000_000).String(); want != got {
		t.Errorf("unexpected string, want %s, got %s", want, got)
	}
}
