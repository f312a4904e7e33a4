package core

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		out  float64
		want error
	}{
		{"1", 1, nil},
		{"10.50", 10.5, nil},
		{" 2.25 ", 2.25, nil},
		{"-4", -4, nil},
		{"1e2", 100, nil},
		{"", 0, ErrMissingField},
		{"   ", 0, ErrMissingField},
		{"abc", 0, ErrNotNumeric},
		{"1,5", 0, ErrNotNumeric},
		{"1.2.3", 0, ErrNotNumeric},
		{"NaN", 0, ErrNotNumeric},
		{"inf", 0, ErrNotNumeric},
		{"0x1p4", 0, ErrNotNumeric},
		{"-0X10", 0, ErrNotNumeric},
		{"0x", 0, ErrNotNumeric},
		{"0.5", 0.5, nil},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.want == nil {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %v, got %v (err=%v)", tc.in, tc.out, got, err)
			}
			continue
		}
		if !errors.Is(err, tc.want) {
			t.Fatalf("%q expected %v, got %v", tc.in, tc.want, err)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		0:      "0.00",
		5:      "5.00",
		10.5:   "10.50",
		35.75:  "35.75",
		1.005:  "1.00",
		2.675:  "2.67",
		-2.5:   "-2.50",
		1234.4: "1234.40",
	}
	for in, want := range cases {
		if got := FormatAmount(in); got != want {
			t.Fatalf("FormatAmount(%v) = %q, want %q", in, got, want)
		}
	}
	if got := FormatTotal("₹", 35.75); got != "₹35.75" {
		t.Fatalf("unexpected total %q", got)
	}
}

func TestSum(t *testing.T) {
	if got := Sum(nil); got != 0 {
		t.Fatalf("empty sum should be 0, got %v", got)
	}
	got := Sum([]Expense{{Amount: 10.50}, {Amount: 20.25}, {Amount: 5.00}})
	if got != 35.75 {
		t.Fatalf("expected 35.75, got %v", got)
	}
	if got := SumAmounts([]float64{0.1, 0.2}); got != 0.3 {
		t.Fatalf("expected 0.3, got %v", got)
	}
}
