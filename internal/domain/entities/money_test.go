package entities

import "testing"

func TestFeeAmount(t *testing.T) {
	cases := map[float64]float64{
		100:    103,
		0.01:   0.01,
		10.5:   10.82,
		33.33:  34.33,
		999.99: 1029.99,
		1:      1.03,
	}
	for in, want := range cases {
		if got := FeeAmount(in); got != want {
			t.Fatalf("FeeAmount(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestCommission(t *testing.T) {
	cases := map[float64]float64{
		100:  1,
		250:  2.5,
		12.3: 0.123,
	}
	for in, want := range cases {
		if got := Commission(in); got != want {
			t.Fatalf("Commission(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestSum(t *testing.T) {
	if got := Sum(0.1, 0.2); got != 0.3 {
		t.Fatalf("expected 0.3, got %v", got)
	}
	if got := Sum(); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}
