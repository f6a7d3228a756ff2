package native

import (
	"testing"

	"github.com/shoparoo/bignum/calc"
)

func TestCalculatorCoreOps(t *testing.T) {
	c := New()

	sum, err := c.Add("170141183460469231731687303715884105727", "1")
	if err != nil {
		t.Fatal(err)
	}
	if sum != "170141183460469231731687303715884105728" {
		t.Errorf("Add overflowed int64 range incorrectly: got %s", sum)
	}

	q, r, err := c.DivQR("-7", "2")
	if err != nil {
		t.Fatal(err)
	}
	if q != "-3" || r != "-1" {
		t.Errorf("DivQR(-7,2) = (%s,%s), want (-3,-1)", q, r)
	}

	m, err := c.Mod("-7", "2")
	if err != nil {
		t.Fatal(err)
	}
	if m != "1" {
		t.Errorf("Mod(-7,2) = %s, want 1", m)
	}
}

func TestCalculatorDivRoundHalfEven(t *testing.T) {
	c := New()
	got, err := c.DivRound("1", "2", calc.HalfEven)
	if err != nil {
		t.Fatal(err)
	}
	if got != "0" {
		t.Errorf("DivRound(1,2,HalfEven) = %s, want 0", got)
	}
	got, err = c.DivRound("5", "2", calc.HalfEven)
	if err != nil {
		t.Fatal(err)
	}
	if got != "2" {
		t.Errorf("DivRound(5,2,HalfEven) = %s, want 2", got)
	}
}

func TestCalculatorModPowModInverse(t *testing.T) {
	c := New()
	got, err := c.ModPow("4", "13", "497")
	if err != nil {
		t.Fatal(err)
	}
	if got != "445" {
		t.Errorf("ModPow(4,13,497) = %s, want 445", got)
	}
	if _, err := c.ModInverse("2", "4"); err != calc.ErrNoInverse {
		t.Errorf("expected ErrNoInverse, got %v", err)
	}
}

func TestCalculatorBitwiseMatchesTwosComplementSignRules(t *testing.T) {
	c := New()
	got, err := c.And("-1", "-1")
	if err != nil {
		t.Fatal(err)
	}
	if got != "-1" {
		t.Errorf("And(-1,-1) = %s, want -1", got)
	}
	got, err = c.Not("0")
	if err != nil {
		t.Fatal(err)
	}
	if got != "-1" {
		t.Errorf("Not(0) = %s, want -1", got)
	}
}

func TestCalculatorBaseConversion(t *testing.T) {
	c := New()
	got, err := c.ToBase("255", 16)
	if err != nil {
		t.Fatal(err)
	}
	if got != "ff" {
		t.Errorf("ToBase(255,16) = %s, want ff", got)
	}
}

func TestCalculatorSqrt(t *testing.T) {
	c := New()
	got, err := c.Sqrt("2", calc.Floor)
	if err != nil {
		t.Fatal(err)
	}
	if got != "1" {
		t.Errorf("Sqrt(2,Floor) = %s, want 1", got)
	}
}
