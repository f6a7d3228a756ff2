package portable

import (
	"testing"

	"github.com/shoparoo/bignum/calc"
)

func TestCalculatorArithmetic(t *testing.T) {
	c := New()

	tests := []struct {
		op       string
		a, b     string
		want     string
	}{
		{"add", "123456789012345678901234567890", "1", "123456789012345678901234567891"},
		{"add", "-5", "5", "0"},
		{"sub", "5", "8", "-3"},
		{"mul", "999999999999999999", "999999999999999999", "999999999999999998000000000000000001"},
		{"mul", "-2", "3", "-6"},
	}
	for _, tc := range tests {
		var got string
		var err error
		switch tc.op {
		case "add":
			got, err = c.Add(tc.a, tc.b)
		case "sub":
			got, err = c.Sub(tc.a, tc.b)
		case "mul":
			got, err = c.Mul(tc.a, tc.b)
		}
		if err != nil {
			t.Fatalf("%s(%s,%s): unexpected error: %v", tc.op, tc.a, tc.b, err)
		}
		if got != tc.want {
			t.Errorf("%s(%s,%s) = %s, want %s", tc.op, tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCalculatorDivQR(t *testing.T) {
	c := New()
	q, r, err := c.DivQR("-7", "2")
	if err != nil {
		t.Fatal(err)
	}
	if q != "-3" || r != "-1" {
		t.Errorf("DivQR(-7,2) = (%s,%s), want (-3,-1)", q, r)
	}
}

func TestCalculatorMod(t *testing.T) {
	c := New()
	r, err := c.Mod("-7", "2")
	if err != nil {
		t.Fatal(err)
	}
	if r != "1" {
		t.Errorf("Mod(-7,2) = %s, want 1", r)
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
	got, err = c.DivRound("3", "2", calc.HalfEven)
	if err != nil {
		t.Fatal(err)
	}
	if got != "2" {
		t.Errorf("DivRound(3,2,HalfEven) = %s, want 2", got)
	}
}

func TestCalculatorDivRoundUnnecessary(t *testing.T) {
	c := New()
	if _, err := c.DivRound("1", "3", calc.Unnecessary); err != calc.ErrRoundingNeeded {
		t.Errorf("expected ErrRoundingNeeded, got %v", err)
	}
	got, err := c.DivRound("6", "3", calc.Unnecessary)
	if err != nil {
		t.Fatal(err)
	}
	if got != "2" {
		t.Errorf("DivRound(6,3,Unnecessary) = %s, want 2", got)
	}
}

func TestCalculatorSqrt(t *testing.T) {
	c := New()
	got, err := c.Sqrt("1000000", calc.Down)
	if err != nil {
		t.Fatal(err)
	}
	if got != "1000" {
		t.Errorf("Sqrt(1000000) = %s, want 1000", got)
	}
	got, err = c.Sqrt("2", calc.Floor)
	if err != nil {
		t.Fatal(err)
	}
	if got != "1" {
		t.Errorf("Sqrt(2,Floor) = %s, want 1", got)
	}
}

func TestCalculatorGCDLCM(t *testing.T) {
	c := New()
	g, err := c.GCD("48", "18")
	if err != nil {
		t.Fatal(err)
	}
	if g != "6" {
		t.Errorf("GCD(48,18) = %s, want 6", g)
	}
	l, err := c.LCM("4", "6")
	if err != nil {
		t.Fatal(err)
	}
	if l != "12" {
		t.Errorf("LCM(4,6) = %s, want 12", l)
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
	inv, err := c.ModInverse("3", "11")
	if err != nil {
		t.Fatal(err)
	}
	if inv != "4" {
		t.Errorf("ModInverse(3,11) = %s, want 4", inv)
	}
	if _, err := c.ModInverse("2", "4"); err != calc.ErrNoInverse {
		t.Errorf("expected ErrNoInverse, got %v", err)
	}
}

func TestCalculatorBitwise(t *testing.T) {
	c := New()
	got, err := c.And("12", "10")
	if err != nil {
		t.Fatal(err)
	}
	if got != "8" {
		t.Errorf("And(12,10) = %s, want 8", got)
	}
	got, err = c.Or("12", "10")
	if err != nil {
		t.Fatal(err)
	}
	if got != "14" {
		t.Errorf("Or(12,10) = %s, want 14", got)
	}
	got, err = c.Xor("12", "10")
	if err != nil {
		t.Fatal(err)
	}
	if got != "6" {
		t.Errorf("Xor(12,10) = %s, want 6", got)
	}
	got, err = c.Not("0")
	if err != nil {
		t.Fatal(err)
	}
	if got != "-1" {
		t.Errorf("Not(0) = %s, want -1", got)
	}
	got, err = c.And("-1", "-1")
	if err != nil {
		t.Fatal(err)
	}
	if got != "-1" {
		t.Errorf("And(-1,-1) = %s, want -1", got)
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
	got, err = c.FromBase("ff", 16)
	if err != nil {
		t.Fatal(err)
	}
	if got != "255" {
		t.Errorf("FromBase(ff,16) = %s, want 255", got)
	}
}

func TestCalculatorPow(t *testing.T) {
	c := New()
	got, err := c.Pow("2", 10)
	if err != nil {
		t.Fatal(err)
	}
	if got != "1024" {
		t.Errorf("Pow(2,10) = %s, want 1024", got)
	}
	got, err = c.Pow("-2", 3)
	if err != nil {
		t.Fatal(err)
	}
	if got != "-8" {
		t.Errorf("Pow(-2,3) = %s, want -8", got)
	}
}
