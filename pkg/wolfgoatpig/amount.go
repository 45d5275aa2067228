package wolfgoatpig

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Amount is an exact quantity of quarters expressed as a rational number.
// The zero value is 0. Amounts are immutable values and are safe to compare
// with ==.
type Amount struct {
	num, den int64
}

// Quarters returns an Amount worth n whole quarters
func Quarters(n int) Amount {
	return Amount{num: int64(n), den: 1}
}

// Ratio returns the Amount num/den
// den must not be zero
func Ratio(num, den int64) Amount {
	if den == 0 {
		panic("wolfgoatpig: zero denominator")
	}

	return normalize(num, den)
}

func normalize(num, den int64) Amount {
	if den < 0 {
		num, den = -num, -den
	}

	if num == 0 {
		return Amount{num: 0, den: 1}
	}

	g := gcd(abs(num), den)
	return Amount{num: num / g, den: den / g}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func (a Amount) frac() (int64, int64) {
	if a.den == 0 {
		return a.num, 1
	}
	return a.num, a.den
}

// Add returns a + b
func (a Amount) Add(b Amount) Amount {
	an, ad := a.frac()
	bn, bd := b.frac()
	return normalize(an*bd+bn*ad, ad*bd)
}

// Sub returns a - b
func (a Amount) Sub(b Amount) Amount {
	return a.Add(b.Neg())
}

// Neg returns -a
func (a Amount) Neg() Amount {
	n, d := a.frac()
	return Amount{num: -n, den: d}
}

// MulInt returns a × n
func (a Amount) MulInt(n int) Amount {
	an, ad := a.frac()
	return normalize(an*int64(n), ad)
}

// DivInt returns a ÷ n
// n must not be zero
func (a Amount) DivInt(n int) Amount {
	if n == 0 {
		panic("wolfgoatpig: division by zero")
	}

	an, ad := a.frac()
	return normalize(an, ad*int64(n))
}

// Mul returns a × b
func (a Amount) Mul(b Amount) Amount {
	an, ad := a.frac()
	bn, bd := b.frac()
	return normalize(an*bn, ad*bd)
}

// Cmp returns -1 if a < b, 0 if a == b, and 1 if a > b
func (a Amount) Cmp(b Amount) int {
	an, ad := a.frac()
	bn, bd := b.frac()

	diff := an*bd - bn*ad
	switch {
	case diff < 0:
		return -1
	case diff > 0:
		return 1
	}

	return 0
}

// IsZero returns true if the amount is exactly zero
func (a Amount) IsZero() bool {
	n, _ := a.frac()
	return n == 0
}

// String returns "3", "-3/2", etc.
func (a Amount) String() string {
	n, d := a.frac()
	if d == 1 {
		return strconv.FormatInt(n, 10)
	}

	return fmt.Sprintf("%d/%d", n, d)
}

// MarshalJSON encodes the amount as a string like "3" or "-3/2"
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes an amount encoded by MarshalJSON
func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parts := strings.SplitN(s, "/", 2)
	num, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid amount: %s", s)
	}

	den := int64(1)
	if len(parts) == 2 {
		den, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil || den == 0 {
			return fmt.Errorf("invalid amount: %s", s)
		}
	}

	*a = normalize(num, den)
	return nil
}
