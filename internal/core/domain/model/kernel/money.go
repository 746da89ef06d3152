package kernel

import (
	"fmt"
	"math"
)

// minorUnitsPerMajor is the conversion factor between backend cent amounts
// and major currency units.
const minorUnitsPerMajor = 100

// MoneyTolerance is the rounding tolerance for comparing derived money
// values in major units.
const MoneyTolerance = 0.01

// Money represents a monetary amount in major currency units with
// 2-decimal semantics. Money is an immutable value object; the zero value
// is a valid zero amount, since the backend legitimately omits money fields
// for some order states.
//
// Example:
//
//	m := kernel.MoneyFromMinorUnits(12345)
//	fmt.Println(m) // Output: 123.45
type Money float64

// MoneyFromMinorUnits converts a backend cent amount into Money.
//
// Parameters:
//   - centAmount: The amount in minor currency units (integer cents)
//
// Returns:
//   - Money: The equivalent amount in major units
func MoneyFromMinorUnits(centAmount int64) Money {
	return Money(float64(centAmount) / minorUnitsPerMajor)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub returns the difference of two amounts.
func (m Money) Sub(other Money) Money {
	return m - other
}

// Round returns the amount rounded to 2 fractional digits.
func (m Money) Round() Money {
	return Money(math.Round(float64(m)*minorUnitsPerMajor) / minorUnitsPerMajor)
}

// IsEqual compares two amounts within MoneyTolerance.
// Derived values (grand total vs. subtotal plus shipping) must compare
// equal under this method, not with ==.
func (m Money) IsEqual(other Money) bool {
	return math.Abs(float64(m)-float64(other)) < MoneyTolerance
}

// Float64 returns the amount as a plain float64 in major units.
func (m Money) Float64() float64 {
	return float64(m)
}

// String formats the amount with exactly two fractional digits.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", float64(m))
}
