// Package kernel contains shared value objects used across the domain model.
//
// The backend reports every monetary amount in minor currency units (integer
// cents); the dashboard presents major units with two fractional digits.
// Money is the single place where that conversion and its rounding rules
// live, so no other package divides by 100.
package kernel
