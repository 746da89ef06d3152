// Package services contains stateless domain services that coordinate
// business rules spanning more than one value of the domain model.
//
// TransitionGate combines the order status transition table with the
// approval flag into the one place this precondition is evaluated.
package services
