// Package order contains the order lifecycle and projection domain model.
//
// The backend (a remote order-management service) owns order records; this
// package owns two things about them:
//
//   - The Status state machine: which statuses exist and which transitions
//     between them are legal. The transition table is plain data so it can
//     be tested exhaustively against the full status enumeration.
//   - The projection: BuildView transforms a RawOrderRecord, as fetched from
//     the backend, into an immutable View in canonical major-unit form.
//
// Orders are never mutated locally. Every mutation goes to the backend
// carrying the last fetched version, and the view is rebuilt from a fresh
// fetch afterwards.
package order
