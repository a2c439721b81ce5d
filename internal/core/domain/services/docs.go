// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the coffee shop system. It implements
// business workflows that don't naturally belong to a single value object.
//
// The package includes:
//   - OrderBoard: A domain service applying lifecycle events to the authoritative
//     order set and deriving its partitioned view
//
// OrderBoard is deliberately not safe for concurrent use: it is designed to be
// owned by exactly one consumer (the ledger's event loop), which is what makes
// the apply path lock-free.
package services
