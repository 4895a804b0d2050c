// Package saldo implements a small interactive ledger that keeps a running
// balance and counts buy and sell operations.
//
// Lines are read one at a time by an Interpreter:
//   - `buy N` debits N from the balance.
//   - `sell N` credits N to the balance.
//   - `balance` prints the balance and the number of operations.
//   - `reset` prints the previous state and starts over from zero.
//   - `end` stops the loop.
//
// Any other line prints a single error message and leaves the balance
// unchanged. The words can be swapped for the Spanish vocabulary
// (compra, venta, saldo, reset, fin).
//
// This package serves as the foundational logic for the `saldo` command-line
// tool.
package saldo
