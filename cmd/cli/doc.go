// Package cli constructs the journal-club command-line interface, wiring the
// Cobra entry point, the layered configuration loader, and structured logging.
// Execute builds a fresh application and runs it against os.Args.
package cli
