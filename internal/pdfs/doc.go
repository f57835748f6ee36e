// Package pdfs audits the weekly journal-club PDF files published with the static site.
//
// It exposes CommandBuilder for wiring the Cobra entry point, Service for driving the
// check, list, and sync workflows programmatically, and the FileSystem and Reporter
// abstractions that keep the workflows testable. Service never reads or writes the
// browser storage used by the admin page; it only prints the statements an operator
// pastes into the browser console.
package pdfs
