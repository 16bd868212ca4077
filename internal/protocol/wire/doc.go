// Package wire owns the generic payload contract between the control
// socket and the typed decoders.
//
// Ownership boundary:
// - parsing raw reply bytes into generic key/value trees
// - field extraction with per-field typed errors
// - the decode error taxonomy shared by every entity decoder
package wire
