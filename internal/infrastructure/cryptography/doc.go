// Package cryptography implements the workbench codecs and generators on top of the Go
// standard library crypto packages.
//
// All implementations are stateless apart from their construction options and are
// safe for concurrent use.
package cryptography
