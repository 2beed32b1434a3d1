// Package filesystem provides filesystem implementations for pngico.
//
// The converters only talk to the FS interface, so the same code runs
// against the OS filesystem and against afero's in-memory filesystem in
// tests.
package filesystem
