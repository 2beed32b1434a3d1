// Package testutil provides utilities for testing pngico components.
//
// Key components:
//   - NewTestFS: in-memory filesystem for fast, isolated tests
//   - FaultyFS: wrapper that injects open/create/write failures per path
//   - Gradient, WritePNG, ReadPNG: PNG fixtures and readers
//   - BuildICO, EntryOf: ICO fixtures with arbitrary directory records
//   - IsolateXDG: points XDG directories at temp dirs
//
// All fixtures are generated inline, no test data lives on disk.
package testutil
