// Package paths turns a command line request into a conversion plan.
//
// It decides the conversion mode, infers the output path when none is
// given, and refuses to touch an existing output unless overwriting was
// requested. No file is written here: every check happens before the
// converters run.
//
// # Output inference
//
//   - icons/ (directory)        -> icons.ico next to it
//   - app.ico (file)            -> app/ next to it
//
// With an explicit mode the input kind is not inspected; the same
// stem-based names are used.
package paths
