// Package parse turns adb and device shell output into structured values.
//
// Every function here is pure (text in, value out) and handles exactly one output
// format, so format drift on real devices stays contained to a single parser with
// its own fixtures under testdata.
package parse
