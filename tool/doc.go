// Package tool implements the command dispatch registry: a fixed catalog of named
// operations with typed parameter schemas, each mapped to a handler that drives the
// device command channel.
//
// Invoke never fails: unknown names, invalid parameters, bridge errors and handler
// panics all become failure Responses with a human readable message.
package tool
