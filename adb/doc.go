// Package adb implements the device command channel: it forms invocations of the
// Android Debug Bridge command line tool, runs each one as an isolated process under
// a deadline, and turns the textual or binary output into typed results.
//
// A Client is bound to one target device for its lifetime. Every operation is a
// pre-built argument list layered on Execute; operations never retry and report
// soft failures as false, nil or omitted fields. Only the execution failures
// (TimeoutError, ExecutionError, UnreachableError) are returned as errors.
//
//	client := adb.New(adb.WithSerial("emulator-5554"))
//	png, err := client.Screenshot(ctx)
package adb
