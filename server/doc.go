// Package server exposes an operation registry over the Model Context Protocol.
//
// Every registered operation becomes an MCP tool. The server speaks JSON-RPC over:
//   - STDIO
//   - HTTP-SSE (/sse, /message)
//   - Streamable HTTP (/mcp)
//
// Typical usage:
//
//	registry, _ := tool.NewAndroid(adb.New(adb.WithSerial(serial)))
//	s, _ := server.New(registry, server.WithCORS(server.DefaultCors()))
//	log.Fatal(s.HTTP(ctx, ":5000").ListenAndServe())
package server
