// Package server implements the MCP (Model Context Protocol) server for image comparison.
//
// This package provides a JSON-RPC 2.0 server that exposes the perceptual
// diff engine through the MCP protocol, so MCP-compatible clients can
// compare screenshots without shelling out to the CLI.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - compare_images: Full perceptual comparison with optional diff image
//     and change-region reporting
//   - image_info: Load image and get metadata
//   - image_dimensions: Get width and height
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images for the metadata
// tools. Images are cached by path and reused across calls, avoiding
// redundant disk I/O. Comparison reads are not cached; a comparison is
// usually one-shot per pair.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
