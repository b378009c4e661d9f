// Package server implements an MCP (Model Context Protocol) server for chart
// gridline generation.
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
//   - gridlines_coordinates: Evenly spaced coordinates along one axis
//   - gridlines_render: SVG text for horizontal, vertical or both axes
//   - gridlines_write: Render and save SVG files
//   - gridlines_preview: PNG preview, optionally over an existing image
//   - gridlines_overlay: Gridlines drawn over an existing image at its size
//   - gridlines_stroke_color: Describe the fixed stroke color
//
// Because stdout carries the protocol, gridlines_write always requires a
// destination path.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, e.g. a line count below 3
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
