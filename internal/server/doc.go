// Package server implements the MCP (Model Context Protocol) server that
// exposes symbol extraction over stdio.
//
// The server speaks JSON-RPC 2.0, one message per line: requests arrive on
// stdin and responses leave on stdout. Logging goes to stderr so the protocol
// stream stays clean.
//
// # Protocol Flow
//
//  1. Client sends "initialize"; the server reports its capabilities.
//  2. Client sends "notifications/initialized" (no response).
//  3. Client calls "tools/list" to discover available tools.
//  4. Client calls "tools/call" with a tool name and arguments.
//
// # Tools
//
// The tool surface covers the symbol workflow end to end:
//
//   - image_load / image_dimensions: frame metadata
//   - image_crop: rectangular inspection crops
//   - symbols_extract: run the segmentation pipeline, returning
//     reading-ordered bounding boxes index-aligned with base64 PNG crops
//   - symbols_annotate: preview overlay with numbered, color-coded boxes
//   - symbols_recognize: extraction plus independent per-symbol OCR
//
// # Error Handling
//
// Malformed parameters produce JSON-RPC error -32602, unknown methods
// -32601, and tool execution failures -32000. Per-symbol recognition
// failures are reported inside the result, never as a protocol error.
package server
