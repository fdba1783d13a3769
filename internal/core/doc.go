// Package core is the application layer over the Northwind accessors.
//
// The accessors in package dao report failures as typed errors and never
// log. [Service] wraps them for callers such as the CLI and the HTTP API:
// it applies the configured statement timeout, logs each call with its
// correlation id, and leaves the decision to abort or continue with the
// caller.
//
// # Error Handling
//
// Technical errors are mapped to user-facing messages with [MapError].
// Each category has a code for support reference:
//
//   - DB001-DB009: store rejections, connectivity and schema
//   - NF001: record not found
//   - REQ001-REQ002: malformed requests
//   - AUTH001-AUTH002, RATE001: API protection
//   - ERR001: request cancelled
//   - ERR000: anything else
package core
