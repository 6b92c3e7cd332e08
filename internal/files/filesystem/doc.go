// Package filesystem abstracts file access behind a small provider
// interface so document discovery and rewriting can run against the OS
// filesystem in production and an in-memory filesystem in tests.
//
// Available providers:
//   - OSFileSystem: Real filesystem access
//   - MemoryFileSystem: In-memory virtual filesystem for tests
package filesystem
