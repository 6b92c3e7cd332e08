// Package scanner discovers the build documents of a workspace.
//
// The scanner is responsible for:
//   - Locating the solution manifest at the workspace root
//   - Recursively discovering project descriptors in the directory tree
//   - Producing a deterministic, sorted document set
//
// The scanner is filesystem-agnostic through the filesystem.Provider
// interface, enabling both production use with the OS filesystem and
// testing with in-memory filesystems.
package scanner
