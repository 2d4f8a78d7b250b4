// Package scanner enumerates the files a bootstrap run substitutes into.
//
// The scanner walks the repository root exactly once and produces an
// immutable primer.FileList of absolute paths. Directories matched by the
// exclusion rules (always .git) are pruned before descent, and excluded
// files (.DS_Store, a file named " ", operator globs) are never opened.
//
// The scanner is filesystem-agnostic through the
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
