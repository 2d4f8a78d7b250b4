package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileMode is an alias for fs.FileMode.
type FileMode = fs.FileMode

// SkipDir, returned from a Walk callback for a directory, prunes that
// directory: none of its entries are visited.
var SkipDir = fs.SkipDir

// File represents an individual file found by a walk
type File interface {
	// Path returns the absolute path to the file
	Path() string

	// RelativePath returns the path relative to the walk root
	RelativePath() string

	// Info returns file metadata
	Info() FileInfo
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk traverses the directory tree in lexical pre-order, calling fn for
	// each file and directory, the root included. Returning SkipDir for a
	// directory prunes it; any other error stops the walk.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider is the read/write surface the scanner, the replacer and
// the cleanup step operate on.
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the whole content of the file at path. Existing
	// files keep their permission bits; perm applies to new files only.
	WriteFile(path string, data []byte, perm FileMode) error

	// Remove deletes the file at path.
	Remove(path string) error

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
