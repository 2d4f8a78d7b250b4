// Package files groups the file-related sub-packages.
//
//   - filesystem: filesystem abstraction (OS and in-memory) with read, write and remove
//   - exclude: the rules deciding which paths are never visited
//   - scanner: the single tree walk producing the file list
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/primer/internal/files/exclude"
//	    "github.com/vvka-141/primer/internal/files/filesystem"
//	    "github.com/vvka-141/primer/internal/files/scanner"
//	)
//
//	rules, err := exclude.Default().WithPatterns("node_modules")
//	fileScanner := scanner.NewScannerWithFS(filesystem.NewOSFileSystem(), rules)
//	files, err := fileScanner.ScanDirectory("./my-template")
package files
