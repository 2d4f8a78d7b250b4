package primer

// FileScanner enumerates the files eligible for substitution.
type FileScanner interface {
	// ScanDirectory recursively walks root and returns every eligible file.
	// Returns ErrRootNotFound when root is missing and ErrNoFiles when the
	// tree holds nothing to process.
	ScanDirectory(root string) (FileList, error)
}
