package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile implements File interface for in-memory files
type memoryFile struct {
	absPath string
	relPath string
	content []byte
	info    *memoryFileInfo
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

// memoryDirectory implements Directory interface for in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.getEntriesUnder(d.absPath)

	// Sort by path for deterministic order
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].absPath < entries[j].absPath
	})

	var pruned []string
	for _, entry := range entries {
		if isUnderAny(entry.absPath, pruned) {
			continue
		}

		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.absPath, r)
				}
			}()

			callbackErr = fn(entry, nil)
		}()

		if callbackErr == SkipDir {
			if entry.info.isDir {
				pruned = append(pruned, entry.absPath)
			} else {
				// Like filepath.Walk: skip the rest of the containing directory.
				pruned = append(pruned, path.Dir(entry.absPath))
			}
			continue
		}
		if callbackErr != nil {
			return callbackErr
		}
	}

	return nil
}

func isUnderAny(p string, dirs []string) bool {
	for _, dir := range dirs {
		if strings.HasPrefix(p, dir+"/") {
			return true
		}
	}
	return false
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing
type MemoryFileSystem struct {
	files map[string]*memoryFile // map of absolute path -> file
	root  string                 // root directory path

	readErrs   map[string]error
	writeErrs  map[string]error
	removeErrs map[string]error
	reads      map[string]int
	writes     map[string]int
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files:      make(map[string]*memoryFile),
		root:       root,
		readErrs:   make(map[string]error),
		writeErrs:  make(map[string]error),
		removeErrs: make(map[string]error),
		reads:      make(map[string]int),
		writes:     make(map[string]int),
	}

	mfs.files[root] = mfs.newDirEntry(root)
	return mfs
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(path string, content string) {
	mfs.AddFileWithTime(path, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.resolve(filePath)
	contentBytes := []byte(content)

	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: mfs.relative(absPath),
		content: contentBytes,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(contentBytes)),
			mode:    0644,
			modTime: modTime,
		},
	}

	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an empty directory.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.resolve(dirPath)
	if _, exists := mfs.files[absPath]; !exists {
		mfs.files[absPath] = mfs.newDirEntry(absPath)
	}
	mfs.ensureDirectoriesExist(absPath)
}

// FailRead makes every subsequent read of path return err.
func (mfs *MemoryFileSystem) FailRead(filePath string, err error) {
	mfs.readErrs[mfs.resolve(filePath)] = err
}

// FailWrite makes every subsequent write of path return err.
func (mfs *MemoryFileSystem) FailWrite(filePath string, err error) {
	mfs.writeErrs[mfs.resolve(filePath)] = err
}

// FailRemove makes every subsequent removal of path return err.
func (mfs *MemoryFileSystem) FailRemove(filePath string, err error) {
	mfs.removeErrs[mfs.resolve(filePath)] = err
}

// Reads reports how many times the file at path has been read.
func (mfs *MemoryFileSystem) Reads(filePath string) int {
	return mfs.reads[mfs.resolve(filePath)]
}

// Writes reports how many times the file at path has been written.
func (mfs *MemoryFileSystem) Writes(filePath string) int {
	return mfs.writes[mfs.resolve(filePath)]
}

// Exists reports whether a file or directory is present at path.
func (mfs *MemoryFileSystem) Exists(filePath string) bool {
	_, ok := mfs.files[mfs.resolve(filePath)]
	return ok
}

func (mfs *MemoryFileSystem) newDirEntry(absPath string) *memoryFile {
	return &memoryFile{
		absPath: absPath,
		relPath: mfs.relative(absPath),
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// resolve maps a relative or absolute path onto the virtual tree.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "." || p == "" {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) relative(absPath string) string {
	if absPath == mfs.root {
		return "."
	}
	rel, err := filepath.Rel(mfs.root, absPath)
	if err != nil {
		return absPath
	}
	return filepath.ToSlash(rel)
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}
	mfs.files[dir] = mfs.newDirEntry(dir)
	mfs.ensureDirectoriesExist(dir)
}

// getEntriesUnder returns all files and directories under the given path
func (mfs *MemoryFileSystem) getEntriesUnder(basePath string) []*memoryFile {
	var entries []*memoryFile
	for p, file := range mfs.files {
		var matched bool
		if basePath == "/" {
			matched = strings.HasPrefix(p, "/")
		} else {
			matched = p == basePath || strings.HasPrefix(p, basePath+"/")
		}
		if matched {
			entries = append(entries, file)
		}
	}
	return entries
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("failed to access path: %w", &fs.PathError{Op: "open", Path: openPath, Err: fs.ErrNotExist})
	}
	if !file.info.isDir {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}
	if err, ok := mfs.readErrs[absPath]; ok {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	return &memoryDirectory{absPath: absPath, fs: mfs}, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	absPath := mfs.resolve(filePath)
	mfs.reads[absPath]++

	if err, ok := mfs.readErrs[absPath]; ok {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: err}
	}
	file, exists := mfs.files[absPath]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if file.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	out := make([]byte, len(file.content))
	copy(out, file.content)
	return out, nil
}

// WriteFile implements FileSystemProvider.WriteFile
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte, perm FileMode) error {
	absPath := mfs.resolve(filePath)

	if err, ok := mfs.writeErrs[absPath]; ok {
		return &fs.PathError{Op: "write", Path: filePath, Err: err}
	}
	mfs.writes[absPath]++

	file, exists := mfs.files[absPath]
	if exists && file.info.isDir {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	if !exists {
		mfs.AddFile(absPath, "")
		file = mfs.files[absPath]
		file.info.mode = perm
	}

	file.content = append([]byte(nil), data...)
	file.info.size = int64(len(data))
	file.info.modTime = time.Now()
	return nil
}

// Remove implements FileSystemProvider.Remove
func (mfs *MemoryFileSystem) Remove(filePath string) error {
	absPath := mfs.resolve(filePath)

	if err, ok := mfs.removeErrs[absPath]; ok {
		return &fs.PathError{Op: "remove", Path: filePath, Err: err}
	}
	if _, exists := mfs.files[absPath]; !exists {
		return &fs.PathError{Op: "remove", Path: filePath, Err: fs.ErrNotExist}
	}
	if len(mfs.getEntriesUnder(absPath)) > 1 {
		return &fs.PathError{Op: "remove", Path: filePath, Err: fmt.Errorf("directory not empty")}
	}

	delete(mfs.files, absPath)
	return nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	absPath := mfs.resolve(statPath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	return file.info, nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
