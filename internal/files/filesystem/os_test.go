package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_Open_ValidDirectory(t *testing.T) {
	dir := t.TempDir()
	fs := NewOSFileSystem()

	d, err := fs.Open(dir)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", dir, err)
	}

	absDir, _ := filepath.Abs(dir)
	if d.Path() != absDir {
		t.Errorf("directory.Path() = %q, want %q", d.Path(), absDir)
	}
}

func TestOSFileSystem_Open_NonexistentPath(t *testing.T) {
	fs := NewOSFileSystem()

	_, err := fs.Open(filepath.Join(t.TempDir(), "nonexistent"))
	if err == nil {
		t.Error("Open(nonexistent) should return error")
	}
}

func TestOSFileSystem_Open_FileNotDirectory(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "file.txt")
	os.WriteFile(filePath, []byte("content"), 0644)

	fs := NewOSFileSystem()

	_, err := fs.Open(filePath)
	if err == nil {
		t.Error("Open(file) should return error")
	}
}

func TestOSFileSystem_ReadFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "main.go")
	expected := "package %PROJECT_NAME%"
	os.WriteFile(filePath, []byte(expected), 0644)

	fs := NewOSFileSystem()

	data, err := fs.ReadFile(filePath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != expected {
		t.Errorf("ReadFile() = %q, want %q", string(data), expected)
	}
}

func TestOSFileSystem_ReadFile_Nonexistent(t *testing.T) {
	fs := NewOSFileSystem()

	_, err := fs.ReadFile(filepath.Join(t.TempDir(), "nope.go"))
	if err == nil {
		t.Error("ReadFile(nonexistent) should return error")
	}
}

func TestOSFileSystem_Stat_File(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "main.go")
	os.WriteFile(filePath, []byte("package %PROJECT_NAME%"), 0644)

	fs := NewOSFileSystem()

	info, err := fs.Stat(filePath)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.IsDir() {
		t.Error("Stat(file) should not be a directory")
	}
	if info.Name() != "main.go" {
		t.Errorf("Stat().Name() = %q, want %q", info.Name(), "main.go")
	}
}

func TestOSFileSystem_Stat_Directory(t *testing.T) {
	dir := t.TempDir()
	fs := NewOSFileSystem()

	info, err := fs.Stat(dir)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Error("Stat(dir) should be a directory")
	}
}

func TestOSFileSystem_Stat_Nonexistent(t *testing.T) {
	fs := NewOSFileSystem()

	_, err := fs.Stat(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("Stat(nonexistent) should return error")
	}
}

func TestOSFileSystem_Walk(t *testing.T) {
	dir := t.TempDir()

	// Create a tree:
	//   dir/
	//     a.md
	//     sub/
	//       b.md
	sub := filepath.Join(dir, "sub")
	os.Mkdir(sub, 0755)
	os.WriteFile(filepath.Join(dir, "a.md"), []byte("package %PROJECT_NAME%"), 0644)
	os.WriteFile(filepath.Join(sub, "b.md"), []byte("# %PROJECT_NAME%"), 0644)

	fs := NewOSFileSystem()
	d, err := fs.Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	var files []string
	err = d.Walk(func(f File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !f.Info().IsDir() {
			files = append(files, f.RelativePath())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("Walk found %d files, want 2: %v", len(files), files)
	}

	// Verify relative paths use OS separator
	found := map[string]bool{}
	for _, f := range files {
		found[filepath.ToSlash(f)] = true
	}

	if !found["a.md"] {
		t.Error("Walk did not find a.md")
	}
	if !found["sub/b.md"] {
		t.Error("Walk did not find sub/b.md")
	}
}

func TestOSFile_PathAndInfo(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "content.txt")
	expected := "%AUTHOR_EMAIL%"
	os.WriteFile(filePath, []byte(expected), 0644)

	fs := NewOSFileSystem()
	d, err := fs.Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	var found File
	d.Walk(func(f File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if f.RelativePath() == "content.txt" {
			found = f
		}
		return nil
	})

	if found == nil {
		t.Fatal("Walk did not find content.txt")
	}
	if found.Path() != filePath {
		t.Errorf("Path() = %q, want %q", found.Path(), filePath)
	}
	if found.Info().Size() != int64(len(expected)) {
		t.Errorf("Info().Size() = %d, want %d", found.Info().Size(), len(expected))
	}
}

func TestOSFileSystem_Walk_SkipDirPrunes(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git", "objects"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "HEAD"), []byte("ref"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "objects", "ab"), []byte("blob"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kept.txt"), []byte("x"), 0644))

	d, err := NewOSFileSystem().Open(dir)
	require.NoError(t, err)

	var visited []string
	err = d.Walk(func(f File, walkErr error) error {
		require.NoError(t, walkErr)
		if f.Info().IsDir() && f.Info().Name() == ".git" {
			return SkipDir
		}
		visited = append(visited, filepath.ToSlash(f.RelativePath()))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{".", "kept.txt"}, visited)
}

func TestOSFileSystem_WriteFile_PreservesMode(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "build.sh")
	require.NoError(t, os.WriteFile(script, []byte("echo %PROJECT_NAME%"), 0755))

	fsys := NewOSFileSystem()
	require.NoError(t, fsys.WriteFile(script, []byte("echo acme"), 0644))

	info, err := os.Stat(script)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	data, err := os.ReadFile(script)
	require.NoError(t, err)
	assert.Equal(t, "echo acme", string(data))
}

func TestOSFileSystem_WriteFile_CreatesWithPerm(t *testing.T) {
	target := filepath.Join(t.TempDir(), "new.txt")

	require.NoError(t, NewOSFileSystem().WriteFile(target, []byte("hi"), 0600))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestOSFileSystem_Remove(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(target, []byte("# template"), 0644))

	fsys := NewOSFileSystem()
	require.NoError(t, fsys.Remove(target))

	_, err := os.Stat(target)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	err = fsys.Remove(target)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "second removal should report a missing file, got %v", err)
}
