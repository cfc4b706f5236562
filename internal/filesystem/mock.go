package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"
)

// maxSymlinkHops bounds symlink resolution, like the kernel's ELOOP limit.
const maxSymlinkHops = 40

// MockFileSystem provides in-memory filesystem for testing
type MockFileSystem struct {
	files      map[string]*MockFile
	currentDir string

	// Hooks for testing error scenarios, keyed by cleaned absolute path
	RemoveErrors map[string]error
	WriteErrors  map[string]error
}

// MockFile represents a file, directory or symlink in the mock filesystem
type MockFile struct {
	Content []byte
	Mode    fs.FileMode
	ModTime time.Time
	IsDir   bool

	// LinkTarget is set for symlinks; it is stored verbatim like os.Symlink does.
	LinkTarget string
}

// IsSymlink reports whether the entry is a symlink.
func (f *MockFile) IsSymlink() bool {
	return f.Mode&fs.ModeSymlink != 0
}

// mockFileInfo implements fs.FileInfo
type mockFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() fs.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return m.modTime }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

// NewMockFileSystem creates a new MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	mfs := &MockFileSystem{
		files:        make(map[string]*MockFile),
		currentDir:   "/workspace",
		RemoveErrors: make(map[string]error),
		WriteErrors:  make(map[string]error),
	}
	mfs.AddDir("/workspace")
	return mfs
}

// abs resolves path against the mock working directory.
func (mfs *MockFileSystem) abs(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(mfs.currentDir, path)
	}
	return filepath.Clean(path)
}

// AddFile adds a file to the mock filesystem, creating parent directories
func (mfs *MockFileSystem) AddFile(path string, content []byte) {
	cleanPath := mfs.abs(path)
	mfs.AddDir(filepath.Dir(cleanPath))
	mfs.files[cleanPath] = &MockFile{
		Content: content,
		Mode:    0644,
		ModTime: time.Now(),
	}
}

// AddDir adds a directory and its parents to the mock filesystem
func (mfs *MockFileSystem) AddDir(path string) {
	cleanPath := mfs.abs(path)
	for dir := cleanPath; ; dir = filepath.Dir(dir) {
		if _, exists := mfs.files[dir]; !exists {
			mfs.files[dir] = &MockFile{
				Mode:    0755 | fs.ModeDir,
				ModTime: time.Now(),
				IsDir:   true,
			}
		}
		if dir == filepath.Dir(dir) {
			return
		}
	}
}

// AddSymlink adds a symlink at link pointing at target.
func (mfs *MockFileSystem) AddSymlink(target, link string) {
	cleanPath := mfs.abs(link)
	mfs.AddDir(filepath.Dir(cleanPath))
	mfs.files[cleanPath] = &MockFile{
		Mode:       0777 | fs.ModeSymlink,
		ModTime:    time.Now(),
		LinkTarget: target,
	}
}

// resolve follows symlinks starting at path and returns the final entry.
func (mfs *MockFileSystem) resolve(path string) (string, *MockFile, error) {
	current := mfs.abs(path)
	for hops := 0; hops <= maxSymlinkHops; hops++ {
		file, exists := mfs.files[current]
		if !exists {
			return current, nil, fs.ErrNotExist
		}
		if !file.IsSymlink() {
			return current, file, nil
		}
		next := file.LinkTarget
		if !filepath.IsAbs(next) {
			next = filepath.Join(filepath.Dir(current), next)
		}
		current = filepath.Clean(next)
	}
	return current, nil, syscall.ELOOP
}

func (mfs *MockFileSystem) ReadFile(path string) ([]byte, error) {
	_, file, err := mfs.resolve(path)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: path, Err: err}
	}
	if file.IsDir {
		return nil, &fs.PathError{Op: "read", Path: path, Err: syscall.EISDIR}
	}
	return file.Content, nil
}

func (mfs *MockFileSystem) WriteFile(path string, data []byte, perm fs.FileMode) error {
	cleanPath := mfs.abs(path)
	if err, ok := mfs.WriteErrors[cleanPath]; ok {
		return &fs.PathError{Op: "open", Path: path, Err: err}
	}

	if err := mfs.requireParentDir(cleanPath, "open"); err != nil {
		return err
	}
	if existing, ok := mfs.files[cleanPath]; ok && existing.IsDir {
		return &fs.PathError{Op: "open", Path: path, Err: syscall.EISDIR}
	}

	mfs.files[cleanPath] = &MockFile{
		Content: append([]byte(nil), data...),
		Mode:    perm,
		ModTime: time.Now(),
	}
	return nil
}

func (mfs *MockFileSystem) requireParentDir(cleanPath, op string) error {
	parent, exists := mfs.files[filepath.Dir(cleanPath)]
	if !exists {
		return &fs.PathError{Op: op, Path: cleanPath, Err: fs.ErrNotExist}
	}
	if !parent.IsDir {
		return &fs.PathError{Op: op, Path: cleanPath, Err: syscall.ENOTDIR}
	}
	return nil
}

func (mfs *MockFileSystem) children(cleanPath string) []string {
	prefix := cleanPath + string(filepath.Separator)
	if cleanPath == string(filepath.Separator) {
		prefix = cleanPath
	}
	var out []string
	for p := range mfs.files {
		if p != cleanPath && strings.HasPrefix(p, prefix) {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

func (mfs *MockFileSystem) Remove(path string) error {
	cleanPath := mfs.abs(path)
	if err, ok := mfs.RemoveErrors[cleanPath]; ok {
		return &fs.PathError{Op: "remove", Path: path, Err: err}
	}

	file, exists := mfs.files[cleanPath]
	if !exists {
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	}
	if file.IsDir && len(mfs.children(cleanPath)) > 0 {
		return &fs.PathError{Op: "remove", Path: path, Err: syscall.ENOTEMPTY}
	}
	delete(mfs.files, cleanPath)
	return nil
}

func (mfs *MockFileSystem) RemoveAll(path string) error {
	cleanPath := mfs.abs(path)
	if err, ok := mfs.RemoveErrors[cleanPath]; ok {
		return &fs.PathError{Op: "unlinkat", Path: path, Err: err}
	}

	if _, exists := mfs.files[cleanPath]; !exists {
		return nil
	}
	for _, child := range mfs.children(cleanPath) {
		delete(mfs.files, child)
	}
	delete(mfs.files, cleanPath)
	return nil
}

func (mfs *MockFileSystem) Rename(oldPath, newPath string) error {
	src := mfs.abs(oldPath)
	dst := mfs.abs(newPath)

	file, exists := mfs.files[src]
	if !exists {
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: fs.ErrNotExist}
	}
	if err := mfs.requireParentDir(dst, "rename"); err != nil {
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: err}
	}
	if existing, ok := mfs.files[dst]; ok && existing.IsDir {
		if !file.IsDir || len(mfs.children(dst)) > 0 {
			return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: syscall.EISDIR}
		}
	}

	moved := make(map[string]*MockFile)
	for _, child := range mfs.children(src) {
		moved[filepath.Join(dst, strings.TrimPrefix(child, src))] = mfs.files[child]
		delete(mfs.files, child)
	}
	delete(mfs.files, src)
	mfs.files[dst] = file
	for p, f := range moved {
		mfs.files[p] = f
	}
	return nil
}

func (mfs *MockFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	cleanPath := mfs.abs(path)

	var missing []string
	for dir := cleanPath; ; dir = filepath.Dir(dir) {
		if file, exists := mfs.files[dir]; exists {
			if !file.IsDir {
				return &fs.PathError{Op: "mkdir", Path: dir, Err: syscall.ENOTDIR}
			}
			break
		}
		missing = append(missing, dir)
		if dir == filepath.Dir(dir) {
			break
		}
	}

	for i := len(missing) - 1; i >= 0; i-- {
		mfs.files[missing[i]] = &MockFile{
			Mode:    perm | fs.ModeDir,
			ModTime: time.Now(),
			IsDir:   true,
		}
	}
	return nil
}

func (mfs *MockFileSystem) Symlink(target, link string) error {
	cleanPath := mfs.abs(link)
	if _, exists := mfs.files[cleanPath]; exists {
		return &os.LinkError{Op: "symlink", Old: target, New: link, Err: fs.ErrExist}
	}
	if err := mfs.requireParentDir(cleanPath, "symlink"); err != nil {
		return &os.LinkError{Op: "symlink", Old: target, New: link, Err: err}
	}

	mfs.files[cleanPath] = &MockFile{
		Mode:       0777 | fs.ModeSymlink,
		ModTime:    time.Now(),
		LinkTarget: target,
	}
	return nil
}

func (mfs *MockFileSystem) Readlink(path string) (string, error) {
	file, exists := mfs.files[mfs.abs(path)]
	if !exists {
		return "", &fs.PathError{Op: "readlink", Path: path, Err: fs.ErrNotExist}
	}
	if !file.IsSymlink() {
		return "", &fs.PathError{Op: "readlink", Path: path, Err: syscall.EINVAL}
	}
	return file.LinkTarget, nil
}

func infoFor(path string, file *MockFile) *mockFileInfo {
	return &mockFileInfo{
		name:    filepath.Base(path),
		size:    int64(len(file.Content)),
		mode:    file.Mode,
		modTime: file.ModTime,
		isDir:   file.IsDir,
	}
}

func (mfs *MockFileSystem) Stat(path string) (fs.FileInfo, error) {
	_, file, err := mfs.resolve(path)
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	return infoFor(path, file), nil
}

func (mfs *MockFileSystem) Lstat(path string) (fs.FileInfo, error) {
	file, exists := mfs.files[mfs.abs(path)]
	if !exists {
		return nil, &fs.PathError{Op: "lstat", Path: path, Err: fs.ErrNotExist}
	}
	return infoFor(path, file), nil
}

// Exists reports whether anything, including a dangling symlink, is at path.
func (mfs *MockFileSystem) Exists(path string) bool {
	_, exists := mfs.files[mfs.abs(path)]
	return exists
}

func (mfs *MockFileSystem) Getwd() (string, error) {
	return mfs.currentDir, nil
}

// SetCurrentDir sets the current working directory for the mock
func (mfs *MockFileSystem) SetCurrentDir(dir string) {
	mfs.currentDir = filepath.Clean(dir)
}

// GetFiles returns all entries in the mock filesystem
func (mfs *MockFileSystem) GetFiles() map[string]*MockFile {
	return mfs.files
}

// Tree lists every entry under root relative to it, sorted. Directories end
// with a slash and symlinks show their target.
func (mfs *MockFileSystem) Tree(root string) []string {
	cleanRoot := mfs.abs(root)
	var out []string
	for _, p := range mfs.children(cleanRoot) {
		rel, _ := filepath.Rel(cleanRoot, p)
		rel = filepath.ToSlash(rel)
		file := mfs.files[p]
		switch {
		case file.IsDir:
			rel += "/"
		case file.IsSymlink():
			rel += " -> " + file.LinkTarget
		}
		out = append(out, rel)
	}
	return out
}
