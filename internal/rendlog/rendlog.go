// Package rendlog appends render diagnostics to a plain-text file.
//
// Writes are best-effort: any failure to create the directory, open the file
// or write to it is dropped so logging never changes the outcome of a render.
package rendlog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type File struct {
	path string
	mu   sync.Mutex
}

func New(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string {
	return f.path
}

// Append writes message followed by a newline. The file is opened per call so
// a deleted or rotated file is recreated on the next entry.
func (f *File) Append(message string) {
	if f == nil || f.path == "" {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return
	}

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer file.Close()

	_, _ = file.WriteString(message + "\n")
}

func (f *File) Appendf(format string, args ...interface{}) {
	f.Append(fmt.Sprintf(format, args...))
}
