package testutil

import (
	"errors"
	"io"
	"io/fs"

	"github.com/arthur-debert/pngico/pkg/filesystem"
)

// ErrInjected is the error returned by injected write failures
var ErrInjected = errors.New("injected failure")

// FaultyFS fails selected operations on selected paths
type FaultyFS struct {
	filesystem.FS
	OpenErrors   map[string]error
	CreateErrors map[string]error
	// WriteFails makes writes to the created file fail
	WriteFails map[string]bool
	MkdirErr   error
}

// NewFaultyFS wraps base without any injected failure
func NewFaultyFS(base filesystem.FS) *FaultyFS {
	return &FaultyFS{
		FS:           base,
		OpenErrors:   map[string]error{},
		CreateErrors: map[string]error{},
		WriteFails:   map[string]bool{},
	}
}

func (f *FaultyFS) Open(name string) (io.ReadCloser, error) {
	if err, ok := f.OpenErrors[name]; ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	return f.FS.Open(name)
}

func (f *FaultyFS) Create(name string) (io.WriteCloser, error) {
	if err, ok := f.CreateErrors[name]; ok {
		return nil, &fs.PathError{Op: "create", Path: name, Err: err}
	}
	w, err := f.FS.Create(name)
	if err != nil {
		return nil, err
	}
	if f.WriteFails[name] {
		return failingWriter{w}, nil
	}
	return w, nil
}

func (f *FaultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if f.WriteFails[name] {
		return &fs.PathError{Op: "write", Path: name, Err: ErrInjected}
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *FaultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if f.MkdirErr != nil {
		return &fs.PathError{Op: "mkdir", Path: path, Err: f.MkdirErr}
	}
	return f.FS.MkdirAll(path, perm)
}

type failingWriter struct {
	io.WriteCloser
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, ErrInjected
}
