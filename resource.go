package propcat

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"time"
)

//go:generate mockgen -source=$GOFILE -package mock_propcat -destination=test/mock/$GOFILE

// ResourceProvider supplies catalog files by path.
type ResourceProvider interface {
	HasResource(path string) bool
	// Resource fails when the resource cannot be stat'ed.
	Resource(path string) (Resource, error)
}

// Resource is one readable catalog source.
type Resource interface {
	Name() string
	ModTime() time.Time
	Open() (io.ReadCloser, error)
}

// FSProvider serves resources from an fs.FS.
type FSProvider struct {
	fsys fs.FS
}

func NewFSProvider(fsys fs.FS) *FSProvider {
	return &FSProvider{fsys: fsys}
}

// NewDirProvider serves resources from a directory on disk.
func NewDirProvider(dir string) *FSProvider {
	return NewFSProvider(os.DirFS(dir))
}

func (p *FSProvider) HasResource(path string) bool {
	if !fs.ValidPath(path) {
		return false
	}
	info, err := fs.Stat(p.fsys, path)
	return err == nil && !info.IsDir()
}

func (p *FSProvider) Resource(path string) (Resource, error) {
	info, err := fs.Stat(p.fsys, path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: path, Err: errors.New("is a directory")}
	}
	return &fsResource{fsys: p.fsys, path: path, modTime: info.ModTime()}, nil
}

type fsResource struct {
	fsys    fs.FS
	path    string
	modTime time.Time
}

func (r *fsResource) Name() string {
	return r.path
}

func (r *fsResource) ModTime() time.Time {
	return r.modTime
}

func (r *fsResource) Open() (io.ReadCloser, error) {
	return r.fsys.Open(r.path)
}
