// Package vfs provides an OS-backed implementation of the absfs.FileSystem
// abstraction used by the file processor.
package vfs

import (
	"os"
	"time"

	"github.com/absfs/absfs"
)

// FS implements absfs.FileSystem on top of the host operating system.
type FS struct{}

// New returns an OS-backed filesystem.
func New() *FS {
	return &FS{}
}

func (fs *FS) OpenFile(name string, flag int, perm os.FileMode) (absfs.File, error) {
	return os.OpenFile(name, flag, perm)
}

func (fs *FS) Open(name string) (absfs.File, error) {
	return os.Open(name)
}

func (fs *FS) Create(name string) (absfs.File, error) {
	return os.Create(name)
}

func (fs *FS) Mkdir(name string, perm os.FileMode) error {
	return os.Mkdir(name, perm)
}

func (fs *FS) MkdirAll(name string, perm os.FileMode) error {
	return os.MkdirAll(name, perm)
}

func (fs *FS) Remove(name string) error {
	return os.Remove(name)
}

func (fs *FS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

func (fs *FS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (fs *FS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (fs *FS) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(name, mode)
}

func (fs *FS) Chtimes(name string, atime, mtime time.Time) error {
	return os.Chtimes(name, atime, mtime)
}

func (fs *FS) Chown(name string, uid, gid int) error {
	return os.Chown(name, uid, gid)
}

func (fs *FS) Truncate(name string, size int64) error {
	return os.Truncate(name, size)
}

func (fs *FS) Chdir(dir string) error {
	return os.Chdir(dir)
}

func (fs *FS) Getwd() (string, error) {
	return os.Getwd()
}

func (fs *FS) TempDir() string {
	return os.TempDir()
}

func (fs *FS) Separator() uint8 {
	return os.PathSeparator
}

func (fs *FS) ListSeparator() uint8 {
	return os.PathListSeparator
}
