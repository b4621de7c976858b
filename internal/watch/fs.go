package watch

import "os"

//go:generate mockgen -source=fs.go -destination=mock_fs_test.go -package=watch

// FileSystem is the part of the file system the watcher polls.
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
}

// OSFileSystem implements FileSystem using os package
type OSFileSystem struct{}

// Stat calls os.Stat
func (OSFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}
