package paths

import (
	"os"
	"runtime"
)

// Platform is the view of the host used to resolve paths.
type Platform interface {
	OS() string
	Getenv(key string) string
	UserHomeDir() (string, error)
}

type hostPlatform struct{}

func (hostPlatform) OS() string                   { return runtime.GOOS }
func (hostPlatform) Getenv(key string) string     { return os.Getenv(key) }
func (hostPlatform) UserHomeDir() (string, error) { return os.UserHomeDir() }

// Host resolves paths against the running system.
var Host Platform = hostPlatform{}
