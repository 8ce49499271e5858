package tempnamed

import (
	"sync"

	"github.com/dotcommander/tempnamed/pkg/tempdir"
)

// TempDirProvider supplies the process-wide managed temporary directory that
// backs Options.InTempDir. Cleanup policy belongs to the provider, not to
// this package.
type TempDirProvider interface {
	CreateManaged() (string, error)
}

// managedMu guards the provider override and the resolved path. It is held
// across the provider call, so even concurrent first uses resolve the
// directory at most once.
var (
	managedMu   sync.Mutex
	managedPath string
	provider    TempDirProvider
)

// SetTempDirProvider replaces the provider used for the first InTempDir
// resolution. It has no effect once a directory has been resolved; nil
// restores the default tempdir provider.
func SetTempDirProvider(p TempDirProvider) {
	managedMu.Lock()
	provider = p
	managedMu.Unlock()
}

// managedDir returns the process-wide managed directory, creating it on first
// use. Only a successful resolution is cached; a failed provider call is
// surfaced and the next call starts over.
func managedDir() (string, error) {
	managedMu.Lock()
	defer managedMu.Unlock()

	if managedPath != "" {
		return managedPath, nil
	}
	p := provider
	if p == nil {
		p = tempdir.Default()
	}
	dir, err := p.CreateManaged()
	if err != nil {
		return "", err
	}
	managedPath = dir
	return managedPath, nil
}

func resetManaged() {
	managedMu.Lock()
	managedPath = ""
	provider = nil
	managedMu.Unlock()
}
