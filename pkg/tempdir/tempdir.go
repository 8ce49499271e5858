// Package tempdir creates the managed temporary directories that back
// "create this in a temp dir" requests, and removes them at process exit.
// Creation policy (parent root, name prefix, keep-for-debugging) lives on the
// Provider; removal is a separate step the embedding program drives, so a
// created path stays valid for as long as the program wants it.
package tempdir

import (
	"errors"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// EnvKeep is the debug toggle. When set to "1" or "true", providers built by
// Default skip cleanup registration, so created directories survive Cleanup.
const EnvKeep = "TEMPNAMED_KEEP"

const defaultPrefix = "tempnamed-"

// Provider creates managed temporary directories.
type Provider struct {
	// Root is the parent directory for created directories. Empty means the
	// OS default temp directory.
	Root string

	// Prefix is the leading part of created directory names. Empty means
	// "tempnamed-".
	Prefix string

	// Keep disables cleanup registration for directories this provider
	// creates.
	Keep bool
}

// Default returns a Provider that creates under the OS temp directory and
// honors the TEMPNAMED_KEEP toggle.
func Default() *Provider {
	return &Provider{Keep: keepFromEnv()}
}

func keepFromEnv() bool {
	v := os.Getenv(EnvKeep)
	return v == "1" || v == "true"
}

// CreateManaged creates a fresh uniquely named directory and, unless Keep is
// set, registers it for removal by Cleanup.
func (p *Provider) CreateManaged() (string, error) {
	prefix := p.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	dir, err := os.MkdirTemp(p.Root, prefix)
	if err != nil {
		return "", err
	}
	if !p.Keep {
		register(dir)
	}
	return dir, nil
}

// registryMu and registry hold the process-wide set of directories Cleanup
// will remove. Registration happens from whatever goroutine creates a
// directory; Cleanup is expected to run once at exit.
var (
	registryMu sync.Mutex
	registry   []string
)

func register(dir string) {
	registryMu.Lock()
	registry = append(registry, dir)
	registryMu.Unlock()
}

// Cleanup removes every registered directory and drains the registry. Each
// removal is retried with exponential backoff on transient failures; whatever
// still fails is returned joined. A failed directory is not re-registered.
func Cleanup() error {
	registryMu.Lock()
	dirs := registry
	registry = nil
	registryMu.Unlock()

	var errs []error
	for _, dir := range dirs {
		if err := removeWithRetry(dir); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// removeWithRetry wraps os.RemoveAll with exponential backoff retry logic.
// Retries on transient removal errors (EBUSY, ENOTEMPTY from a racing
// writer). Does not retry on permission or missing-parent errors.
func removeWithRetry(dir string) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	b.MaxInterval = 250 * time.Millisecond
	b.MaxElapsedTime = 2 * time.Second
	b.RandomizationFactor = 0.1

	return backoff.Retry(func() error {
		err := os.RemoveAll(dir)
		if err == nil {
			return nil
		}
		if isTransientRemoveErr(err) {
			return err
		}
		return backoff.Permanent(err)
	}, b)
}

func isTransientRemoveErr(err error) bool {
	return errors.Is(err, syscall.EBUSY) || errors.Is(err, syscall.ENOTEMPTY)
}
