package tempnamed

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dotcommander/tempnamed/internal/fsatomic"
	"github.com/dotcommander/tempnamed/internal/sequence"
)

// maxAttempts caps the candidate loop. Hitting it means ten thousand
// consecutive collisions for one base name, which points at a pathological
// directory or a caller bug rather than ordinary contention.
const maxAttempts = 10_000

// DefaultSuffixStart is the first fallback token used when
// Options.SuffixStart is empty.
const DefaultSuffixStart = "1"

// Options select the preferred name and where to create it.
type Options struct {
	// Name is the preferred name. Required. Without Dir and InTempDir it is
	// used as given, relative or absolute; when either is set, only its final
	// path component is kept.
	Name string

	// Dir is an explicit parent directory. It must already exist as a
	// directory. Dir wins over InTempDir when both are set.
	Dir string

	// InTempDir places the entry inside the process-wide managed temporary
	// directory, creating that directory on first use and reusing it for the
	// rest of the process.
	InTempDir bool

	// SuffixStart is the first fallback token; empty means
	// DefaultSuffixStart. Later candidates use successive tokens: "1" -> "2",
	// "tmp1" -> "tmp2", "aa" -> "ab".
	SuffixStart string
}

func (o Options) suffixStart() string {
	if o.SuffixStart == "" {
		return DefaultSuffixStart
	}
	return o.SuffixStart
}

// CreateFile creates a new file under the preferred name, falling back to
// suffixed candidates until one wins, and returns the open read-write handle
// (mode 0600, positioned at offset zero) along with the path that won.
func CreateFile(opts Options) (*os.File, string, error) {
	var f *os.File
	path, err := create(opts, func(candidate string) error {
		h, err := fsatomic.CreateFile(candidate)
		if err != nil {
			return err
		}
		f = h
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}

// CreateDir creates a new directory (mode 0700) under the preferred name,
// falling back to suffixed candidates, and returns the path that won. No
// handle is held on the result; see the package comment for what that means
// under concurrent removal.
func CreateDir(opts Options) (string, error) {
	return create(opts, fsatomic.Mkdir)
}

// create drives the candidate stream through one exclusive-create primitive
// until a candidate wins, a non-collision error stops the loop, or the
// attempt cap is spent.
func create(opts Options, tryCreate func(path string) error) (string, error) {
	base, err := resolveBase(opts)
	if err != nil {
		return "", err
	}

	seq := sequence.New(base, opts.suffixStart())
	var last error
	for range maxAttempts {
		candidate := seq.Next()
		err := tryCreate(candidate)
		switch {
		case err == nil:
			return candidate, nil
		case fsatomic.IsExist(err):
			last = err
		default:
			return "", newPlatformError(candidate, err)
		}
	}
	return "", &RetryLimitError{Base: base, Attempts: maxAttempts, Last: last}
}

// resolveBase validates the options and produces the path the candidate
// stream is derived from. Apart from the stat of an explicit Dir it touches
// nothing, so every validation failure leaves the filesystem as it was.
func resolveBase(opts Options) (string, error) {
	if opts.Name == "" {
		return "", ErrNameRequired
	}
	switch {
	case opts.Dir != "":
		info, err := os.Stat(opts.Dir)
		if err != nil || !info.IsDir() {
			return "", &InvalidDirError{Dir: opts.Dir, Err: err}
		}
		return filepath.Join(opts.Dir, filepath.Base(opts.Name)), nil
	case opts.InTempDir:
		dir, err := managedDir()
		if err != nil {
			return "", fmt.Errorf("failed to create managed temp directory: %w", err)
		}
		return filepath.Join(dir, filepath.Base(opts.Name)), nil
	default:
		return opts.Name, nil
	}
}
