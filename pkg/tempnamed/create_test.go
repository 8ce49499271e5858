package tempnamed

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dotcommander/tempnamed/internal/sequence"
)

func requireDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestCreateFile_PrefersBaseName(t *testing.T) {
	dir := t.TempDir()

	f, path, err := CreateFile(Options{Name: "a", Dir: dir})
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.Equal(t, filepath.Join(dir, "a"), path)
}

func TestCreateFile_ChainWithoutExtension(t *testing.T) {
	dir := t.TempDir()

	var got []string
	for range 3 {
		f, path, err := CreateFile(Options{Name: "a", Dir: dir})
		require.NoError(t, err)
		require.NoError(t, f.Close())
		got = append(got, filepath.Base(path))
	}
	require.Equal(t, []string{"a", "a.1", "a.2"}, got)
}

func TestCreateFile_ChainWithExtension(t *testing.T) {
	dir := t.TempDir()

	var got []string
	for range 3 {
		f, path, err := CreateFile(Options{Name: "b.txt", Dir: dir})
		require.NoError(t, err)
		require.NoError(t, f.Close())
		got = append(got, filepath.Base(path))
	}
	require.Equal(t, []string{"b.txt", "b.1.txt", "b.2.txt"}, got)
}

func TestCreateFile_ChainWithTrailingDot(t *testing.T) {
	dir := t.TempDir()

	var got []string
	for range 3 {
		f, path, err := CreateFile(Options{Name: "c.", Dir: dir})
		require.NoError(t, err)
		require.NoError(t, f.Close())
		got = append(got, filepath.Base(path))
	}
	require.Equal(t, []string{"c.", "c..1", "c..2"}, got)
}

func TestCreateFile_CustomSuffixStart(t *testing.T) {
	dir := t.TempDir()

	var got []string
	for range 3 {
		f, path, err := CreateFile(Options{Name: "b.txt", Dir: dir, SuffixStart: "tmp1"})
		require.NoError(t, err)
		require.NoError(t, f.Close())
		got = append(got, filepath.Base(path))
	}
	require.Equal(t, []string{"b.txt", "b.tmp1.txt", "b.tmp2.txt"}, got)
}

func TestCreateFile_HandleIsReadWriteAtOffsetZero(t *testing.T) {
	f, path, err := CreateFile(Options{Name: "note.txt", Dir: t.TempDir()})
	require.NoError(t, err)
	defer f.Close()

	n, err := f.WriteString("payload")
	require.NoError(t, err)
	require.Equal(t, 7, n)

	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)
	b, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, "payload", string(b))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, fs.FileMode(0o600), info.Mode().Perm())
}

func TestCreateFile_NameUsedAsGivenWithoutDir(t *testing.T) {
	name := filepath.Join(t.TempDir(), "direct.txt")

	f, path, err := CreateFile(Options{Name: name})
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.Equal(t, name, path)
}

func TestCreateFile_DirKeepsOnlyFinalComponentOfName(t *testing.T) {
	dir := t.TempDir()

	f, path, err := CreateFile(Options{Name: "deep/nested/report.txt", Dir: dir})
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.Equal(t, filepath.Join(dir, "report.txt"), path)
}

func TestCreateFile_MissingNameCreatesNothing(t *testing.T) {
	dir := t.TempDir()

	_, _, err := CreateFile(Options{Dir: dir})
	require.ErrorIs(t, err, ErrNameRequired)
	requireDirEmpty(t, dir)
}

func TestCreateFile_MissingDirCreatesNothing(t *testing.T) {
	parent := t.TempDir()
	missing := filepath.Join(parent, "nope")

	_, _, err := CreateFile(Options{Name: "a", Dir: missing})
	var dirErr *InvalidDirError
	require.ErrorAs(t, err, &dirErr)
	require.Equal(t, missing, dirErr.Dir)
	requireDirEmpty(t, parent)
}

func TestCreateFile_DirThatIsAFile(t *testing.T) {
	parent := t.TempDir()
	plain := filepath.Join(parent, "plain")
	require.NoError(t, os.WriteFile(plain, nil, 0o600))

	_, _, err := CreateFile(Options{Name: "a", Dir: plain})
	var dirErr *InvalidDirError
	require.ErrorAs(t, err, &dirErr)
	require.Equal(t, plain, dirErr.Dir)
}

func TestCreateFile_PlatformErrorOnMissingParent(t *testing.T) {
	name := filepath.Join(t.TempDir(), "missing", "leaf.txt")

	_, _, err := CreateFile(Options{Name: name})
	var platErr *PlatformError
	require.ErrorAs(t, err, &platErr)
	require.Equal(t, name, platErr.Path)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCreateFile_GivesUpAfterAttemptCap(t *testing.T) {
	dir := t.TempDir()

	seq := sequence.New(filepath.Join(dir, "hot"), "1")
	for range 10_000 {
		require.NoError(t, os.WriteFile(seq.Next(), nil, 0o600))
	}

	_, _, err := CreateFile(Options{Name: "hot", Dir: dir})
	var limitErr *RetryLimitError
	require.ErrorAs(t, err, &limitErr)
	require.Equal(t, filepath.Join(dir, "hot"), limitErr.Base)
	require.Equal(t, 10_000, limitErr.Attempts)
	require.ErrorIs(t, err, fs.ErrExist)
}

func TestCreateFile_ConcurrentCallersClaimDistinctPaths(t *testing.T) {
	dir := t.TempDir()
	const workers = 8

	var wg sync.WaitGroup
	paths := make([]string, workers)
	errs := make([]error, workers)
	start := make(chan struct{})
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			f, path, err := CreateFile(Options{Name: "claim.txt", Dir: dir})
			if err != nil {
				errs[i] = err
				return
			}
			_ = f.Close()
			paths[i] = path
		}()
	}
	close(start)
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i])
	}

	// Together the workers must have claimed exactly the first N candidates,
	// each exactly once.
	want := make(map[string]bool, workers)
	seq := sequence.New(filepath.Join(dir, "claim.txt"), "1")
	for range workers {
		want[seq.Next()] = true
	}

	got := make(map[string]bool, workers)
	for _, p := range paths {
		require.False(t, got[p], "path %q claimed twice", p)
		got[p] = true
	}
	require.Equal(t, want, got)
}

func TestCreateDir_Chain(t *testing.T) {
	dir := t.TempDir()

	var got []string
	for range 3 {
		path, err := CreateDir(Options{Name: "build", Dir: dir})
		require.NoError(t, err)
		got = append(got, filepath.Base(path))
	}
	require.Equal(t, []string{"build", "build.1", "build.2"}, got)
}

func TestCreateDir_OwnerOnlyMode(t *testing.T) {
	path, err := CreateDir(Options{Name: "private", Dir: t.TempDir()})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.True(t, info.IsDir())
	require.Equal(t, fs.FileMode(0o700), info.Mode().Perm())
}

func TestCreateDir_FileOccupyingNameCountsAsCollision(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "build"), nil, 0o600))

	path, err := CreateDir(Options{Name: "build", Dir: dir})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "build.1"), path)
}

func TestCreateDir_ValidationFailuresCreateNothing(t *testing.T) {
	dir := t.TempDir()

	_, err := CreateDir(Options{Dir: dir})
	require.ErrorIs(t, err, ErrNameRequired)

	_, err = CreateDir(Options{Name: "x", Dir: filepath.Join(dir, "missing")})
	var dirErr *InvalidDirError
	require.ErrorAs(t, err, &dirErr)

	requireDirEmpty(t, dir)
}

func TestCreateDir_ConcurrentCallersClaimDistinctPaths(t *testing.T) {
	dir := t.TempDir()
	const workers = 6

	var wg sync.WaitGroup
	paths := make([]string, workers)
	errs := make([]error, workers)
	start := make(chan struct{})
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			paths[i], errs[i] = CreateDir(Options{Name: "scratch", Dir: dir})
		}()
	}
	close(start)
	wg.Wait()

	seen := make(map[string]bool, workers)
	for i := range workers {
		require.NoError(t, errs[i])
		require.False(t, seen[paths[i]], "path %q claimed twice", paths[i])
		seen[paths[i]] = true
	}
}
