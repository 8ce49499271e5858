// Package sequence produces the deterministic candidate-name stream used when
// a preferred file or directory name is already taken: the name itself first,
// then the name with successive suffix tokens spliced in ahead of its final
// extension.
package sequence

import "regexp"

// extBoundary matches a base that has at least one character, then a dot, then
// at least one more character. Greedy matching pins the split to the last such
// dot, so the suffix lands in front of the final extension.
var extBoundary = regexp.MustCompile(`^(.+\.)(.+)$`)

// Apply splices one suffix token into base. "b.txt" with "1" becomes
// "b.1.txt"; a base without an eligible dot gets the token appended after a
// new dot, so "a" becomes "a.1" and "c." becomes "c..1". The base is treated
// as an opaque string; path separators are kept verbatim.
func Apply(base, suffix string) string {
	if m := extBoundary.FindStringSubmatch(base); m != nil {
		return m[1] + suffix + "." + m[2]
	}
	return base + "." + suffix
}

// Sequencer yields the candidate stream for one base name. The zero value is
// not usable; construct with New. A fresh Sequencer over the same inputs
// reproduces the same stream, and no candidate ever repeats within one stream.
type Sequencer struct {
	base    string
	suffix  string
	started bool
}

// New returns a Sequencer over base whose first fallback token is suffixStart.
func New(base, suffixStart string) *Sequencer {
	return &Sequencer{base: base, suffix: suffixStart}
}

// Next returns the next candidate. The first call returns the base unchanged;
// every later call returns the base with the current token applied and then
// advances the token. The stream is unbounded; the caller owns termination.
func (s *Sequencer) Next() string {
	if !s.started {
		s.started = true
		return s.base
	}
	candidate := Apply(s.base, s.suffix)
	s.suffix = Successor(s.suffix)
	return candidate
}
