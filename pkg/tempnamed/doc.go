// Package tempnamed creates a file or directory under a preferred name,
// deterministically falling back to suffixed alternatives when the name is
// taken: "report.txt", then "report.1.txt", "report.2.txt", and so on. The
// suffix is spliced in ahead of the final extension so the file keeps its
// type; a name without an extension gets the suffix appended ("data",
// "data.1", "data.2").
//
// Every attempt goes through the platform's exclusive-create primitive, so
// there is no window between checking a name and claiming it. For files that
// makes the whole operation race-free: among any number of concurrent callers
// asking for the same name, each candidate is won by at most one caller, and
// the losers move on to the next suffix, so every caller returns a distinct
// path backed by a file it exclusively created. For directories the create
// itself is just as exclusive, but the library hands back a path rather than
// a handle, and nothing stops another actor from removing and replacing that
// directory afterwards. Callers who need the stronger guarantee should create
// inside a directory they control, for example one from the tempdir package.
//
// This is not a random-unique-name generator; use os.CreateTemp when any
// unique name will do. The point here is keeping the preferred,
// human-meaningful name whenever it is free, and staying close to it when it
// is not.
package tempnamed
