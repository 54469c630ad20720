// Package tree holds the in-memory directory model for dirshell.
//
// # Model
//
// Directories live in one flat, insertion-ordered Store. A directory is
// identified by its Name together with the ParentLabel it was created
// under, where a label is the bare name of the directory that was
// current at creation time. Full paths are never stored.
//
// Because matching uses (Name, ParentLabel) only, two directories with
// the same name whose parents share a label are indistinguishable:
//
//	mkdir a; cd a; mkdir x     -> x under label "a"
//	cd /; mkdir b; cd b; mkdir a; cd a; mkdir x
//	                           -> rejected, "x" already exists under "a"
//
// This is a known limitation of the model and is kept for compatibility
// with existing command transcripts.
//
// # Root
//
// Position 0 always holds the root directory, named "root". Its
// ParentLabel is the root path "/" rather than a label, so no cursor
// label ever matches it and it can never be listed or resolved as a
// child. RemoveAt refuses position 0.
//
// # Resolution
//
// Resolve walks a slash-split path one segment at a time starting from
// a Cursor. Each hop requires Exists(segment, cursor.Label); a miss
// fails the whole walk and the caller's cursor is left as it was. A
// leading empty segment (a path starting with "/") is skipped and the
// walk stays relative to the starting cursor.
package tree
