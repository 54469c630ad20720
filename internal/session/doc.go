// Package session owns the mutable state of one dirshell session.
//
// # Overview
//
// A Session pairs one tree.Store with the cursor (current directory)
// that moves over it. Command handlers read and replace the cursor and
// mutate the store through the Session; nothing else holds a reference
// to either.
//
// # Lifecycle
//
// 1. New: a uuid is generated for the session ID, the store is created
// holding only the root directory, and the cursor is set to ("/", "root").
//
// 2. Commands: each handler runs to completion before the next one is
// accepted. Handlers that may fail part way (cd, rm) work on a copy of
// the cursor and only commit it on success.
//
// 3. Clear: the store is reset to the root directory alone and the
// cursor returns to root. The session ID is kept.
//
// # Concurrency
//
// A Session is not safe for concurrent use. The shell front end drives
// exactly one session from a single goroutine. Callers that share a
// Session between goroutines must serialize access themselves.
package session
