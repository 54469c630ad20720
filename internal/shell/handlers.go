package shell

import (
	"strings"

	"github.com/ideamans/go-l10n"
	"github.com/zhubert/dirshell/internal/errors"
	"github.com/zhubert/dirshell/internal/session"
	"github.com/zhubert/dirshell/internal/tree"
)

const (
	opPwd     = errors.Op("shell.Pwd")
	opMkdir   = errors.Op("shell.Mkdir")
	opCd      = errors.Op("shell.Cd")
	opLs      = errors.Op("shell.Ls")
	opRm      = errors.Op("shell.Rm")
	opSession = errors.Op("shell.Session")
	opRun     = errors.Op("shell.Run")
)

// Pwd reports the current path. It takes no argument.
func Pwd(s *session.Session, cmd Command) Result {
	if cmd.Argument != "" {
		return Failure(errors.InvalidArgument(opPwd, l10n.T(msgInvalidArgument)))
	}
	return Success(l10n.F(msgPath, s.Cursor().Path))
}

// Mkdir creates a directory under the current directory. One leading
// slash is stripped from the name.
func Mkdir(s *session.Session, cmd Command) Result {
	if cmd.Argument == "" {
		return Failure(errors.MissingArgument(opMkdir, l10n.T(msgInvalidDirName)))
	}

	name := strings.TrimPrefix(cmd.Argument, "/")
	if name == "" || strings.Contains(name, "/") {
		return Failure(errors.InvalidArgument(opMkdir, l10n.T(msgInvalidDirName)))
	}

	label := s.Cursor().Label
	if _, ok := s.Store().Exists(name, label); ok {
		return Failure(errors.AlreadyExists(opMkdir, l10n.T(msgAlreadyExists)))
	}

	d := s.Store().Insert(tree.NewDirectory(name, label))
	return Success(l10n.F(msgCreated, d.Name))
}

// Cd moves the cursor. No argument, or "/", returns to root. Any other
// path is resolved relative to the current directory and the cursor is
// only moved if every segment resolves.
func Cd(s *session.Session, cmd Command) Result {
	if cmd.Argument == "" || cmd.Argument == tree.RootPath {
		s.ResetCursor()
		return Success(l10n.T(msgReachedRoot))
	}

	res, ok := tree.Resolve(s.Store(), tree.SplitPath(cmd.Argument), s.Cursor())
	if !ok {
		return Failure(errors.InvalidPath(opCd, l10n.T(msgInvalidPath)))
	}

	s.SetCursor(res.Cursor)
	return Success(l10n.F(msgReached, res.Cursor.Path))
}

// Ls lists the children of the current directory in creation order.
func Ls(s *session.Session, cmd Command) Result {
	if cmd.Argument != "" {
		return Failure(errors.InvalidArgument(opLs, l10n.T(msgInvalidArgument)))
	}

	children := s.Store().Children(s.Cursor().Label)
	if len(children) == 0 {
		return Notice(errors.NotFound(opLs, l10n.T(msgNoDirectories)))
	}

	names := make([]string, len(children))
	for i, d := range children {
		names[i] = d.Name
	}
	return Success(l10n.F(msgDirs, strings.Join(names, ",")))
}

// Rm removes the directory the path resolves to. The working directory
// is never changed and children of the removed directory are left in
// place.
func Rm(s *session.Session, cmd Command) Result {
	if cmd.Argument == "" {
		return Failure(errors.MissingArgument(opRm, l10n.T(msgInvalidDirName)))
	}

	segments := tree.SplitPath(cmd.Argument)
	if len(segments) > 1 {
		segments[1] = strings.TrimPrefix(segments[1], "/")
	}

	if namesRoot(segments) {
		return Failure(errors.Forbidden(opRm, l10n.T(msgCantDeleteRoot)))
	}

	res, ok := tree.Resolve(s.Store(), segments, s.Cursor())
	if !ok {
		return Failure(errors.InvalidPath(opRm, l10n.T(msgInvalidPath)))
	}
	if res.Position <= tree.RootPosition {
		return Failure(errors.Forbidden(opRm, l10n.T(msgCantDeleteRoot)))
	}

	removed, err := s.Store().RemoveAt(res.Position)
	if err != nil {
		return Failure(errors.E(opRm, errors.GetKind(err), l10n.T(msgInvalidPath), err))
	}
	return Success(l10n.F(msgDeleted, removed.Name))
}

// namesRoot reports whether a split path has no names in it at all,
// as with "/" or "//".
func namesRoot(segments []string) bool {
	for _, seg := range segments {
		if seg != "" {
			return false
		}
	}
	return true
}

// Session handles "session clear", which resets the store and cursor.
func Session(s *session.Session, cmd Command) Result {
	if cmd.Argument == "" {
		return Failure(errors.MissingArgument(opSession, l10n.T(msgProvideArgument)))
	}
	if cmd.Argument != "clear" {
		return Failure(errors.InvalidArgument(opSession, l10n.T(msgSessionArgMissing)))
	}

	s.Clear()
	return Success(l10n.T(msgSessionCleared))
}
