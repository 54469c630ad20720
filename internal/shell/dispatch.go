package shell

import (
	"strings"

	"github.com/ideamans/go-l10n"
	"github.com/zhubert/dirshell/internal/errors"
	"github.com/zhubert/dirshell/internal/logger"
	"github.com/zhubert/dirshell/internal/session"
)

// Dispatch runs cmd against s and returns its result. It never panics
// on user input and never returns a nil-shaped Result.
func Dispatch(s *session.Session, cmd Command) Result {
	var res Result
	switch cmd.Name {
	case "pwd":
		res = Pwd(s, cmd)
	case "mkdir":
		res = Mkdir(s, cmd)
	case "cd":
		res = Cd(s, cmd)
	case "ls":
		res = Ls(s, cmd)
	case "rm":
		res = Rm(s, cmd)
	case "session":
		res = Session(s, cmd)
	default:
		res = Failure(errors.UnknownCommand(l10n.F(msgUnrecognized, strings.TrimSpace(cmd.Raw))))
	}

	log := logger.ComponentLogger("shell")
	if res.Err != nil {
		log.Info("command rejected", "sessionID", s.ID, "command", cmd.Name, "argument", cmd.Argument, "status", res.Status.String(), "error", res.Err)
	} else {
		log.Debug("command done", "sessionID", s.ID, "command", cmd.Name, "argument", cmd.Argument, "cwd", s.Cursor().Path)
	}
	return res
}
