package shell

import (
	"testing"

	"github.com/ideamans/go-l10n"
	"github.com/stretchr/testify/require"
	"github.com/zhubert/dirshell/internal/errors"
	"github.com/zhubert/dirshell/internal/session"
)

func TestJapaneseMessages(t *testing.T) {
	l10n.ForceLanguage("ja")
	defer l10n.ResetLanguage()

	s := session.New()
	requireSuccess(t, run(t, s, "pwd"), "パス:/")
	requireSuccess(t, run(t, s, "mkdir docs"), "docs を作成しました")
	requireFailure(t, run(t, s, "cd nope"), errors.KindInvalidPath, "不正なパスです")
	requireFailure(t, run(t, s, "bogus"), errors.KindUnknownCommand, "入力を認識できません 'bogus'")
}

func TestJapaneseLexiconCoversEveryMessage(t *testing.T) {
	keys := []string{
		msgPath, msgCreated, msgReachedRoot, msgReached, msgDirs,
		msgNoDirectories, msgDeleted, msgSessionCleared, msgInvalidArgument,
		msgInvalidDirName, msgAlreadyExists, msgInvalidPath, msgCantDeleteRoot,
		msgProvideArgument, msgSessionArgMissing, msgUnrecognized, msgFarewell,
		msgLineTooLong,
	}
	lex := l10n.World["ja"]
	for _, k := range keys {
		require.NotEmpty(t, lex[k], "missing ja text for %q", k)
	}
}
