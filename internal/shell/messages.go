package shell

import "github.com/ideamans/go-l10n"

// Message keys. The English text is the key itself.
const (
	msgPath              = "PATH:%s"
	msgCreated           = "Created %s"
	msgReachedRoot       = "Reached root directory"
	msgReached           = "Reached %s"
	msgDirs              = "DIRS: %s"
	msgNoDirectories     = "No directories found"
	msgDeleted           = "Deleted %s"
	msgSessionCleared    = "Session Cleared"
	msgInvalidArgument   = "Invalid Argument"
	msgInvalidDirName    = "Invalid Directory Name"
	msgAlreadyExists     = "Directory already exists"
	msgInvalidPath       = "Invalid Path"
	msgCantDeleteRoot    = "Can't delete root"
	msgProvideArgument   = "Please provide an argument"
	msgSessionArgMissing = "Session Argument not found"
	msgUnrecognized      = "CANNOT RECOGNIZE INPUT '%s'"
	msgFarewell          = "Have a great day!"
	msgLineTooLong       = "Input line longer than %d bytes"
)

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		msgPath:              "パス:%s",
		msgCreated:           "%s を作成しました",
		msgReachedRoot:       "ルートディレクトリに移動しました",
		msgReached:           "%s に移動しました",
		msgDirs:              "ディレクトリ: %s",
		msgNoDirectories:     "ディレクトリが見つかりません",
		msgDeleted:           "%s を削除しました",
		msgSessionCleared:    "セッションをクリアしました",
		msgInvalidArgument:   "不正な引数です",
		msgInvalidDirName:    "不正なディレクトリ名です",
		msgAlreadyExists:     "ディレクトリは既に存在します",
		msgInvalidPath:       "不正なパスです",
		msgCantDeleteRoot:    "ルートは削除できません",
		msgProvideArgument:   "引数を指定してください",
		msgSessionArgMissing: "セッションの引数が見つかりません",
		msgUnrecognized:      "入力を認識できません '%s'",
		msgFarewell:          "良い一日を!",
		msgLineTooLong:       "入力行が %d バイトを超えています",
	})
}
