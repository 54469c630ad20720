package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/zhubert/dirshell/internal/config"
	"github.com/zhubert/dirshell/internal/errors"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.txt")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

func TestRunScriptFile(t *testing.T) {
	path := writeScript(t, "mkdir docs\ncd docs\nmkdir notes\nls\ncd /\nrm docs/notes\ncd docs\nls\n")

	var out bytes.Buffer
	if err := runScriptFile(context.Background(), config.Defaults(), path, &out, false); err != nil {
		t.Fatalf("runScriptFile() error = %v", err)
	}

	want := "SUCC: Created docs\n" +
		"SUCC: Reached /docs\n" +
		"SUCC: Created notes\n" +
		"SUCC: DIRS: notes\n" +
		"SUCC: Reached root directory\n" +
		"SUCC: Deleted notes\n" +
		"SUCC: Reached /docs\n" +
		"Something Bad Happened! No directories found\n" +
		"Have a great day!\n"
	if out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestRunScriptFile_Echo(t *testing.T) {
	path := writeScript(t, "pwd\n")

	var out bytes.Buffer
	if err := runScriptFile(context.Background(), config.Defaults(), path, &out, true); err != nil {
		t.Fatalf("runScriptFile() error = %v", err)
	}

	want := "> pwd\nSUCC: PATH:/\n> \nHave a great day!\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunScriptFile_Missing(t *testing.T) {
	var out bytes.Buffer
	err := runScriptFile(context.Background(), config.Defaults(), filepath.Join(t.TempDir(), "nope"), &out, false)
	if !errors.Is(err, errors.KindIO) {
		t.Errorf("runScriptFile() error = %v, want KindIO", err)
	}
}
