package shell

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zhubert/dirshell/internal/config"
	derrors "github.com/zhubert/dirshell/internal/errors"
	"github.com/zhubert/dirshell/internal/session"
	"github.com/zhubert/dirshell/internal/ui"
)

func newTestShell(in io.Reader, out io.Writer, opts Options) *Shell {
	r := ui.NewRenderer(config.Defaults().Prefixes, false)
	return New(session.New(), in, out, r, opts)
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"pwd", Command{Name: "pwd", Raw: "pwd"}},
		{"mkdir a", Command{Name: "mkdir", Argument: "a", Raw: "mkdir a"}},
		{"rm a -r", Command{Name: "rm", Argument: "a", Flag: "-r", Raw: "rm a -r"}},
		{"rm a -r more", Command{Name: "rm", Argument: "a", Flag: "-r", Raw: "rm a -r more"}},
		{"  cd   docs  ", Command{Name: "cd", Argument: "docs", Raw: "  cd   docs  "}},
		{"", Command{}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			require.Equal(t, tt.want, ParseLine(tt.line))
		})
	}
}

func TestRun_Transcript(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"pwd",
		"mkdir docs",
		"mkdir docs",
		"cd docs",
		"ls",
		"cd /",
		"ls",
		"rm /",
		"bogus",
	}, "\n"))
	var out bytes.Buffer

	sh := newTestShell(in, &out, Options{Farewell: "Have a great day!"})
	require.NoError(t, sh.Run(context.Background()))

	want := strings.Join([]string{
		"SUCC: PATH:/",
		"SUCC: Created docs",
		"ERR: Directory already exists",
		"SUCC: Reached /docs",
		"Something Bad Happened! No directories found",
		"SUCC: Reached root directory",
		"SUCC: DIRS: docs",
		"ERR: Can't delete root",
		"ERR: CANNOT RECOGNIZE INPUT 'bogus'",
		"Have a great day!",
	}, "\n") + "\n"
	require.Equal(t, want, out.String())
}

func TestRun_PromptAndEcho(t *testing.T) {
	var out bytes.Buffer
	sh := newTestShell(strings.NewReader("pwd\n"), &out, Options{
		Prompt:     "> ",
		ShowPrompt: true,
		Echo:       true,
		Farewell:   "bye",
	})
	require.NoError(t, sh.Run(context.Background()))

	require.Equal(t, "> pwd\nSUCC: PATH:/\n> \nbye\n", out.String())
}

func TestRun_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	sh := newTestShell(strings.NewReader(""), &out, Options{})
	require.NoError(t, sh.Run(context.Background()))
	require.Empty(t, out.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestRun_ReadError(t *testing.T) {
	var out bytes.Buffer
	sh := newTestShell(failingReader{}, &out, Options{Source: "stdin", Farewell: "bye"})

	err := sh.Run(context.Background())
	require.Error(t, err)
	require.True(t, derrors.Is(err, derrors.KindIO))
	require.NotContains(t, out.String(), "bye")
}

func TestRun_ContextCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	sh := newTestShell(pr, &out, Options{Farewell: "bye"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sh.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	require.Equal(t, "bye\n", out.String())

	// Run closed the pipe, which released the reader goroutine.
	_, err := pw.Write([]byte("pwd\n"))
	require.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestRun_OverlongLineIsRejected(t *testing.T) {
	long := "mkdir " + strings.Repeat("x", 70000)
	in := strings.NewReader("mkdir a\n" + long + "\npwd\n")
	var out bytes.Buffer

	sh := newTestShell(in, &out, Options{Farewell: "bye"})
	require.NoError(t, sh.Run(context.Background()))

	want := strings.Join([]string{
		"SUCC: Created a",
		"ERR: Input line longer than 65536 bytes",
		"SUCC: PATH:/",
		"bye",
	}, "\n") + "\n"
	require.Equal(t, want, out.String())
	require.Equal(t, 2, sh.Session().Store().Len())
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []inputLine
	}{
		{"plain", "pwd\nls\n", []inputLine{{Text: "pwd"}, {Text: "ls"}}},
		{"crlf", "pwd\r\nls\r\n", []inputLine{{Text: "pwd"}, {Text: "ls"}}},
		{"no final newline", "pwd\nls", []inputLine{{Text: "pwd"}, {Text: "ls"}}},
		{"blank line", "\npwd\n", []inputLine{{Text: ""}, {Text: "pwd"}}},
		{"at limit", strings.Repeat("a", MaxLineLength) + "\n", []inputLine{{Text: strings.Repeat("a", MaxLineLength)}}},
		{"over limit", strings.Repeat("a", MaxLineLength+1) + "\nls\n", []inputLine{{TooLong: true}, {Text: "ls"}}},
		{"over limit at end", strings.Repeat("a", MaxLineLength+1), []inputLine{{TooLong: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bufio.NewReader(strings.NewReader(tt.input))
			var got []inputLine
			for {
				line, err := readLine(r)
				if err == io.EOF {
					break
				}
				require.NoError(t, err)
				got = append(got, line)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestExecute_ReturnsResult(t *testing.T) {
	var out bytes.Buffer
	sh := newTestShell(strings.NewReader(""), &out, Options{})

	res := sh.Execute("mkdir a")
	require.True(t, res.OK())
	require.Equal(t, "SUCC: Created a\n", out.String())
	require.Equal(t, 2, sh.Session().Store().Len())
}

func TestResultStatusString(t *testing.T) {
	require.Equal(t, "success", StatusSuccess.String())
	require.Equal(t, "notice", StatusNotice.String())
	require.Equal(t, "failure", StatusFailure.String())
	require.Equal(t, "unknown", Status(9).String())
}

func TestCommandsListsEveryHandler(t *testing.T) {
	s := session.New()
	for _, def := range Commands() {
		name := strings.Fields(def.Usage)[0]
		res := Dispatch(s, ParseLine(name))
		require.NotEqual(t, derrors.KindUnknownCommand, res.Kind(), "%s is listed but not dispatched", name)
	}
}
