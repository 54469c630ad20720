package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/ideamans/go-l10n"
	"github.com/zhubert/dirshell/internal/errors"
	"github.com/zhubert/dirshell/internal/logger"
	"github.com/zhubert/dirshell/internal/session"
	"github.com/zhubert/dirshell/internal/ui"
)

// Options controls the front end chrome around command results.
type Options struct {
	// Prompt is written before each line is read when ShowPrompt is set.
	Prompt     string
	ShowPrompt bool
	// Echo writes each command after the prompt, for non-interactive
	// input where the terminal does not echo it.
	Echo     bool
	Farewell string
	// Source names the input in read errors.
	Source string
}

// Shell reads commands line by line and writes one result line per command.
type Shell struct {
	sess     *session.Session
	in       io.Reader
	out      io.Writer
	renderer *ui.Renderer
	opts     Options
}

// New returns a Shell driving sess.
func New(sess *session.Session, in io.Reader, out io.Writer, renderer *ui.Renderer, opts Options) *Shell {
	if opts.Source == "" {
		opts.Source = "input"
	}
	return &Shell{
		sess:     sess,
		in:       in,
		out:      out,
		renderer: renderer,
		opts:     opts,
	}
}

// Session returns the session the shell drives.
func (sh *Shell) Session() *session.Session {
	return sh.sess
}

// MaxLineLength is the longest command line the shell accepts. Longer
// lines are discarded and answered with a single error result.
const MaxLineLength = 64 * 1024

// inputLine is one line read from the input. Text is empty when TooLong
// is set.
type inputLine struct {
	Text    string
	TooLong bool
}

// Run processes lines until end of input or ctx is done, then writes the
// farewell line. Reaching the end of input is not an error.
//
// Reading happens on a separate goroutine. When ctx is done and the input
// is an io.Closer, Run closes it so a blocked read returns and the
// goroutine exits. Otherwise the goroutine stays blocked until the reader
// returns on its own.
func (sh *Shell) Run(ctx context.Context) error {
	lines := make(chan inputLine)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)
		r := bufio.NewReader(sh.in)
		for {
			line, err := readLine(r)
			if err != nil {
				if err == io.EOF {
					err = nil
				}
				errc <- err
				return
			}
			select {
			case lines <- line:
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
	}()

	for {
		sh.writePrompt()

		select {
		case <-ctx.Done():
			if c, ok := sh.in.(io.Closer); ok {
				c.Close()
			}
			sh.WriteFarewell()
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-errc; err != nil {
					logger.Error("Reading %s failed: %v", sh.opts.Source, err)
					return errors.ReadFailed(sh.opts.Source, err)
				}
				sh.WriteFarewell()
				return nil
			}
			if line.TooLong {
				sh.rejectLongLine()
				continue
			}
			if sh.opts.Echo {
				fmt.Fprintln(sh.out, line.Text)
			}
			sh.Execute(line.Text)
		}
	}
}

// readLine returns the next line without its line ending. A final line
// with no newline is still returned; io.EOF comes only once nothing is
// left. Lines over MaxLineLength are drained and reported as TooLong.
func readLine(r *bufio.Reader) (inputLine, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if err == io.EOF && (len(buf) > 0 || tooLong) {
				break
			}
			return inputLine{}, err
		}
		if !tooLong {
			if len(buf)+len(chunk) > MaxLineLength {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return inputLine{TooLong: true}, nil
	}
	return inputLine{Text: string(buf)}, nil
}

func (sh *Shell) rejectLongLine() {
	logger.Warn("Rejected a line over %d bytes from %s", MaxLineLength, sh.opts.Source)
	res := Failure(errors.InvalidArgument(opRun, l10n.F(msgLineTooLong, MaxLineLength)))
	fmt.Fprintln(sh.out, sh.Render(res))
}

// Execute parses and dispatches one line, writes the rendered result and
// returns it.
func (sh *Shell) Execute(line string) Result {
	res := Dispatch(sh.sess, ParseLine(line))
	fmt.Fprintln(sh.out, sh.Render(res))
	return res
}

// Render formats a result as a single output line.
func (sh *Shell) Render(res Result) string {
	switch res.Status {
	case StatusSuccess:
		return sh.renderer.Success(res.Message)
	case StatusNotice:
		return sh.renderer.Notice(res.Message)
	default:
		return sh.renderer.Error(res.Message)
	}
}

func (sh *Shell) writePrompt() {
	if sh.opts.ShowPrompt {
		fmt.Fprint(sh.out, sh.renderer.Prompt(sh.opts.Prompt))
	}
}

// WriteFarewell writes the farewell line, if one is configured.
func (sh *Shell) WriteFarewell() {
	if sh.opts.Farewell == "" {
		return
	}
	if sh.opts.ShowPrompt {
		// the prompt left the cursor mid-line
		fmt.Fprintln(sh.out)
	}
	fmt.Fprintln(sh.out, sh.renderer.Farewell(l10n.T(sh.opts.Farewell)))
}
