package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/zhubert/dirshell/internal/config"
	"github.com/zhubert/dirshell/internal/logger"
	"github.com/zhubert/dirshell/internal/session"
	"github.com/zhubert/dirshell/internal/shell"
	"github.com/zhubert/dirshell/internal/ui"
)

var (
	debugMode             bool
	quietMode             bool
	noColor               bool
	configPath            string
	commandString         string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "dirshell",
	Short: "Interactive shell over a simulated directory tree",
	Long: `dirshell keeps an in-memory tree of directories and reads one command
per line from standard input. Nothing is written to disk; the tree lives
for as long as the process does.

Commands:
` + commandHelp(),
	RunE:          runShell,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.dirshell/config.yaml)")
	rootCmd.Flags().StringVarP(&commandString, "command", "c", "", "Run ';'-separated commands and exit")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("dirshell %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("dirshell %s\n", version)
}

func commandHelp() string {
	var sb strings.Builder
	for _, def := range shell.Commands() {
		fmt.Fprintf(&sb, "  %-14s %s\n", def.Usage, def.Description)
	}
	return sb.String()
}

// loadConfig reads the config file and starts the logger it names.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("Config rejected: %v", err)
		return nil, err
	}
	if cfg.LogPath != "" {
		if err := logger.Init(cfg.LogPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}
	return cfg, nil
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newRenderer(cfg *config.Config, out io.Writer) *ui.Renderer {
	color := cfg.Color && !noColor && isTerminal(out)
	return ui.NewRenderer(cfg.Prefixes, color)
}

func runShell(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	defer logger.Close()

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	renderer := newRenderer(cfg, out)
	sess := session.New()
	logger.Info("dirshell %s started, session %s", version, sess.ID)

	if commandString != "" {
		sh := shell.New(sess, strings.NewReader(""), out, renderer, shell.Options{
			Farewell: cfg.Farewell,
		})
		runCommandString(sh, commandString)
		return nil
	}

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sh := shell.New(sess, in, out, renderer, shell.Options{
		Prompt:     cfg.Prompt,
		ShowPrompt: isTerminal(in) || cfg.ForcePrompt,
		Farewell:   cfg.Farewell,
		Source:     "stdin",
	})
	return sh.Run(ctx)
}

// runCommandString executes each ';'-separated command in order, then
// writes the farewell as if input had ended.
func runCommandString(sh *shell.Shell, s string) {
	for _, line := range strings.Split(s, ";") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		sh.Execute(line)
	}
	sh.WriteFarewell()
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
