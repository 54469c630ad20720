package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/zhubert/dirshell/internal/config"
	"github.com/zhubert/dirshell/internal/errors"
	"github.com/zhubert/dirshell/internal/logger"
	"github.com/zhubert/dirshell/internal/session"
	"github.com/zhubert/dirshell/internal/shell"
)

var echoCommands bool

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Run commands from a file",
	Long: `Reads commands from a file, one per line, against a fresh tree and
prints one result line per command. With --echo each command is printed
after the prompt first, so the output reads like an interactive session.`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	runCmd.Flags().BoolVarP(&echoCommands, "echo", "e", false, "Print each command before its result")
	rootCmd.AddCommand(runCmd)
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	defer logger.Close()

	return runScriptFile(contextOf(cmd), cfg, args[0], cmd.OutOrStdout(), echoCommands)
}

// runScriptFile allows injecting the output writer for testing
func runScriptFile(ctx context.Context, cfg *config.Config, path string, out io.Writer, echo bool) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.E(errors.Op("cmd.Run"), errors.KindIO, fmt.Sprintf("cannot open script %s", path), err)
	}
	defer f.Close()

	sess := session.New()
	logger.Info("running script %s in session %s", path, sess.ID)

	sh := shell.New(sess, f, out, newRenderer(cfg, out), shell.Options{
		Prompt:     cfg.Prompt,
		ShowPrompt: echo,
		Echo:       echo,
		Farewell:   cfg.Farewell,
		Source:     path,
	})
	return sh.Run(ctx)
}
