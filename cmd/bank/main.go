package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/janisto/kyc-bank-console/internal/bank"
	"github.com/janisto/kyc-bank-console/internal/common"
	"github.com/janisto/kyc-bank-console/internal/config"
	"github.com/janisto/kyc-bank-console/internal/console"
	"github.com/janisto/kyc-bank-console/internal/input"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

// app carries the process streams so tests can run a whole session in-process.
type app struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	configDir string
}

func main() {
	a := app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr, configDir: "."}
	os.Exit(a.execute(context.Background(), os.Args[1:]))
}

func (a app) execute(ctx context.Context, args []string) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := a.rootCmd()
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, input.ErrInterrupted):
		return exitInterrupted
	default:
		fmt.Fprintf(a.stderr, "error: %v\n", err)
		return exitError
	}
}

func (a app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bank",
		Short:         "Collect KYC details, open an account and run deposits and withdrawals in memory",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSession(cmd.Context())
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	})
	return root
}

func (a app) runSession(ctx context.Context) error {
	cfg, err := config.Load(a.configDir)
	if err != nil {
		return err
	}
	common.InitLogger(common.LogOptions{Level: cfg.LogLevel, Output: cfg.LogOutput})
	if err := common.Err(); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		// stderr and terminals reject fsync; nothing useful to report then.
		_ = common.Sync()
	}()

	out := console.NewPtermPresenter(a.stdout, cfg.ColorEnabled(isTerminal(a.stdout)))
	mgr := bank.NewManager(console.NewLineReader(a.stdin), out, bank.WithCurrency(cfg.Currency))

	err = mgr.Run(ctx)
	if errors.Is(err, input.ErrInterrupted) {
		fmt.Fprintln(a.stdout)
		out.Error("User ended the program, abruptly")
	}
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
