// Package main provides the textenc command-line interface.
// It detects, prints, verifies and converts the encoding of text files.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/Cyclone1070/textenc/internal/config"
	"github.com/Cyclone1070/textenc/internal/file"
	"github.com/Cyclone1070/textenc/internal/fsutil"
)

// Exit codes.
const (
	exitOK           = 0
	exitFailure      = 1
	exitInvalidInput = 2
)

// fileSystem is what the file store needs from the OS.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string, limit int64) ([]byte, error)
	WriteFileAtomic(path string, content []byte, perm os.FileMode) error
	EnsureDirs(path string) error
}

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Config     *config.Config
	FS         fileSystem
	LoadConfig func(path string) (*config.Config, error)
	IsTerminal func(w io.Writer) bool
}

// store builds a file store over the current configuration.
func (d *Dependencies) store() *file.Store {
	return file.NewStore(d.FS, d.Config)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	// Load configuration (from defaults + ~/.config/textenc/config.json)
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	deps := &Dependencies{
		Config:     cfg,
		FS:         fsutil.NewOSFileSystem(),
		LoadConfig: config.NewLoader().LoadFile,
		IsTerminal: isTerminal,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, deps, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns its exit code.
func run(ctx context.Context, deps *Dependencies, args []string, stdout, stderr io.Writer) int {
	root := newRootCommand(deps)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errFilesFailed) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return exitCode(err)
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var invalid interface{ InvalidInput() bool }
	if errors.As(err, &invalid) && invalid.InvalidInput() {
		return exitInvalidInput
	}
	return exitFailure
}
