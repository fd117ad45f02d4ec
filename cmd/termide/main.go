package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/termide"
	"github.com/iw2rmb/termide/clipboard"
	"github.com/iw2rmb/termide/editor"
	"github.com/iw2rmb/termide/history"
	"github.com/iw2rmb/termide/textfile"
)

type options struct {
	path             string
	logFile          string
	clipboardTimeout time.Duration
	noSystemClip     bool
	historyLimit     int
	theme            string
	version          bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opt options
	fs := flag.NewFlagSet("termide", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: termide [flags] [file]")
		fs.PrintDefaults()
	}
	fs.StringVar(&opt.logFile, "log", os.Getenv("TERMIDE_LOG_FILE"), "write JSON logs to this file (env TERMIDE_LOG_FILE)")
	fs.DurationVar(&opt.clipboardTimeout, "clipboard-timeout", 2*time.Second, "bound on every system clipboard call")
	fs.BoolVar(&opt.noSystemClip, "no-system-clipboard", false, "use the session clipboard only")
	fs.IntVar(&opt.historyLimit, "history-limit", 1000, "max undo groups kept; 0 or negative disables undo")
	fs.StringVar(&opt.theme, "theme", "monokai", "chroma syntax style; empty disables highlighting")
	fs.BoolVar(&opt.version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return opt, err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return opt, errors.New("at most one file")
	}
	opt.path = fs.Arg(0)
	return opt, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opt, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if opt.version {
		_, err := fmt.Fprintln(stdout, termide.Banner())
		return err
	}

	log, closeLog, err := openLogger(opt.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	file := textfile.File{Path: opt.path}
	if opt.path != "" {
		log.Info("open.attempt", "file", opt.path)
		file, err = textfile.Load(opt.path)
		if err != nil {
			log.Error("open.error", "file", opt.path, "err", err)
			return err
		}
		log.Info("open.success", "file", opt.path, "exists", file.Exists, "ending", file.Ending)
	}

	clipOpt := clipboard.Options{Timeout: opt.clipboardTimeout, Logger: log}
	if opt.noSystemClip {
		clipOpt.Probers = []clipboard.Prober{}
	}
	ed := editor.New(file.Text, editor.Options{
		Clipboard: clipboard.New(clipOpt),
		History:   historyOptions(opt),
		Logger:    log,
	})

	p := tea.NewProgram(newApp(file, ed, log, opt.theme), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error("program.error", "err", err)
		return err
	}
	return nil
}

// historyOptions maps the flag onto history.Options, where a zero Limit
// means the default rather than no undo.
func historyOptions(opt options) history.Options {
	limit := opt.historyLimit
	if limit == 0 {
		limit = -1
	}
	return history.Options{Limit: limit}
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		_, _ = os.Stderr.WriteString("termide: " + err.Error() + "\n")
		os.Exit(1)
	}
}

// openLogger returns a JSON logger writing to path, or a discarding one when
// path is empty. The terminal belongs to the editor, so logs never go there.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	h := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { _ = f.Close() }, nil
}
