package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webgrab"
	"github.com/fwojciec/webgrab/crawl"
	"github.com/fwojciec/webgrab/goquery"
	webhttp "github.com/fwojciec/webgrab/http"
	webslog "github.com/fwojciec/webgrab/slog"
	"github.com/fwojciec/webgrab/sqlite"
	webyaml "github.com/fwojciec/webgrab/yaml"
	"github.com/google/uuid"
)

func main() {
	// Ctrl-C cancels the crawl; accumulated statistics are still printed.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Manifest database path. Set before calling Run().
	DBPath string

	// SQLite database used by the manifest service.
	DB *sqlite.DB

	// Manifest service for end-to-end testing.
	ManifestService webgrab.ManifestService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webgrab"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webgrab --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Resolve the preset table, with user presets merged over built-ins.
	deps.Presets = webgrab.Presets()
	if path := webyaml.FindPresetsFile(cli.PresetsFile); path != "" {
		presets, err := webyaml.LoadPresets(path)
		if err != nil {
			return fmt.Errorf("failed to load presets from %q: %w", path, err)
		}
		deps.Presets = presets
	}

	// Open the manifest database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WEBGRAB_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ManifestService = sqlite.NewManifestService(m.DB)
	deps.Manifest = m.ManifestService

	if cmd == "crawl" {
		var fetcher webgrab.Fetcher = webhttp.NewFetcher(
			webhttp.WithTimeout(cli.Crawl.Timeout),
			webhttp.WithUserAgent(webgrab.UserAgent),
		)
		if cli.Crawl.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			fetcher = webslog.NewLoggingFetcher(fetcher, logger)
		}

		deps.Crawler = &crawl.Crawler{
			Fetcher:  fetcher,
			Links:    goquery.NewExtractor(),
			Manifest: deps.Manifest,
			CrawlID:  uuid.New().String(),
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("WEBGRAB_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "webgrab.db"
	}
	dir := filepath.Join(home, ".webgrab")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "webgrab.db")
}
