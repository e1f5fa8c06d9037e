package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/htmlconv"
	"github.com/fwojciec/htmlconv/fs"
	hcslog "github.com/fwojciec/htmlconv/slog"
	"github.com/fwojciec/htmlconv/sprig"
	"github.com/fwojciec/htmlconv/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Overrides --db and HTMLCONV_DB when set.
	DBPath string

	// Environment files loaded before parsing flags. Missing files are skipped.
	EnvFiles []string

	// Input used to prompt for a file name.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	TagService        htmlconv.TagService
	ConversionService htmlconv.ConversionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFiles: []string{".env"},
		Stdin:    os.Stdin,
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
	if err := loadEnv(m.EnvFiles...); err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("htmlconv"),
		kong.Description("Extract HTML tags into SQLite and generate Go programs from them."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'htmlconv --help' to see available commands")
	}

	switch args[0] {
	case "help", "--help", "-h":
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	dbPath := m.DBPath
	if dbPath == "" {
		dbPath = cli.DB
	}

	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set HTMLCONV_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	m.TagService = sqlite.NewTagService(m.DB)
	m.ConversionService = sqlite.NewConversionService(m.DB)

	deps.DBPath = dbPath
	deps.Tags = m.TagService
	deps.Conversions = m.ConversionService
	deps.Reader = fs.NewDocumentReader()
	deps.Writer = fs.NewWriter()
	deps.Renderer = sprig.NewRenderer()

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Tags = hcslog.NewLoggingTagService(deps.Tags, logger)
		deps.Conversions = hcslog.NewLoggingConversionService(deps.Conversions, logger)
		deps.Renderer = hcslog.NewLoggingRenderer(deps.Renderer, logger)
	}

	return kongCtx.Run(deps)
}

// loadEnv loads variables from files without overriding the environment.
func loadEnv(files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}
