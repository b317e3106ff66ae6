package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/showscout"
	"github.com/fwojciec/showscout/fs"
	"github.com/fwojciec/showscout/github"
	"github.com/fwojciec/showscout/goquery"
	shhttp "github.com/fwojciec/showscout/http"
	"github.com/fwojciec/showscout/imaging"
	"github.com/fwojciec/showscout/rod"
	"github.com/fwojciec/showscout/scan"
	shslog "github.com/fwojciec/showscout/slog"
)

func main() {
	ctx := context.Background()

	if err := Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Run executes the CLI with the given arguments.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("showscout"),
		kong.Description("Discover new Astro sites from a showcase discussion."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'showscout --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Missing credential is a fatal startup error: no work starts.
	token := os.Getenv("SHOWSCOUT_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		fmt.Fprintln(stderr, "Hint: Set SHOWSCOUT_TOKEN or GITHUB_TOKEN to a GitHub token with discussion read access")
		return showscout.Errorf(showscout.EUNAUTHORIZED, "GitHub token not set")
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	detector := goquery.NewDetector()
	classifier := shslog.NewLoggingClassifier(
		shhttp.NewClassifier(detector,
			shhttp.WithLimiter(scan.NewHostLimiter(cli.Scan.RPS)),
		),
		logger,
	)
	discussions := shslog.NewLoggingDiscussionService(
		github.NewDiscussionService(token),
		logger,
	)

	deps.Scanner = &scan.Scanner{
		Discussions: discussions,
		Extractor:   goquery.NewExtractor(),
		Classifier:  classifier,
		Images:      imaging.NewEncoder(cli.Scan.ImageDir, imaging.WithWebPrefix(cli.Scan.ImagePrefix)),
		Entries:     fs.NewStore(cli.Scan.ContentDir),
		Logger:      logger,
		Org:         cli.Scan.Org,
		Repo:        cli.Scan.Repo,
		Discussion:  cli.Scan.Discussion,
		Deny:        scan.DenySet(scan.DefaultDenyOrigins, cli.Scan.Deny),
		DryRun:      cli.Scan.DryRun,
	}

	// The browser session lives for the whole run and is released exactly
	// once, even if a capture inside the run fails.
	if !cli.Scan.DryRun {
		capturer, err := rod.NewCapturer()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer capturer.Close()
		deps.Scanner.Capturer = capturer
	}

	return kongCtx.Run(deps)
}
