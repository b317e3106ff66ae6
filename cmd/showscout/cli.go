package main

import (
	"context"
	"io"

	"github.com/fwojciec/showscout/scan"
)

// Dependencies holds the wired scanner and I/O for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Scanner *scan.Scanner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scan    ScanCmd `cmd:"" help:"Scan a showcase discussion for new Astro sites"`
	Verbose bool    `short:"v" help:"Enable debug logging"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Discussion  int      `arg:"" help:"Discussion number to scan"`
	Org         string   `default:"withastro" help:"Discussion organization"`
	Repo        string   `default:"astro.build" help:"Discussion repository"`
	ContentDir  string   `default:"src/content/showcase" help:"Showcase entry directory"`
	ImageDir    string   `default:"public/images/showcase" help:"Screenshot output directory"`
	ImagePrefix string   `default:"/images/showcase" help:"Site-relative image path prefix"`
	Deny        []string `help:"Additional deny-listed origins (repeatable)"`
	Output      string   `short:"o" help:"Write the summary to a file instead of stdout"`
	DryRun      bool     `help:"Classify candidates without capturing or persisting"`
	RPS         float64  `default:"1" help:"Classification requests per second per host"`
}
