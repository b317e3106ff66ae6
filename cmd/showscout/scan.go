package main

import (
	"fmt"
	"os"
)

// Run executes the scan command against the wired scanner.
func (c *ScanCmd) Run(deps *Dependencies) error {
	report, err := deps.Scanner.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	summary := report.Summary()
	if summary == "" {
		summary = "No new sites found.\n"
	}

	if c.Output != "" {
		return os.WriteFile(c.Output, []byte(summary), 0644)
	}

	fmt.Fprint(deps.Stdout, summary)
	return nil
}
