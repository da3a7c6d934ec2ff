// Command namelint audits entity definition files for name problems:
// missing singulars, redundant plurals, and suspect plural overrides.
// It exits non-zero when any finding is reported.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"namesmith/internal/lexicon"
	"namesmith/internal/lint"

	"github.com/spf13/pflag"
)

var (
	// Version is set at build time via -ldflags "-X main.Version=...".
	Version = "dev"
	Commit  = "none"
)

func main() {
	findings, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "namelint: %v\n", err)
		os.Exit(2)
	}
	if findings > 0 {
		os.Exit(1)
	}
}

func run() (int, error) {
	definitions := pflag.String("definitions", "", "Path to a definitions file or directory (required)")
	format := pflag.String("format", "text", "Output format: text or json")
	showVersion := pflag.Bool("version", false, "Print version and exit")
	pflag.Parse()

	if *showVersion {
		fmt.Printf("namelint %s (%s)\n", Version, Commit)
		return 0, nil
	}

	if *definitions == "" {
		pflag.Usage()
		return 0, fmt.Errorf("--definitions is required")
	}

	source := lexicon.FileSource{Path: *definitions}
	defs, err := source.Load(context.Background())
	if err != nil {
		return 0, err
	}

	findings := lint.Audit(defs)
	if err := report(os.Stdout, *format, findings); err != nil {
		return 0, err
	}
	return len(findings), nil
}

func report(w *os.File, format string, findings []lint.Finding) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if findings == nil {
			findings = []lint.Finding{}
		}
		return enc.Encode(findings)
	case "text":
		for _, f := range findings {
			fmt.Fprintf(w, "%s: [%s] %s: %s\n", f.DefinitionID, f.Code, f.Field, f.Message)
		}
		if len(findings) > 0 {
			fmt.Fprintf(w, "%d finding(s)\n", len(findings))
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
