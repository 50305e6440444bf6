// internal/eval/command.go
package eval

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp"

	"github.com/screenlab/screeneval/internal/appconfig"
	"github.com/screenlab/screeneval/internal/logging"
	"github.com/screenlab/screeneval/internal/screening"
)

// RunEvaluateCommand is the CLI entry point for an evaluation run. The
// credential is resolved before anything else so a missing key aborts
// before the first case is touched.
func RunEvaluateCommand(cfg *appconfig.Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	apiKey, err := appconfig.APIKey()
	if err != nil {
		return err
	}

	if cfg.Debug {
		pp.Println(cfg)
	}

	logging.LogEvent("Evaluating %s against model %s", cfg.CasesFilePath(), cfg.ModelID())

	classifier := screening.NewClassifier(cfg, apiKey)
	_, err = Run(context.Background(), cfg, classifier, os.Stdout)
	return err
}

// RunCasesCommand loads and previews the case table without calling the
// service: a line per case plus warnings for unrecognized labels.
func RunCasesCommand(cfg *appconfig.Config, out io.Writer) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	cases, err := LoadCases(cfg.CasesFilePath())
	if err != nil {
		return err
	}

	unrecognized := 0
	for _, tc := range cases {
		fmt.Fprintf(out, "Case %s [%s] expected=%s\n", tc.ID, tc.WatchlistType, tc.Expected)
		if !tc.LabelRecognized {
			unrecognized++
			fmt.Fprintf(out, "  warning: label %q is neither TRUE nor FALSE\n", tc.RawLabel)
		}
	}
	fmt.Fprintf(out, "\n%d cases loaded from %s", len(cases), cfg.CasesFilePath())
	if unrecognized > 0 {
		fmt.Fprintf(out, " (%d with unrecognized labels)", unrecognized)
	}
	fmt.Fprintln(out)
	return nil
}
