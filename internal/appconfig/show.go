package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	active := fallback
	if cfg != nil {
		active = *cfg
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Cases File:      %s\n", active.CasesFilePath())
	fmt.Fprintf(out, "  Mismatch Log:    %s\n", active.MismatchLogFilePath())
	fmt.Fprintf(out, "  Model:           %s\n", active.ModelID())
	fmt.Fprintf(out, "  Base URL:        %s\n", active.ServiceBaseURL())
	fmt.Fprintf(out, "  Temperature:     %.2f\n", active.SamplingTemperature())
	fmt.Fprintf(out, "  Request Timeout: %s\n", active.RequestTimeout())
	fmt.Fprintf(out, "  Debug:           %v\n", active.Debug)
	fmt.Fprintf(out, "  Log File:        %s\n", active.LogFilePath())
}
