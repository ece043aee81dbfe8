package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/ndsanders/pyvgk/pkg"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	casePath    string
	toolDir     string
	timeoutSecs float64
	deckOnly    bool
	solve       bool
	logLevel    string
	rootCmd     *cobra.Command
	versionFlag bool
)

func getRunnerTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "pyvgk-runner",
		Short: "Drive ESDU VGK aerofoil analysis runs",
		Long:  `Drive ESDU VGK aerofoil analysis runs`,
		Run:   runCase,
	}

	rootCmd.Flags().StringVarP(&casePath, "case", "c", "", "Path to the JSON run case (required)")
	rootCmd.Flags().StringVarP(&toolDir, "dir", "d", ".", "Directory containing vgkcon.exe and vgk.exe")
	rootCmd.Flags().Float64VarP(&timeoutSecs, "timeout", "t", 5, "Seconds to wait for each tool before aborting")
	rootCmd.Flags().BoolVar(&deckOnly, "deck-only", false, "Print the assembled input deck and exit")
	rootCmd.Flags().BoolVar(&solve, "solve", false, "Run vgk.exe on the .sir artifact after vgkcon.exe succeeds")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	if err := rootCmd.MarkFlagRequired("case"); err != nil {
		panic(err)
	}
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("pyvgk-runner %s\n", version)
		fmt.Printf("Built: %s\n", getRunnerTimestamp())
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCase(cmd *cobra.Command, args []string) {
	if versionFlag {
		fmt.Printf("pyvgk-runner %s\n", version)
		fmt.Printf("Built: %s\n", getRunnerTimestamp())
		return
	}

	timeout := time.Duration(timeoutSecs * float64(time.Second))
	if code := pkg.RunCaseWithLogLevel(casePath, toolDir, timeout, deckOnly, solve, logLevel); code != 0 {
		os.Exit(code)
	}
}
