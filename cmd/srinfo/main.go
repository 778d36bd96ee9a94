package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
)

var errApp = errors.New("application error")

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(BuildVersion),
		fang.WithCommit(BuildCommit)); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// flags holds the values of the persistent flags shared by every sub command.
type flags struct {
	configFile string
	lang       string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &flags{}

	rootCmd := &cobra.Command{
		Use:           "srinfo",
		Short:         "Honkai: Star Rail profile viewer",
		Long:          `srinfo - Fetch and display Honkai: Star Rail player profiles from the mihomo api`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVarP(&opts.lang, "lang", "l", "", "Language code (en, jp, cht, ...) or BCP 47 tag")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newProfileCmd(opts), newLanguagesCmd(), newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about srinfo",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "srinfo - Star Rail profile viewer\n\n") //nolint:errcheck
			fmt.Fprintf(out, "  Version: %s\n", BuildVersion)        //nolint:errcheck
			fmt.Fprintf(out, "  Commit:  %s\n", BuildCommit)         //nolint:errcheck
			fmt.Fprintf(out, "  Built:   %s\n", BuildDate)           //nolint:errcheck
			fmt.Fprintf(out, "  Runtime: %s\n\n", BuildGoVersion)    //nolint:errcheck
		},
	}
}
