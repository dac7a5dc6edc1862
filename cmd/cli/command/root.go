package command

// root.go defines the root command for the mrec CLI.
// set up the global flags and configuration here.

import (
	"errors"
	"fmt"
	"io"
	"os"

	"movierecommender/internal/browser"
	"movierecommender/internal/client"
	"movierecommender/internal/config"
	"movierecommender/internal/logging"

	"github.com/spf13/cobra"
)

var (
	apiURL  string // Global flag for recommendation API URL, overrides RECOMMEND_API_URL
	envFile string // .env file path
	verbose bool   // debug logging

	cfg *config.Config

	// opener is swapped in tests
	opener browser.Opener = browser.System{}
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mrec",
	Short: "mrec - movie recommendations from the command line",
	Long: `mrec asks the movie recommendation API for films similar to one you like.

Use "mrec recommend --name <movie> --genre <genre>" to get recommendations and
"mrec play" to pass the time with a game.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig(envFile)
		if err != nil {
			return err
		}
		if apiURL != "" {
			loaded.RecommendAPIURL = apiURL
		}
		if verbose {
			loaded.LogLevel = "debug"
		} else {
			loaded.LogLevel = "error"
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded

		logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: cmd.ErrOrStderr()})
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints err unless the command already showed it.
func reportError(w io.Writer, err error) {
	var shown *shownError
	if errors.As(err, &shown) {
		return
	}
	fmt.Fprintln(w, err) // Print error to standard error
}

// shownError marks a failure the command has already reported to the user.
// Execute exits non-zero without printing it again.
type shownError struct {
	err error
}

func (e *shownError) Error() string { return e.err.Error() }

func (e *shownError) Unwrap() error { return e.err }

func run(args []string, stdout, stderr io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SilenceErrors = true
	return rootCmd.Execute()
}

// newAPIClient builds the recommendation client from the loaded config.
func newAPIClient() *client.RecommendClient {
	return client.NewRecommendClient(cfg.RecommendAPIURL,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithRateLimit(cfg.ClientRateLimit, cfg.ClientRateBurst),
		client.WithLogger(logging.Component("client")),
	)
}

func init() {
	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "recommendation API URL (default $RECOMMEND_API_URL or http://localhost:8080)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional .env file with configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests and responses")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(playCmd)
}
