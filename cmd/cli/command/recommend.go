package command

import (
	"movierecommender/internal/logging"
	"movierecommender/internal/recommend"
	"movierecommender/internal/terminal"

	"github.com/spf13/cobra"
)

var (
	movieName  string
	movieGenre string
	movieCount string
	htmlOutput bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Get movies similar to one you like",
	Long: `Ask the recommendation API for movies similar to --name within --genre.
--count defaults to 5 when left out.`,
	Example: `  mrec recommend --name "The Matrix" --genre Sci-Fi
  mrec recommend -n Inception -g Sci-Fi -c 3 --html`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		view := terminal.NewView(cmd.OutOrStdout(), htmlOutput, cfg.GameURL)
		h := recommend.NewHandler(newAPIClient(), view, recommend.WithLogger(logging.Component("recommend")))

		in := recommend.Input{Name: movieName, Genre: movieGenre, Count: movieCount}
		if err := h.Activate(cmd.Context(), in); err != nil {
			// the view has already printed the alert or the error line
			return &shownError{err: err}
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().StringVarP(&movieName, "name", "n", "", "movie you liked")
	recommendCmd.Flags().StringVarP(&movieGenre, "genre", "g", "", "genre to search in")
	recommendCmd.Flags().StringVarP(&movieCount, "count", "c", "", "number of recommendations (default 5)")
	recommendCmd.Flags().BoolVar(&htmlOutput, "html", false, "print the results as HTML cards")
}
