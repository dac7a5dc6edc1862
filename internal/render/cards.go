// Package render turns recommendation results into the markup shown in the
// results area. Field values are inserted exactly as the API sent them.
package render

import (
	"fmt"
	"strings"
	"text/template"

	"movierecommender/internal/recommend"
)

const (
	// NoResults is the whole results area for an empty result set.
	NoResults = "<p>No recommendations found.</p>"

	resultsHeading = "<h2>Recommended Movies:</h2>"
	errorPrefix    = "Error fetching recommendations: "
)

var cardTmpl = template.Must(template.New("card").Parse(`
<div class="movie-card">
    <h2>{{.Name}}</h2>
    <p><strong>Rating:</strong> {{.Rating}}</p>
    <p><strong>Description:</strong> {{.Description}}</p>
    <p><strong>Director:</strong> {{.Director}}</p>
    <p><strong>Actors:</strong> {{.Actors}}</p>
    <p><strong>Similarity:</strong> {{.Similarity}}</p>
</div>
`))

var textTmpl = template.Must(template.New("text").Parse(`{{.Name}}
  Rating:      {{.Rating}}
  Description: {{.Description}}
  Director:    {{.Director}}
  Actors:      {{.Actors}}
  Similarity:  {{.Similarity}}
`))

// Results renders one card per recommendation in server order, or
// NoResults when recs is empty.
func Results(recs []recommend.Recommendation) string {
	if len(recs) == 0 {
		return NoResults
	}

	var b strings.Builder
	b.WriteString(resultsHeading)
	for _, rec := range recs {
		// writes to a strings.Builder cannot fail and the template only
		// reads plain fields
		_ = cardTmpl.Execute(&b, rec)
	}
	return b.String()
}

// Error renders msg in the error-styled message area.
func Error(msg string) string {
	return fmt.Sprintf(`<p class="error-text">%s%s</p>`, errorPrefix, msg)
}

// Fragment renders the results area for s. Non-terminal states render nothing.
func Fragment(s recommend.State) string {
	switch s.Phase {
	case recommend.PhaseResults, recommend.PhaseEmpty:
		return Results(s.Results)
	case recommend.PhaseFailed:
		return Error(s.Error)
	default:
		return ""
	}
}

// Text renders recommendations as plain-text cards for a terminal.
func Text(recs []recommend.Recommendation) string {
	if len(recs) == 0 {
		return "No recommendations found.\n"
	}

	var b strings.Builder
	b.WriteString("Recommended Movies:\n\n")
	for i, rec := range recs {
		if i > 0 {
			b.WriteString(strings.Repeat("-", 50))
			b.WriteString("\n")
		}
		_ = textTmpl.Execute(&b, rec)
	}
	return b.String()
}
