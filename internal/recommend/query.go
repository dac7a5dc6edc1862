package recommend

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultCount is used when the count field is left blank.
const DefaultCount = 5

// MissingInputMessage is shown when name or genre is blank.
const MissingInputMessage = "Please enter both movie name and genre!"

// Input holds the raw values read from the three input fields.
type Input struct {
	Name  string `form:"name" json:"name"`
	Genre string `form:"genre" json:"genre"`
	Count string `form:"count" json:"count"`
}

// Query is a validated recommendation request.
type Query struct {
	Name  string `json:"name"`
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// ParseQuery trims the raw input and builds a Query.
// Name and genre are required; a blank count falls back to DefaultCount.
// Count is not bounds-checked.
func ParseQuery(in Input) (Query, error) {
	name := strings.TrimSpace(in.Name)
	genre := strings.TrimSpace(in.Genre)
	if name == "" || genre == "" {
		return Query{}, &ValidationError{Message: MissingInputMessage}
	}

	count := DefaultCount
	if raw := strings.TrimSpace(in.Count); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return Query{}, &ValidationError{Message: "Count must be a whole number."}
		}
		count = parsed
	}

	return Query{Name: name, Genre: genre, Count: count}, nil
}

// RecommendPath is the endpoint path on the recommendation API.
const RecommendPath = "/api/recommend"

// Target returns the request target (path and query) for q.
// Parameters keep the order name, genre, count.
func Target(q Query) string {
	var b strings.Builder
	b.WriteString(RecommendPath)
	b.WriteString("?name=")
	b.WriteString(escapeComponent(q.Name))
	b.WriteString("&genre=")
	b.WriteString(escapeComponent(q.Genre))
	b.WriteString("&count=")
	b.WriteString(strconv.Itoa(q.Count))
	return b.String()
}

// componentUnescaper undoes url.QueryEscape for the characters that stay
// literal in a URI component: space is %20, and !'()* are left as-is.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escapeComponent percent-encodes s for use as a query value.
func escapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
