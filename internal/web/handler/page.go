package handler

import (
	"html/template"
	"net/http"
	"sync"

	"movierecommender/internal/recommend"
	"movierecommender/internal/render"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PageTemplate holds the search page. "page" renders it whole; "page-top"
// and "page-done" render it in two parts so the loading state can reach the
// browser before the request finishes. The results area receives the
// rendered fragment unescaped.
var PageTemplate = template.Must(template.New("movierecommender").Parse(`
{{- define "page-top" -}}
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>Movie Recommender</title>
    <style>.hidden { display: none; }</style>
</head>
<body>
    <h1>Movie Recommender</h1>
    <form action="/recommend" method="get">
        <input id="movieName" name="name" placeholder="Movie name" value="{{.Input.Name}}">
        <input id="movieGenre" name="genre" placeholder="Genre" value="{{.Input.Genre}}">
        <input id="count" name="count" type="number" placeholder="5" value="{{.Input.Count}}">
        <button id="recommendButton" type="submit">Recommend</button>
    </form>
    {{if .Alert}}<p id="alert" class="alert" role="alert">{{.Alert}}</p>{{end}}
    {{if .Notice}}<p id="notice" class="notice">{{.Notice}}</p>{{end}}
    <div id="loading"{{if not .State.Loading}} class="hidden"{{end}}>Loading recommendations...</div>
    <a id="playGame"{{if not .State.PlayGame}} class="hidden"{{end}} href="/play" target="_blank" rel="noopener">Play a game while you wait</a>
{{end -}}

{{- define "page-results" -}}
    <div id="results">{{.Results}}</div>
</body>
</html>
{{end -}}

{{- define "page" -}}
{{template "page-top" .}}{{template "page-results" .}}
{{- end -}}

{{- define "page-done" -}}
    <style>#loading, #playGame { display: none; }</style>
{{template "page-results" .}}
{{- end -}}
`))

// PageData is what PageTemplate renders.
type PageData struct {
	Input   recommend.Input
	State   recommend.State
	Results template.HTML
	Alert   string
	Notice  string
}

func pageData(in recommend.Input, s recommend.State) PageData {
	return PageData{
		Input: in,
		State: s,
		// API fields are shown exactly as sent
		Results: template.HTML(render.Fragment(s)),
	}
}

// pageView streams one activation to the browser. The loading state is
// written and flushed as the top of the page; the terminal state closes it.
// An activation that never starts loading writes nothing, and the caller
// renders the whole page instead.
type pageView struct {
	mu      sync.Mutex
	w       gin.ResponseWriter
	in      recommend.Input
	log     zerolog.Logger
	state   recommend.State
	alert   string
	started bool
}

func newPageView(w gin.ResponseWriter, in recommend.Input, log zerolog.Logger) *pageView {
	return &pageView{w: w, in: in, log: log, state: recommend.IdleState()}
}

func (v *pageView) Render(s recommend.State) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = s

	switch {
	case s.Phase == recommend.PhaseLoading && !v.started:
		v.started = true
		v.w.Header().Set("Content-Type", "text/html; charset=utf-8")
		v.w.WriteHeader(http.StatusOK)
		v.execute("page-top", pageData(v.in, s))
		v.w.Flush()
	case s.Terminal() && v.started:
		v.execute("page-done", pageData(v.in, s))
		v.w.Flush()
	}
}

func (v *pageView) Alert(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.alert = message
}

// streamed reports whether the page has already been written.
func (v *pageView) streamed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.started
}

// data is the whole page for an activation that was not streamed.
func (v *pageView) data() PageData {
	v.mu.Lock()
	defer v.mu.Unlock()
	d := pageData(v.in, v.state)
	d.Alert = v.alert
	return d
}

func (v *pageView) execute(name string, data PageData) {
	if err := PageTemplate.ExecuteTemplate(v.w, name, data); err != nil {
		v.log.Debug().Err(err).Str("template", name).Msg("page write failed")
	}
}
