package web

import (
	"embed"
	"html/template"
	"io/fs"

	"tripbud/internal/planner"
	"tripbud/internal/types"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// refreshSeconds is how often a loading page polls for the result.
const refreshSeconds = 1

var funcs = template.FuncMap{
	"marker": func(c types.Category) string { return c.Marker() },
}

func parseTemplates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

func staticFiles() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

type page struct {
	Loading        bool
	RefreshSeconds int
	Form           types.TripRequest
	Error          string
	Results        *types.TripRecommendationResponse

	Interests    []types.Interest
	Durations    []types.Option[int]
	Budgets      []types.Option[types.Budget]
	TravelStyles []types.Option[types.TravelStyle]
}

func newPage(snap planner.Snapshot) page {
	p := page{
		Loading:        snap.Loading,
		RefreshSeconds: refreshSeconds,
		Form:           snap.View.Form(),
		Interests:      types.Interests,
		Durations:      types.Durations,
		Budgets:        types.Budgets,
		TravelStyles:   types.TravelStyles,
	}
	switch v := snap.View.(type) {
	case planner.FormStage:
		p.Error = v.Error
	case planner.ResultsStage:
		resp := v.Response
		p.Results = &resp
	}
	return p
}
