// Package web renders a generated round as a standalone HTML page.
package web

import (
	"embed"
	"html/template"
	"io"

	"github.com/fadilmartias/bizsim/internal/simulation"
	"github.com/fadilmartias/bizsim/internal/util"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"cn":        util.ClassNames,
	"classIf":   util.ClassIf,
	"riskClass": RiskClass,
	"humanize":  util.Humanize,
	"money":     util.FormatNumber,
}).ParseFS(templateFS, "templates/*.html"))

type Page struct {
	Simulation *simulation.Simulation
	Context    simulation.Context
	Source     string
	Round      int
}

// Render writes the round page for p to w.
func Render(w io.Writer, p Page) error {
	return pages.ExecuteTemplate(w, "simulation.html", p)
}

// RiskClass returns the badge classes for a risk level.
func RiskClass(level simulation.RiskLevel) string {
	base := "badge rounded px-2 text-xs"
	switch level {
	case simulation.RiskHigh:
		return util.ClassNames(base, "badge-high text-red")
	case simulation.RiskLow:
		return util.ClassNames(base, "badge-low text-green")
	default:
		return util.ClassNames(base, "badge-medium text-amber")
	}
}
