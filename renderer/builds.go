package renderer

import (
	"fmt"

	"github.com/hgrv/partlog"
)

// BuildRow is one saved build of the builds table.
type BuildRow struct {
	ID    string
	Name  string
	On    string
	Parts int
	Total string
}

// BuildsReport holds everything the saved-builds template needs.
type BuildsReport struct {
	Rows []BuildRow
}

// NewBuildsReport derives the saved-builds table, in stored order.
func NewBuildsReport(builds []partlog.SavedBuild) *BuildsReport {
	report := &BuildsReport{}
	for _, b := range builds {
		report.Rows = append(report.Rows, BuildRow{
			ID:    b.ID,
			Name:  b.Name,
			On:    b.On.String(),
			Parts: len(b.Parts),
			Total: partlog.TotalCost(b.Parts).String(),
		})
	}
	return report
}

// BuildsMarkdown renders the saved-builds table to a markdown string.
func BuildsMarkdown(report *BuildsReport) string {
	if len(report.Rows) == 0 {
		return fmt.Sprintln("No saved builds.")
	}
	return renderTemplate("builds", "builds.md", nil, report)
}
