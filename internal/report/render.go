package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/conorfennell/knoldue/internal/domain"
)

// Header is the first row of every table.
var Header = []string{"Question", "Next Review"}

// Borders maps the configurable border names to lipgloss borders.
var Borders = map[string]lipgloss.Border{
	"ascii":    lipgloss.ASCIIBorder(),
	"normal":   lipgloss.NormalBorder(),
	"rounded":  lipgloss.RoundedBorder(),
	"markdown": lipgloss.MarkdownBorder(),
}

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// tabWidth matches the tab expansion lipgloss applies when drawing a cell.
// Tabs are expanded up front because column sizing counts them as zero width.
const tabWidth = 4

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// Render lays rows out as an aligned two-column table.
func Render(rows []domain.Row, border lipgloss.Border) string {
	t := table.New().
		Border(border).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cellStyle
		}).
		Headers(Header...)

	for _, row := range rows {
		t.Row(expandTabs(row.Question), expandTabs(row.NextReview))
	}
	return t.String()
}
