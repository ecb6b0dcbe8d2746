// Package export renders a Position into downloadable documents: the plain
// text sheet, a printable PDF and an XLSX workbook.
package export

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/kingrea/hirekit/internal/position"
)

// Format selects the document type.
type Format string

const (
	FormatText Format = "txt"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatPDF, FormatXLSX}

// ParseFormat accepts a format name, ignoring case and a leading dot.
func ParseFormat(value string) (Format, error) {
	v := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(value)), ".")
	switch v {
	case "txt", "text":
		return FormatText, nil
	case "pdf":
		return FormatPDF, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("export: unknown format %q", value)
}

// Render produces the document bytes for p.
func Render(p position.Position, format Format) ([]byte, error) {
	switch format {
	case FormatText:
		return []byte(Text(p)), nil
	case FormatPDF:
		return PDF(p)
	case FormatXLSX:
		return XLSX(p)
	}
	return nil, fmt.Errorf("export: unknown format %q", format)
}

// FileName is Position-<title>.<ext> with every whitespace run in the title
// replaced by a single hyphen.
func FileName(p position.Position, format Format) string {
	var b strings.Builder
	inSpace := false
	for _, r := range p.Title {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return fmt.Sprintf("Position-%s.%s", b.String(), format)
}

// Text renders the sectioned plain-text sheet. Lines are joined with "\n"
// and there is no trailing newline.
func Text(p position.Position) string {
	lines := []string{
		"POSITION: " + p.Title,
		"Department: " + p.Department,
		"Reports To: " + p.ReportsTo,
		"Type: " + p.Type,
		"",
		"RESPONSIBILITIES:",
	}
	for i, r := range p.Responsibilities {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, r))
	}
	lines = append(lines, "", "REQUIRED SKILLS:")
	for _, s := range p.RequiredSkills {
		lines = append(lines, "  - "+s)
	}
	lines = append(lines, "", "BRAND VALUES:")
	for _, v := range p.BrandValues {
		lines = append(lines, "  - "+v)
	}
	lines = append(lines, "", "INTERVIEW QUESTIONS:")
	for i, q := range p.InterviewQuestions {
		lines = append(lines, fmt.Sprintf("  %d. [%s] %s", i+1, q.Category, q.Question))
	}
	lines = append(lines, "", "EVALUATION CRITERIA:")
	for _, c := range p.EvaluationCriteria {
		lines = append(lines, criterionLine(c))
	}
	lines = append(lines, "", "ONBOARDING PLAN:")
	for _, phase := range p.Onboarding {
		lines = append(lines, "", fmt.Sprintf("  %s:", phase.Phase))
		for _, t := range phase.Tasks {
			lines = append(lines, "    - "+t)
		}
	}
	lines = append(lines, "", "NOTES: "+p.Notes)
	return strings.Join(lines, "\n")
}

func criterionLine(c position.Criterion) string {
	return fmt.Sprintf("  - %s: %d%%", c.Name, c.Weight)
}
