package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"github.com/kingrea/hirekit/internal/position"
	"github.com/kingrea/hirekit/internal/questions"
)

const (
	pdfFont       = "Helvetica"
	pdfLineHeight = 6.0
)

var scorecardHeaders = []string{"Criteria", "Weight", "Score (1-5)", "Weighted"}

// PDF renders the printable sheet: every text section plus a blank
// scorecard table to fill in during the interview.
func PDF(p position.Position) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("export: pdf panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(p.DisplayTitle(), true)
	pdf.SetCreationDate(p.UpdatedAt)
	pdf.SetModificationDate(p.UpdatedAt)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(pdfFont, "B", 18)
	pdf.MultiCell(0, 9, tr(p.DisplayTitle()), "", "L", false)
	pdf.SetFont(pdfFont, "", 11)
	for _, line := range []string{
		"Department: " + p.Department,
		"Reports To: " + p.ReportsTo,
		"Type: " + p.Type,
	} {
		pdf.MultiCell(0, pdfLineHeight, tr(line), "", "L", false)
	}

	numbered := make([]string, len(p.Responsibilities))
	for i, r := range p.Responsibilities {
		numbered[i] = fmt.Sprintf("%d. %s", i+1, r)
	}
	pdfSection(pdf, tr, "Responsibilities", numbered)
	pdfSection(pdf, tr, "Required Skills", bullets(p.RequiredSkills))
	pdfSection(pdf, tr, "Brand Values", bullets(p.BrandValues))

	pdfHeading(pdf, tr, "Interview Questions")
	for _, group := range questions.GroupByCategory(p.InterviewQuestions) {
		pdf.SetFont(pdfFont, "B", 11)
		pdf.MultiCell(0, pdfLineHeight, tr(group.Category+" Questions"), "", "L", false)
		pdf.SetFont(pdfFont, "", 11)
		for i, q := range group.Questions {
			pdf.MultiCell(0, pdfLineHeight, tr(fmt.Sprintf("%d. %s", i+1, q)), "", "L", false)
		}
	}

	pdfHeading(pdf, tr, "Candidate Evaluation Scorecard")
	pdfScorecard(pdf, tr, p.EvaluationCriteria)

	pdfHeading(pdf, tr, "30/60/90 Day Onboarding Plan")
	for _, phase := range p.Onboarding {
		pdf.SetFont(pdfFont, "B", 11)
		pdf.MultiCell(0, pdfLineHeight, tr(phase.Phase), "", "L", false)
		pdf.SetFont(pdfFont, "", 11)
		for _, task := range phase.Tasks {
			pdf.MultiCell(0, pdfLineHeight, tr("[  ] "+task), "", "L", false)
		}
	}

	if p.Notes != "" {
		pdfHeading(pdf, tr, "Notes")
		pdf.MultiCell(0, pdfLineHeight, tr(p.Notes), "", "L", false)
	}

	if pdf.Error() != nil {
		return nil, errors.Wrap(pdf.Error(), "export: build pdf")
	}
	buf := new(bytes.Buffer)
	if err := pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "export: write pdf")
	}
	return buf.Bytes(), nil
}

func pdfHeading(pdf *fpdf.Fpdf, tr func(string) string, title string) {
	pdf.Ln(4)
	pdf.SetFont(pdfFont, "B", 13)
	pdf.SetTextColor(13, 148, 136)
	pdf.MultiCell(0, 8, tr(title), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont(pdfFont, "", 11)
}

func pdfSection(pdf *fpdf.Fpdf, tr func(string) string, title string, lines []string) {
	pdfHeading(pdf, tr, title)
	for _, line := range lines {
		pdf.MultiCell(0, pdfLineHeight, tr(line), "", "L", false)
	}
}

func pdfScorecard(pdf *fpdf.Fpdf, tr func(string) string, criteria []position.Criterion) {
	widths := []float64{90, 25, 35, 30}
	pdf.SetFont(pdfFont, "B", 11)
	pdf.SetFillColor(243, 244, 246)
	for i, h := range scorecardHeaders {
		align := "C"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 8, tr(h), "1", 0, align, true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont(pdfFont, "", 11)
	for _, c := range criteria {
		pdf.CellFormat(widths[0], 8, tr(c.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, strconv.Itoa(c.Weight)+"%", "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 8, "", "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 8, "", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.SetFont(pdfFont, "I", 9)
	pdf.MultiCell(0, 5, tr("Score 1-5 for each criteria, then multiply by weight."), "", "L", false)
	pdf.SetFont(pdfFont, "", 11)
}

func bullets(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = "- " + item
	}
	return out
}
