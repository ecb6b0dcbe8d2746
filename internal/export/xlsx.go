package export

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/kingrea/hirekit/internal/position"
)

// Sheet names in the exported workbook.
const (
	SheetPosition   = "Position"
	SheetScorecard  = "Scorecard"
	SheetOnboarding = "Onboarding"
)

// XLSX renders a workbook with the position summary, a scorecard whose
// Weighted column multiplies weight by the score typed in, and the
// onboarding plan.
func XLSX(p position.Position) (out []byte, err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "export: close workbook")
		}
	}()
	if err := f.SetSheetName("Sheet1", SheetPosition); err != nil {
		return nil, errors.Wrap(err, "export: rename sheet")
	}
	if err := writePositionSheet(f, p); err != nil {
		return nil, errors.Wrap(err, "export: position sheet")
	}
	if _, err := f.NewSheet(SheetScorecard); err != nil {
		return nil, errors.Wrap(err, "export: add scorecard sheet")
	}
	if err := writeScorecardSheet(f, p.EvaluationCriteria); err != nil {
		return nil, errors.Wrap(err, "export: scorecard sheet")
	}
	if _, err := f.NewSheet(SheetOnboarding); err != nil {
		return nil, errors.Wrap(err, "export: add onboarding sheet")
	}
	if err := writeOnboardingSheet(f, p.Onboarding); err != nil {
		return nil, errors.Wrap(err, "export: onboarding sheet")
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "export: write workbook")
	}
	return buf.Bytes(), nil
}

func writePositionSheet(f *excelize.File, p position.Position) error {
	sheet := SheetPosition
	row, err := writeHeader(f, sheet, 0, []string{"Field", "Value"})
	if err != nil {
		return err
	}
	put := func(label string, value any) error {
		row++
		if err := writeColumn(f, sheet, 1, row, label); err != nil {
			return err
		}
		return writeColumn(f, sheet, 2, row, value)
	}
	for _, kv := range []struct {
		label string
		value string
	}{
		{"Title", p.Title},
		{"Department", p.Department},
		{"Reports To", p.ReportsTo},
		{"Type", p.Type},
	} {
		if err := put(kv.label, kv.value); err != nil {
			return err
		}
	}
	for i, r := range p.Responsibilities {
		if err := put(fmt.Sprintf("Responsibility %d", i+1), r); err != nil {
			return err
		}
	}
	for _, s := range p.RequiredSkills {
		if err := put("Required Skill", s); err != nil {
			return err
		}
	}
	for _, v := range p.BrandValues {
		if err := put("Brand Value", v); err != nil {
			return err
		}
	}
	for _, q := range p.InterviewQuestions {
		if err := put("Question: "+q.Category, q.Question); err != nil {
			return err
		}
	}
	return put("Notes", p.Notes)
}

func writeScorecardSheet(f *excelize.File, criteria []position.Criterion) error {
	sheet := SheetScorecard
	row, err := writeHeader(f, sheet, 0, scorecardHeaders)
	if err != nil {
		return err
	}
	first := row + 1
	for _, c := range criteria {
		row++
		if err := writeColumn(f, sheet, 1, row, c.Name); err != nil {
			return err
		}
		if err := writeColumn(f, sheet, 2, row, c.Weight); err != nil {
			return err
		}
		weighted, err := excelize.CoordinatesToCellName(4, row)
		if err != nil {
			return err
		}
		if err := f.SetCellFormula(sheet, weighted, fmt.Sprintf("IF(C%d=\"\",\"\",B%d*C%d/100)", row, row, row)); err != nil {
			return err
		}
	}
	row++
	if err := writeColumn(f, sheet, 1, row, "Total"); err != nil {
		return err
	}
	if len(criteria) == 0 {
		return nil
	}
	last := row - 1
	total, err := excelize.CoordinatesToCellName(2, row)
	if err != nil {
		return err
	}
	if err := f.SetCellFormula(sheet, total, fmt.Sprintf("SUM(B%d:B%d)", first, last)); err != nil {
		return err
	}
	weightedTotal, err := excelize.CoordinatesToCellName(4, row)
	if err != nil {
		return err
	}
	return f.SetCellFormula(sheet, weightedTotal, fmt.Sprintf("SUM(D%d:D%d)", first, last))
}

func writeOnboardingSheet(f *excelize.File, phases []position.OnboardingPhase) error {
	sheet := SheetOnboarding
	row, err := writeHeader(f, sheet, 0, []string{"Phase", "Task", "Done"})
	if err != nil {
		return err
	}
	for _, phase := range phases {
		for _, task := range phase.Tasks {
			row++
			if err := writeColumn(f, sheet, 1, row, phase.Phase); err != nil {
				return err
			}
			if err := writeColumn(f, sheet, 2, row, task); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeColumn(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func writeHeader(f *excelize.File, sheet string, row int, headers []string) (int, error) {
	row++
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Font:      &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return row, err
	}
	cellFirst, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return row, err
	}
	cellLast, err := excelize.CoordinatesToCellName(len(headers), row)
	if err != nil {
		return row, err
	}
	if err := f.SetCellStyle(sheet, cellFirst, cellLast, style); err != nil {
		return row, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return row, err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 30); err != nil {
		return row, err
	}
	for idx, value := range headers {
		if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
			return row, err
		}
	}
	return row, nil
}
