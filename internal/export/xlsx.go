package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/rsunkara/eci-extract/internal/extract"
)

const sheet = "Results"

var headers = []string{
	"Constituency No",
	"Constituency Name",
	"Total Electors",
	"SL No",
	"Candidate Name",
	"Gender",
	"Age",
	"Category",
	"Party",
	"Symbol",
	"Total Votes Polled",
	"Valid Votes",
	"General Votes",
	"Postal Votes",
	"Total Votes",
	"% Over Electors",
	"% Over Votes Polled",
	"% Over Valid Votes",
}

// WriteXLSX renders the result document as an XLSX workbook with one row per
// candidate. Constituency columns repeat on every row so the sheet filters
// and pivots cleanly. Constituencies without candidates contribute no rows.
func WriteXLSX(doc *extract.ResultsDocument) ([]byte, error) {
	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, c := range doc.Constituencies {
		for _, cand := range c.Candidates {
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}

			write(1, c.ConstituencyNumber)
			write(2, c.ConstituencyName)
			write(3, c.TotalElectors)
			write(4, optInt(cand.SerialNumber))
			write(5, cand.CandidateName)
			write(6, cand.Gender)
			write(7, optInt(cand.Age))
			write(8, cand.Category)
			write(9, cand.Party)
			write(10, cand.Symbol)
			write(11, optInt(cand.TotalVotesPolled))
			write(12, optInt(cand.ValidVotes))
			write(13, cand.VotesSecured.General)
			write(14, cand.VotesSecured.Postal)
			write(15, cand.VotesSecured.Total)
			write(16, optFloat(cand.PercentageOfVotes.OverTotalElectors))
			write(17, optFloat(cand.PercentageOfVotes.OverTotalVotesPolled))
			write(18, optFloat(cand.PercentageOfVotes.OverTotalValidVotes))

			row++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 8)
	_ = f.SetColWidth(sheet, "B", "B", 24)
	_ = f.SetColWidth(sheet, "C", "C", 14)
	_ = f.SetColWidth(sheet, "D", "D", 8)
	_ = f.SetColWidth(sheet, "E", "E", 32)
	_ = f.SetColWidth(sheet, "F", "H", 10)
	_ = f.SetColWidth(sheet, "I", "J", 18)
	_ = f.SetColWidth(sheet, "K", "O", 14)
	_ = f.SetColWidth(sheet, "P", "R", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// optInt converts a nullable count to a cell value, blank when absent
func optInt(n *int) any {
	if n == nil {
		return ""
	}
	return *n
}

// optFloat converts a nullable percentage to a cell value, blank when absent
func optFloat(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
