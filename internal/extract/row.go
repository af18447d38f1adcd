package extract

import (
	"strconv"
	"strings"
)

// markerCells are first-cell values of table header and footer rows, compared
// after trimming and uppercasing.
var markerCells = map[string]bool{
	"":      true,
	"SL":    true,
	"SL NO": true,
	"TOTAL": true,
}

// ParseRow converts one table row into a Candidate. The boolean result is
// false for rows that carry no candidate data: header and footer rows, rows
// with too few cells, and rows whose percentage cells hold unparseable text.
//
// Cell layout, 0-indexed: serial, name, gender, age, category, party, symbol,
// total votes polled, valid votes, votes secured (general/postal/total), and
// three percentage columns. The last percentage column is optional.
func ParseRow(cells []string) (Candidate, bool) {
	if len(cells) < 10 {
		return Candidate{}, false
	}
	if markerCells[strings.ToUpper(strings.TrimSpace(cells[0]))] {
		return Candidate{}, false
	}
	// The required numeric cells run through index 13.
	if len(cells) < 14 {
		return Candidate{}, false
	}

	overElectors, err := parsePercent(cells[12])
	if err != nil {
		return Candidate{}, false
	}
	overPolled, err := parsePercent(cells[13])
	if err != nil {
		return Candidate{}, false
	}
	var overValid *float64
	if len(cells) > 14 {
		overValid, err = parsePercent(cells[14])
		if err != nil {
			return Candidate{}, false
		}
	}

	return Candidate{
		SerialNumber:     parseOptionalInt(cells[0]),
		CandidateName:    cleanText(cells[1]),
		Gender:           strings.TrimSpace(cells[2]),
		Age:              parseOptionalInt(cells[3]),
		Category:         strings.TrimSpace(cells[4]),
		Party:            strings.TrimSpace(cells[5]),
		Symbol:           cleanText(cells[6]),
		TotalVotesPolled: parseCommaInt(cells[7]),
		ValidVotes:       parseCommaInt(cells[8]),
		VotesSecured: VotesSecured{
			General: parseVotes(cells[9]),
			Postal:  parseVotes(cells[10]),
			Total:   parseVotes(cells[11]),
		},
		PercentageOfVotes: PercentageOfVotes{
			OverTotalElectors:    overElectors,
			OverTotalVotesPolled: overPolled,
			OverTotalValidVotes:  overValid,
		},
	}, true
}

// cleanText trims a cell and collapses embedded newlines to single spaces
func cleanText(cell string) string {
	return strings.ReplaceAll(strings.TrimSpace(cell), "\n", " ")
}

// isASCIIDigits reports whether s is non-empty and contains only 0-9
func isASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseOptionalInt parses a trimmed all-digit cell, returning nil for
// anything else
func parseOptionalInt(cell string) *int {
	s := strings.TrimSpace(cell)
	if !isASCIIDigits(s) {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// parseCommaInt parses a vote-count cell that may use thousands separators,
// such as "12,345". Cells that are not all digits after removing commas
// yield nil.
func parseCommaInt(cell string) *int {
	s := strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	if !isASCIIDigits(s) {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// parseVotes is parseCommaInt with a zero default instead of nil
func parseVotes(cell string) int {
	if n := parseCommaInt(cell); n != nil {
		return *n
	}
	return 0
}

// percentGate removes the characters a blank percentage cell may contain.
var percentGate = strings.NewReplacer(",", "", "%", "", "-", "")

// percentValue removes formatting from a percentage cell before parsing.
// A leading minus sign is kept so signed values survive.
var percentValue = strings.NewReplacer(",", "", "%", "")

// parsePercent parses a percentage cell. A cell that is empty after removing
// commas, percent signs, dashes, and whitespace means the figure is absent
// and yields (nil, nil). A non-empty cell that still fails to parse as a
// float is a malformed row and yields the parse error.
func parsePercent(cell string) (*float64, error) {
	s := strings.TrimSpace(cell)
	if strings.TrimSpace(percentGate.Replace(s)) == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(percentValue.Replace(s), 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
