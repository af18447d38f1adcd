package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// headerPattern matches the constituency banner printed at the top of each
// result section, e.g. "Constituency: 22 . Kurnool ( Total Electors 1757287 )".
var headerPattern = regexp.MustCompile(`Constituency:\s*(\d+)\s*\.\s*(.+?)\s*\(\s*Total Electors\s*(\d+)\s*\)`)

// ConstituencyHeader represents a parsed constituency banner
type ConstituencyHeader struct {
	Number   int
	Name     string
	Electors int
}

// ParseHeader scans a block of page text for a constituency banner and
// returns the parsed header with ok=true on a match. Only the first match in
// the text is used. A banner whose numeric fields do not fit an int counts
// as no match rather than an error.
func ParseHeader(text string) (ConstituencyHeader, bool) {
	m := headerPattern.FindStringSubmatch(text)
	if m == nil {
		return ConstituencyHeader{}, false
	}

	number, err := strconv.Atoi(m[1])
	if err != nil {
		return ConstituencyHeader{}, false
	}
	electors, err := strconv.Atoi(m[3])
	if err != nil {
		return ConstituencyHeader{}, false
	}

	return ConstituencyHeader{
		Number:   number,
		Name:     strings.TrimSpace(m[2]),
		Electors: electors,
	}, true
}
