package extract

// VotesSecured represents a candidate's vote count broken down by channel.
// Unparseable cells default to zero rather than rejecting the row.
type VotesSecured struct {
	General int `json:"general"`
	Postal  int `json:"postal"`
	Total   int `json:"total"`
}

// PercentageOfVotes represents the three percentage figures printed for each
// candidate. A nil field means the source cell was blank or a dash and is
// serialized as JSON null.
type PercentageOfVotes struct {
	OverTotalElectors    *float64 `json:"over_total_electors"`
	OverTotalVotesPolled *float64 `json:"over_total_votes_polled"`
	OverTotalValidVotes  *float64 `json:"over_total_valid_votes"`
}

// Candidate represents one parsed candidate row from a result table
type Candidate struct {
	SerialNumber      *int              `json:"serial_number"`
	CandidateName     string            `json:"candidate_name"`
	Gender            string            `json:"gender"`
	Age               *int              `json:"age"`
	Category          string            `json:"category"`
	Party             string            `json:"party"`
	Symbol            string            `json:"symbol"`
	TotalVotesPolled  *int              `json:"total_votes_polled"`
	ValidVotes        *int              `json:"valid_votes"`
	VotesSecured      VotesSecured      `json:"votes_secured"`
	PercentageOfVotes PercentageOfVotes `json:"percentage_of_votes"`
}

// Constituency represents one assembled constituency section with the
// candidates collected under its banner
type Constituency struct {
	ConstituencyNumber int         `json:"constituency_number"`
	ConstituencyName   string      `json:"constituency_name"`
	TotalElectors      int         `json:"total_electors"`
	Candidates         []Candidate `json:"candidates"`
}

// ResultsDocument represents the complete extraction output document
type ResultsDocument struct {
	Election       string         `json:"election"`
	State          string         `json:"state"`
	Constituencies []Constituency `json:"constituencies"`
}

// TotalCandidates returns the number of candidates across all constituencies
func (d *ResultsDocument) TotalCandidates() int {
	total := 0
	for i := range d.Constituencies {
		total += len(d.Constituencies[i].Candidates)
	}
	return total
}

// ExtractRequest represents a request to run the extraction pipeline.
// Empty paths fall back to the configured defaults.
type ExtractRequest struct {
	PDFPath    string `json:"pdf_path"`
	OutputPath string `json:"output_path,omitempty"`
}

// ExtractResult represents the outcome of a completed extraction run
type ExtractResult struct {
	Document        *ResultsDocument `json:"-"`
	Constituencies  int              `json:"constituencies"`
	TotalCandidates int              `json:"total_candidates"`
	OutputPath      string           `json:"output_path"`
	Engine          string           `json:"engine"`
	FallbackReason  string           `json:"fallback_reason,omitempty"`
}
