package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocumentJSON(t *testing.T) {
	doc := &ResultsDocument{
		Election: "2024 Lok Sabha Elections",
		State:    "Andhra Pradesh",
		Constituencies: []Constituency{
			{
				ConstituencyNumber: 1,
				ConstituencyName:   "Araku",
				TotalElectors:      1557153,
				Candidates: []Candidate{
					{
						SerialNumber:     intPtr(1),
						CandidateName:    "GUMMA THANUJA RANI",
						Gender:           "F",
						Age:              nil,
						Category:         "ST",
						Party:            "YSRCP",
						Symbol:           "Ceiling Fan",
						TotalVotesPolled: nil,
						ValidVotes:       intPtr(470000),
						VotesSecured:     VotesSecured{General: 469000, Postal: 1000, Total: 470000},
						PercentageOfVotes: PercentageOfVotes{
							OverTotalElectors:    floatPtr(30.63),
							OverTotalVotesPolled: nil,
							OverTotalValidVotes:  floatPtr(99.99),
						},
					},
				},
			},
		},
	}

	encoded, err := encodeDocument(doc)
	require.NoError(t, err)
	assert.NoError(t, ValidateDocumentJSON(encoded))
}

func TestValidateDocumentJSON_EmptyDocument(t *testing.T) {
	doc := &ResultsDocument{
		Election:       "2024 Lok Sabha Elections",
		State:          "Andhra Pradesh",
		Constituencies: []Constituency{},
	}

	encoded, err := encodeDocument(doc)
	require.NoError(t, err)
	assert.NoError(t, ValidateDocumentJSON(encoded))
}

func TestValidateDocumentJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "missing state",
			data: `{"election": "2024 Lok Sabha Elections", "constituencies": []}`,
		},
		{
			name: "constituency number as string",
			data: `{"election": "e", "state": "s", "constituencies": [{"constituency_number": "1", "constituency_name": "Araku", "total_electors": 5, "candidates": []}]}`,
		},
		{
			name: "constituencies not an array",
			data: `{"election": "e", "state": "s", "constituencies": {}}`,
		},
		{
			name: "not json at all",
			data: `Constituency: 1 . Araku`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateDocumentJSON([]byte(tt.data)))
		})
	}
}
