package extract

// Accumulator assembles constituencies from the page stream. It owns the
// single in-progress constituency record: a new banner flushes the previous
// record into the done list and starts a fresh one, Finish flushes whatever
// remains. Each record is flushed exactly once.
type Accumulator struct {
	current *Constituency
	seen    map[int]bool
	done    []Constituency
}

// NewAccumulator creates an empty accumulator
func NewAccumulator() *Accumulator {
	return &Accumulator{done: []Constituency{}}
}

// StartConstituency flushes any active record and begins a new one from the
// banner. A repeated banner for the same constituency still flushes; rows
// that follow it land in a second record with the same number.
func (a *Accumulator) StartConstituency(h ConstituencyHeader) {
	a.flush()
	a.current = &Constituency{
		ConstituencyNumber: h.Number,
		ConstituencyName:   h.Name,
		TotalElectors:      h.Electors,
		Candidates:         []Candidate{},
	}
	a.seen = make(map[int]bool)
}

// Active reports whether a constituency is currently being assembled
func (a *Accumulator) Active() bool {
	return a.current != nil
}

// AddCandidate admits a candidate into the active record and reports whether
// it was kept. Candidates without a serial number are skipped, as are
// duplicates of a serial number already admitted; the first row seen for a
// serial number wins.
func (a *Accumulator) AddCandidate(c Candidate) bool {
	if a.current == nil || c.SerialNumber == nil {
		return false
	}
	if a.seen[*c.SerialNumber] {
		return false
	}
	a.seen[*c.SerialNumber] = true
	a.current.Candidates = append(a.current.Candidates, c)
	return true
}

// Finish flushes the active record and returns all constituencies in
// discovery order. The returned slice is never nil.
func (a *Accumulator) Finish() []Constituency {
	a.flush()
	return a.done
}

func (a *Accumulator) flush() {
	if a.current == nil {
		return
	}
	a.done = append(a.done, *a.current)
	a.current = nil
	a.seen = nil
}
