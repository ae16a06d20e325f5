package types

// FrequencyEntry is one allele with its frequency kept exactly as printed
// on the source page.
type FrequencyEntry struct {
	Allele    string `yaml:"allele"`
	Frequency string `yaml:"frequency"`
}

// FrequencyRow is one dataset-tagged table row. The first entry is the
// reference allele, the rest are alternates in page order.
type FrequencyRow struct {
	SampleSize  string           `yaml:"sample_size"`
	Frequencies []FrequencyEntry `yaml:"frequencies"`
}

type ResolutionOutcome struct {
	Kind      OutcomeKind
	Successor Identifier
}

func Active() ResolutionOutcome {
	return ResolutionOutcome{Kind: OutcomeActive}
}

func MergedInto(successor Identifier) ResolutionOutcome {
	return ResolutionOutcome{Kind: OutcomeMerged, Successor: successor}
}

func Unsupported() ResolutionOutcome {
	return ResolutionOutcome{Kind: OutcomeUnsupported}
}

// SnpRecord is the extracted result for a terminal identifier. A record
// with no frequencies is the zero-result shape.
type SnpRecord struct {
	ID          Identifier       `yaml:"id"`
	Position    string           `yaml:"position,omitempty"`
	Build       string           `yaml:"build,omitempty"`
	SampleSize  string           `yaml:"sample_size,omitempty"`
	Frequencies []FrequencyEntry `yaml:"frequencies,omitempty"`
	Unsupported bool             `yaml:"unsupported,omitempty"`
}

func (r SnpRecord) Reference() (FrequencyEntry, bool) {
	if len(r.Frequencies) == 0 {
		return FrequencyEntry{}, false
	}
	return r.Frequencies[0], true
}

func (r SnpRecord) Alternates() []FrequencyEntry {
	if len(r.Frequencies) < 2 {
		return nil
	}
	return r.Frequencies[1:]
}

// Resolution describes one Resolve call: the requested id, every merge
// hop taken, and the records produced for the terminal id.
type Resolution struct {
	Requested Identifier   `yaml:"requested"`
	Terminal  Identifier   `yaml:"terminal"`
	Hops      []Identifier `yaml:"hops,omitempty"`
	Outcome   OutcomeKind  `yaml:"outcome"`
	Records   []SnpRecord  `yaml:"records"`
}
