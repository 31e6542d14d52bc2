package idmanager

// Kind classifies an identifier candidate.
type Kind int

const (
	// Absent means no identifier was supplied (nil).
	Absent Kind = iota
	// Valid means the candidate is a usable identifier.
	Valid
	// Invalid means the candidate cannot serve as an identifier.
	Invalid
)

func (k Kind) String() string {
	switch k {
	case Absent:
		return "absent"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	}
	return "unknown"
}

// Result is the outcome of normalising an identifier candidate. ID is set only
// for Valid results, Err only for Invalid ones.
type Result struct {
	Kind Kind
	ID   string
	Err  error
}

// IsValid returns true when the result carries an identifier.
func (r Result) IsValid() bool {
	return r.Kind == Valid
}

// IsAbsent returns true when no identifier was supplied.
func (r Result) IsAbsent() bool {
	return r.Kind == Absent
}

// Unpack converts the result into the (id, ok, err) form.
func (r Result) Unpack() (string, bool, error) {
	switch r.Kind {
	case Valid:
		return r.ID, true, nil
	case Invalid:
		return "", false, r.Err
	}
	return "", false, nil
}
