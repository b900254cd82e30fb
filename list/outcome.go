package list

// Outcome reports what a mutating operation did to a list.
type Outcome int

const (
	Inserted Outcome = iota
	Removed
	OutOfRange
	NotFound
	Empty
)

var outcomeNames = map[Outcome]string{
	Inserted:   "inserted",
	Removed:    "removed",
	OutOfRange: "out-of-range",
	NotFound:   "not-found",
	Empty:      "empty",
}

func (outcome Outcome) String() string {
	name, found := outcomeNames[outcome]
	if !found {
		return "unknown"
	}
	return name
}

// Modified is true when the operation linked or unlinked a node.
func (outcome Outcome) Modified() bool {
	return outcome == Inserted || outcome == Removed
}
