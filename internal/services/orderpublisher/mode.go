package orderpublisher

// Mode selects how many orders a run publishes.
type Mode int

const (
	ModeSingle Mode = iota
	ModeBatch
)

// batchToken is the only argument that selects batch mode.
const batchToken = "multiple"

// ParseMode maps the first CLI argument to a Mode. Anything other than
// "multiple", including the empty string, selects single mode.
func ParseMode(arg string) Mode {
	if arg == batchToken {
		return ModeBatch
	}
	return ModeSingle
}

func (m Mode) String() string {
	switch m {
	case ModeBatch:
		return "batch"
	default:
		return "single"
	}
}
