package ports

// SelectionEntry is one line offered to the selection tool.
type SelectionEntry struct {
	Label string
	Value string
}

/*
Selector lets the user pick one entry interactively.
An unavailable tool and a cancelled pick are both expected outcomes, not errors.
*/
type Selector interface {
	// Available reports whether the selection tool can be launched.
	Available() bool

	// Select returns the chosen entry, or ok == false if the user cancelled.
	Select(entries []SelectionEntry) (chosen SelectionEntry, ok bool, err error)
}
