package command

// Outcome is the result of running a resolved command line to completion.
type Outcome struct {
	ExitCode int
}

func (o Outcome) Success() bool {
	return o.ExitCode == 0
}
