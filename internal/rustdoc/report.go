package rustdoc

import "time"

// Report summarizes one generator run.
type Report struct {
	BuildID  string
	Tool     string
	Args     []string
	Duration time.Duration
	ExitCode int
}
