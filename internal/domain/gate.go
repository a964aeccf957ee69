package domain

import "time"

// GateSpec is an external pass/fail verification step.
// Command is run with no arguments; Env is added to the process environment.
type GateSpec struct {
	Name    string
	Command string
	Env     map[string]string
}

// GateResult is the outcome of one gate.
type GateResult struct {
	Name     string
	Passed   bool
	ExitCode int
	Duration time.Duration
	// Err is set when the gate could not be started at all.
	Err error
}

// GateReport aggregates gate results.
type GateReport struct {
	Results []GateResult
}

// Passed is true only when every gate passed.
func (r GateReport) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Failed returns the names of failed gates.
func (r GateReport) Failed() []string {
	var failed []string
	for _, res := range r.Results {
		if !res.Passed {
			failed = append(failed, res.Name)
		}
	}
	return failed
}
