package types

import "fmt"

// LinkSpec is one symlink a run intends to create: Target will point to Source.
type LinkSpec struct {
	Source string
	Target string
}

func (s LinkSpec) String() string {
	return fmt.Sprintf("%s -> %s", s.Target, s.Source)
}

// LinkOutcome is what happened to a single LinkSpec
type LinkOutcome string

const (
	// OutcomeCreated means the symlink was created
	OutcomeCreated LinkOutcome = "created"
	// OutcomeAlreadyExists means the target path was already occupied
	OutcomeAlreadyExists LinkOutcome = "already_exists"
	// OutcomeFailed means creating the symlink failed for any other reason
	OutcomeFailed LinkOutcome = "failed"
	// OutcomePlanned means a dry run found the target free
	OutcomePlanned LinkOutcome = "planned"
)

// LinkResult represents the outcome of one link attempt
type LinkResult struct {
	Spec    LinkSpec
	Outcome LinkOutcome

	// Err is set for OutcomeFailed and OutcomeAlreadyExists
	Err error
}

// Summary collects the results of one run in the order they were produced
type Summary struct {
	Profile string
	DryRun  bool
	Results []LinkResult
}

// Add appends a result
func (s *Summary) Add(r LinkResult) {
	s.Results = append(s.Results, r)
}

// Count returns how many results have the given outcome
func (s *Summary) Count(outcome LinkOutcome) int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome == outcome {
			n++
		}
	}
	return n
}

// Created returns the number of symlinks created
func (s *Summary) Created() int {
	return s.Count(OutcomeCreated)
}

// Skipped returns the number of targets that already existed
func (s *Summary) Skipped() int {
	return s.Count(OutcomeAlreadyExists)
}

// Targets returns the targets with the given outcome, in run order
func (s *Summary) Targets(outcome LinkOutcome) []string {
	var targets []string
	for _, r := range s.Results {
		if r.Outcome == outcome {
			targets = append(targets, r.Spec.Target)
		}
	}
	return targets
}
