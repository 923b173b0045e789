package inherent

import (
	"fmt"
	"sort"
	"strings"
)

// CheckResult accumulates the errors found while checking the inherents of a block.
// Once a fatal error is recorded, later non-fatal errors are dropped.
type CheckResult struct {
	errors          map[Identifier]Error
	fatalErrorFound bool
}

// NewCheckResult returns an empty result.
func NewCheckResult() *CheckResult {
	return &CheckResult{errors: make(map[Identifier]Error)}
}

// PutError records the error for the identifier.
func (r *CheckResult) PutError(id Identifier, err Error) error {
	if _, ok := r.errors[id]; ok {
		return fmt.Errorf("inherent error for %s already recorded", id)
	}

	if r.fatalErrorFound && !err.IsFatal() {
		return nil
	}

	if err.IsFatal() && !r.fatalErrorFound {
		// a fatal error supersedes all non-fatal ones
		r.errors = make(map[Identifier]Error)
		r.fatalErrorFound = true
	}

	r.errors[id] = err
	return nil
}

// Ok returns true if no error was recorded.
func (r *CheckResult) Ok() bool {
	return len(r.errors) == 0
}

// FatalErrorReported returns true if at least one recorded error is fatal.
func (r *CheckResult) FatalErrorReported() bool {
	return r.fatalErrorFound
}

// Error returns the error recorded for the identifier.
func (r *CheckResult) Error(id Identifier) (Error, bool) {
	err, ok := r.errors[id]
	return err, ok
}

// Err folds the recorded errors into a single error, or nil if there are none.
// Identifiers are sorted so the message is deterministic.
func (r *CheckResult) Err() error {
	if r.Ok() {
		return nil
	}

	ids := make([]Identifier, 0, len(r.errors))
	for id := range r.errors {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	msgs := make([]string, 0, len(ids))
	for _, id := range ids {
		msgs = append(msgs, fmt.Sprintf("%s: %v", id, r.errors[id]))
	}
	return fmt.Errorf("inherent check failed (fatal: %v): %s", r.fatalErrorFound, strings.Join(msgs, "; "))
}
