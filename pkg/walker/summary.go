package walker

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/MacroPower/layoutfix/pkg/layouterrors"
	"github.com/MacroPower/layoutfix/pkg/patcher"
)

// Summary collects the results of a [Walker.Run].
type Summary struct {
	Root    string
	Results []patcher.Result
	Total   int
	Updated int
}

func (s *Summary) add(res patcher.Result) {
	s.Results = append(s.Results, res)
	s.Total++

	if res.Updated() {
		s.Updated++
	}
}

// Count returns the number of files that ended with the given status.
func (s *Summary) Count(status patcher.Status) int {
	n := 0

	for _, r := range s.Results {
		if r.Status == status {
			n++
		}
	}

	return n
}

// Err joins the errors of all failed files. It returns nil when every file
// was processed, regardless of whether it changed.
func (s *Summary) Err() error {
	var merr *multierror.Error

	for _, r := range s.Results {
		if r.Status == patcher.StatusFailed {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", r.Path, r.Err))
		}
	}

	if merr.ErrorOrNil() == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", layouterrors.ErrPatchFailed, merr)
}
