package memory

import "time"

// matchesFilter applies the shared clear-filter semantics: zero-value
// fields do not constrain the match.
func matchesFilter(id, tournamentID int64, lastSynced time.Time, filterTournamentID int64, ids, excludeIDs []int64, before, after *time.Time) bool {
	if filterTournamentID > 0 && tournamentID != filterTournamentID {
		return false
	}
	for _, excluded := range excludeIDs {
		if id == excluded {
			return false
		}
	}
	if len(ids) > 0 {
		found := false
		for _, wanted := range ids {
			if id == wanted {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if before != nil && !lastSynced.Before(*before) {
		return false
	}
	if after != nil && !lastSynced.After(*after) {
		return false
	}

	return true
}
