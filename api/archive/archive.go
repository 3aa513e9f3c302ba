/* archive.go
 * Contains the logic for building and querying the score archive. The archive maps a
 * (winning score, losing score) pair to the list of historical games that finished with
 * that score. Filtering and novelty detection live in filter.go and novelty.go
 * Authors: Zachary Bower
 */

package archive

import (
	"fmt"
	"sort"
)

// Build constructs an Archive from a list of historical games.
// Preconditions: Receives a slice of games and the highest score the grid should track
// Postconditions: Returns an Archive containing a record for every score pair that
// occurred, or an error if maxScore is below MinScore. Games with a winning score that
// is not strictly greater than the losing score are physically impossible results and
// are dropped rather than indexed
func Build(games []Game, maxScore int) (*Archive, error) {
	if maxScore < MinScore {
		return nil, fmt.Errorf("max score %d is below the grid minimum %d", maxScore, MinScore)
	}

	a := &Archive{
		MaxScore: maxScore,
		records:  make(map[ScoreKey]*ScoreRecord),
	}

	for _, game := range games {
		if game.WinningScore <= game.LosingScore {
			continue
		}
		if game.WinningScore > maxScore || game.LosingScore < MinScore {
			continue
		}
		key := ScoreKey{WinningScore: game.WinningScore, LosingScore: game.LosingScore}
		record, ok := a.records[key]
		if !ok {
			record = &ScoreRecord{WinningScore: game.WinningScore, LosingScore: game.LosingScore}
			a.records[key] = record
		}
		record.Games = append(record.Games, game)
	}

	// Keep each record's games in date order so views and responses are stable
	for _, record := range a.records {
		sort.SliceStable(record.Games, func(i, j int) bool {
			return record.Games[i].Date.Before(record.Games[j].Date)
		})
	}

	return a, nil
}

// Lookup returns the record for a score pair, or nil if the pair has never occurred in
// this view. Pairs where the winning score does not exceed the losing score never have
// a record
func (a *Archive) Lookup(winningScore int, losingScore int) *ScoreRecord {
	return a.records[ScoreKey{WinningScore: winningScore, LosingScore: losingScore}]
}

// UniqueScoreCount returns the number of distinct score pairs that have occurred in
// this view. The count is computed from the receiver on every call so a filtered view
// never reports stale totals
func (a *Archive) UniqueScoreCount() int {
	count := 0
	for _, record := range a.records {
		if record.Occurred() {
			count++
		}
	}
	return count
}

// TotalGameCount returns the number of games across all occurred score pairs in this view
func (a *Archive) TotalGameCount() int {
	count := 0
	for _, record := range a.records {
		count += len(record.Games)
	}
	return count
}

// Franchises returns the sorted list of every team name appearing in this view, with
// the AllFranchises sentinel first. The bot and web surfaces use this as the valid
// selector list for team filtering
func (a *Archive) Franchises() []string {
	seen := make(map[string]bool)
	for _, record := range a.records {
		for _, game := range record.Games {
			seen[game.WinningTeam] = true
			seen[game.LosingTeam] = true
		}
	}

	teams := make([]string, 0, len(seen))
	for team := range seen {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	return append([]string{AllFranchises}, teams...)
}

// OccurredKeys returns the keys of every occurred score pair in this view, ordered by
// winning then losing score. Used by the web surface to render the grid
func (a *Archive) OccurredKeys() []ScoreKey {
	keys := make([]ScoreKey, 0, len(a.records))
	for key, record := range a.records {
		if record.Occurred() {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].WinningScore != keys[j].WinningScore {
			return keys[i].WinningScore < keys[j].WinningScore
		}
		return keys[i].LosingScore < keys[j].LosingScore
	})
	return keys
}
