/* leaderboard.go
 * Contains the logic for aggregating reconciled guesses into ranked standings
 * Authors: Zachary Bower
 */

package logic

import (
	"sort"

	"nba-scorigami/api/external"
	"nba-scorigami/api/store"
)

// Standing is one user's row on the leaderboard: their correct guesses in submission
// order. Users who have guessed but got nothing right yet still appear with an empty
// list
type Standing struct {
	Username string
	Correct  []GradedGuess
}

// Aggregate reconciles every guess and groups the correct ones by user.
// Preconditions: Receives all stored guesses and the played-game records
// Postconditions: Returns standings ranked by correct-guess count descending. Ties are
// broken alphabetically by username so the ordering is deterministic run to run
func Aggregate(guesses []store.Guess, playedGames []external.PlayedGame) []Standing {
	byUser := make(map[string][]GradedGuess)
	for _, guess := range guesses {
		if _, ok := byUser[guess.Username]; !ok {
			byUser[guess.Username] = nil
		}
		graded := Reconcile(guess, playedGames)
		if graded.Verdict == Correct {
			byUser[guess.Username] = append(byUser[guess.Username], graded)
		}
	}

	standings := make([]Standing, 0, len(byUser))
	for username, correct := range byUser {
		standings = append(standings, Standing{Username: username, Correct: correct})
	}

	sort.Slice(standings, func(i, j int) bool {
		if len(standings[i].Correct) != len(standings[j].Correct) {
			return len(standings[i].Correct) > len(standings[j].Correct)
		}
		return standings[i].Username < standings[j].Username
	})

	return standings
}
