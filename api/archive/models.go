/* models.go
 * This file contains the structs that represent the score archive and its records
 * Authors: Zachary Bower
 */

package archive

import "time"

// MinScore is the lowest final score tracked by the archive grid. No NBA team has
// finished below 50 since the shot clock era, and the source dataset starts there.
const MinScore = 50

// AllFranchises is the sentinel team selector meaning "no team filter"
const AllFranchises = "All Franchises"

// Game is a single historical game that produced a score pair. Games are owned by the
// ScoreRecord that contains them and are never mutated after loading
type Game struct {
	Date         time.Time
	WinningTeam  string
	LosingTeam   string
	WinningScore int
	LosingScore  int
}

// ScoreKey identifies a ScoreRecord within an archive
type ScoreKey struct {
	WinningScore int
	LosingScore  int
}

// ScoreRecord holds every game that finished with one specific score pair
type ScoreRecord struct {
	WinningScore int
	LosingScore  int
	Games        []Game
}

// Occurred reports whether this score pair has ever happened in the receiver's view.
// It is derived from the game list rather than stored, so a filtered view that drops
// every game for a pair also stops reporting it as occurred
func (r *ScoreRecord) Occurred() bool {
	return len(r.Games) > 0
}

// Archive indexes every score pair in [MinScore, MaxScore] that has occurred, along
// with the games that produced it. An Archive is built once per dataset load and is
// read-only afterwards; Filter produces new views instead of mutating the receiver
type Archive struct {
	MaxScore    int
	LastUpdated string
	records     map[ScoreKey]*ScoreRecord
}
