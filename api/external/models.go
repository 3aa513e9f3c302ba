/* models.go
 * This file contains the models used by the external package when loading the three
 * source datasets: the scorigami archive JSON, the league schedule CSV and the played
 * results CSV
 * Authors: Zachary Bower
 */

package external

import "time"

// ArchiveDocument mirrors the scorigami JSON produced by the data processor
type ArchiveDocument struct {
	LastUpdated  string       `json:"last_updated"`
	MaxScore     int          `json:"max_score"`
	TotalGames   int          `json:"total_games"`
	UniqueScores int          `json:"unique_scores"`
	Scores       []ScoreEntry `json:"scores"`
}

// ScoreEntry is one score pair in the archive document
type ScoreEntry struct {
	WinningScore int         `json:"winning_score"`
	LosingScore  int         `json:"losing_score"`
	Occurred     bool        `json:"occurred"`
	Games        []GameEntry `json:"games"`
}

// GameEntry is one historical game in the archive document. Score is the "W-L" string
// the processor writes alongside the pair
type GameEntry struct {
	Date        string `json:"date"`
	WinningTeam string `json:"winning_team"`
	LosingTeam  string `json:"losing_team"`
	Score       string `json:"score"`
}

// ScheduledGame is one row of the league schedule with a confirmed date and tip-off time
type ScheduledGame struct {
	Id      string
	Date    time.Time
	Visitor string
	Home    string
	Arena   string
	Note    string
}

// PlayedGame is one played result row. These records are the ground truth that guesses
// are reconciled against; they carry no game identifier, only a date and team names
type PlayedGame struct {
	HomeTeamCity string
	HomeTeamName string
	AwayTeamCity string
	AwayTeamName string
	HomeScore    int
	AwayScore    int
	GameDate     time.Time
}

// HomeDisplayName returns the "City Name" string shown for the home side
func (g PlayedGame) HomeDisplayName() string {
	return g.HomeTeamCity + " " + g.HomeTeamName
}

// AwayDisplayName returns the "City Name" string shown for the away side
func (g PlayedGame) AwayDisplayName() string {
	return g.AwayTeamCity + " " + g.AwayTeamName
}
