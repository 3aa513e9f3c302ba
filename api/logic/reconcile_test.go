/* reconcile_test.go
 * Contains unit tests for reconcile.go
 * Authors: Zachary Bower
 */

package logic

import (
	"testing"
	"time"

	"nba-scorigami/api/external"
	"nba-scorigami/api/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playedGame(home string, homeName string, away string, awayName string, homeScore int, awayScore int, gameDate time.Time) external.PlayedGame {
	return external.PlayedGame{
		HomeTeamCity: home,
		HomeTeamName: homeName,
		AwayTeamCity: away,
		AwayTeamName: awayName,
		HomeScore:    homeScore,
		AwayScore:    awayScore,
		GameDate:     gameDate,
	}
}

func lakersAtCeltics(homeScore int, awayScore int, gameDate time.Time) external.PlayedGame {
	return playedGame("Boston", "Celtics", "Los Angeles", "Lakers", homeScore, awayScore, gameDate)
}

func lakersGuess(visitorScore int, homeScore int, guessDate time.Time) store.Guess {
	return store.Guess{
		Username:  "alice",
		GameId:    "0_Lakers_at_Celtics",
		Guess:     []int{visitorScore, homeScore},
		Team1:     "Lakers",
		Team2:     "Celtics",
		GuessDate: guessDate,
	}
}

// TestReconcile_CorrectGuess tests the exact scenario from the grading example: a
// substring team match ten minutes apart with exact scores is Correct
func TestReconcile_CorrectGuess(t *testing.T) {
	guessDate := time.Date(2023, time.January, 5, 19, 0, 0, 0, time.UTC)
	gameDate := time.Date(2023, time.January, 5, 19, 10, 0, 0, time.UTC)

	graded := Reconcile(lakersGuess(100, 98, guessDate), []external.PlayedGame{lakersAtCeltics(98, 100, gameDate)})

	assert.Equal(t, Correct, graded.Verdict)
	assert.Equal(t, "98-100", graded.Actual)
}

// TestReconcile_WrongScores tests that a matched game with missed scores is Wrong
func TestReconcile_WrongScores(t *testing.T) {
	guessDate := time.Date(2023, time.January, 5, 19, 0, 0, 0, time.UTC)
	gameDate := time.Date(2023, time.January, 5, 19, 10, 0, 0, time.UTC)

	graded := Reconcile(lakersGuess(100, 99, guessDate), []external.PlayedGame{lakersAtCeltics(98, 100, gameDate)})

	assert.Equal(t, Wrong, graded.Verdict)
	assert.Equal(t, "98-100", graded.Actual)
}

// TestReconcile_NoProximateGame tests that a game outside the 12 hour window leaves the
// guess Awaiting
func TestReconcile_NoProximateGame(t *testing.T) {
	guessDate := time.Date(2023, time.January, 5, 19, 0, 0, 0, time.UTC)
	gameDate := time.Date(2023, time.January, 6, 19, 0, 0, 0, time.UTC)

	graded := Reconcile(lakersGuess(100, 98, guessDate), []external.PlayedGame{lakersAtCeltics(98, 100, gameDate)})

	assert.Equal(t, Awaiting, graded.Verdict)
	assert.Empty(t, graded.Actual)
}

// TestReconcile_NoTeamMatch tests that a name mismatch on either side never matches
func TestReconcile_NoTeamMatch(t *testing.T) {
	guessDate := time.Date(2023, time.January, 5, 19, 0, 0, 0, time.UTC)
	games := []external.PlayedGame{playedGame("Boston", "Celtics", "Chicago", "Bulls", 98, 100, guessDate)}

	graded := Reconcile(lakersGuess(100, 98, guessDate), games)

	assert.Equal(t, Awaiting, graded.Verdict)
}

// TestMatchGuess_SwappedSidesDoNotMatch tests that home and away are not interchangeable
func TestMatchGuess_SwappedSidesDoNotMatch(t *testing.T) {
	guessDate := time.Date(2023, time.January, 5, 19, 0, 0, 0, time.UTC)
	// Celtics at Lakers, but the guess said Lakers at Celtics
	games := []external.PlayedGame{playedGame("Los Angeles", "Lakers", "Boston", "Celtics", 98, 100, guessDate)}

	_, ok := MatchGuess(lakersGuess(100, 98, guessDate), games)
	assert.False(t, ok)
}

// TestMatchGuess_CaseInsensitiveSubstring tests the normalization in the identity
// predicate
func TestMatchGuess_CaseInsensitiveSubstring(t *testing.T) {
	guessDate := time.Date(2023, time.January, 5, 19, 0, 0, 0, time.UTC)
	guess := lakersGuess(100, 98, guessDate)
	guess.Team1 = "lAkErS"
	guess.Team2 = "boston celtics"

	_, ok := MatchGuess(guess, []external.PlayedGame{lakersAtCeltics(98, 100, guessDate)})
	assert.True(t, ok)
}

// TestMatchGuess_NearestInTimeWins tests the deterministic tie-break for same-day
// rematches: of two candidate games the nearer timestamp is chosen
func TestMatchGuess_NearestInTimeWins(t *testing.T) {
	guessDate := time.Date(2023, time.January, 5, 19, 0, 0, 0, time.UTC)
	morning := lakersAtCeltics(90, 88, guessDate.Add(-11*time.Hour))
	evening := lakersAtCeltics(98, 100, guessDate.Add(10*time.Minute))

	game, ok := MatchGuess(lakersGuess(100, 98, guessDate), []external.PlayedGame{morning, evening})

	require.True(t, ok)
	assert.Equal(t, 98, game.HomeScore)
	assert.Equal(t, 100, game.AwayScore)
}

// TestMatchGuess_WindowBoundaryExclusive tests that exactly 12 hours apart does not match
func TestMatchGuess_WindowBoundaryExclusive(t *testing.T) {
	guessDate := time.Date(2023, time.January, 5, 19, 0, 0, 0, time.UTC)
	games := []external.PlayedGame{lakersAtCeltics(98, 100, guessDate.Add(MatchWindow))}

	_, ok := MatchGuess(lakersGuess(100, 98, guessDate), games)
	assert.False(t, ok)
}

// TestTeamMatches tests the normalization + containment predicate directly
func TestTeamMatches(t *testing.T) {
	assert.True(t, teamMatches("Boston Celtics", "Celtics"))
	assert.True(t, teamMatches("Boston Celtics", "boston"))
	assert.True(t, teamMatches("Boston Celtics", "  Celtics  "))
	assert.False(t, teamMatches("Boston Celtics", "Lakers"))
	assert.False(t, teamMatches("Boston Celtics", ""))
}
