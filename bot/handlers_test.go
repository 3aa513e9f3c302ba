/* handlers_test.go
 * Contains unit tests for bot command handlers using mock Discord session
 * Authors: Zachary Bower
 */

package bot

import (
	"testing"
	"time"

	"nba-scorigami/api/api"
	"nba-scorigami/api/archive"
	"nba-scorigami/api/external"
	"nba-scorigami/api/store"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestBot creates a Bot instance backed by a mock store and an in-memory
// archive, schedule and results set. The scheduled game is in the future so the
// guess and upcoming handlers can see it
func createTestBot(t *testing.T) *Bot {
	t.Helper()

	games := []archive.Game{
		{Date: time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC), WinningTeam: "Los Angeles Lakers", LosingTeam: "Boston Celtics", WinningScore: 100, LosingScore: 98},
	}
	built, err := archive.Build(games, 180)
	require.NoError(t, err)

	tipOff := time.Now().Add(24 * time.Hour)
	return &Bot{
		BotToken: "test_token",
		ApiPtr: &api.API{
			Store:   api.NewMockStore(),
			Archive: built,
			Schedule: []external.ScheduledGame{
				{Id: "0_Los Angeles Lakers_at_Boston Celtics", Date: tipOff, Visitor: "Los Angeles Lakers", Home: "Boston Celtics", Arena: "TD Garden"},
			},
			Results: []external.PlayedGame{
				{HomeTeamCity: "Boston", HomeTeamName: "Celtics", AwayTeamCity: "Los Angeles", AwayTeamName: "Lakers", HomeScore: 98, AwayScore: 100, GameDate: time.Date(2023, time.January, 5, 19, 10, 0, 0, time.UTC)},
			},
		},
	}
}

// createMockMessage creates a mock Discord message for testing
func createMockMessage(content, userID, username, channelID string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			Content:   content,
			ChannelID: channelID,
			Author: &discordgo.User{
				ID:       userID,
				Username: username,
			},
		},
	}
}

// region helpMessage tests

func TestHelpMessage_Success(t *testing.T) {
	bot := createTestBot(t)
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$help", "user123", "TestUser", "channel123")

	bot.helpMessageHandler(mockSession, message)

	require.Len(t, mockSession.SentMessages, 1)
	msg := mockSession.GetLastMessage()
	assert.Equal(t, "channel123", msg.ChannelID)
	assert.Contains(t, msg.Content, "Scorigami Bot")
	assert.Contains(t, msg.Content, "$guess")
	assert.Contains(t, msg.Content, "$check")
	assert.Contains(t, msg.Content, "$leaderboard")
}

// endregion

// region scores tests

func TestScores_KnownScore(t *testing.T) {
	bot := createTestBot(t)
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$scores 100 98", "user123", "TestUser", "channel123")

	bot.scoresHandler(mockSession, message)

	require.Len(t, mockSession.SentMessages, 1)
	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "100-98 has happened 1 time(s)")
	assert.Contains(t, msg.Content, "Los Angeles Lakers 100")
}

func TestScores_UnknownScore(t *testing.T) {
	bot := createTestBot(t)
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$scores 155 154", "user123", "TestUser", "channel123")

	bot.scoresHandler(mockSession, message)

	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "never happened")
}

func TestScores_ScoresInEitherOrder(t *testing.T) {
	bot := createTestBot(t)
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$scores 98 100", "user123", "TestUser", "channel123")

	bot.scoresHandler(mockSession, message)

	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "100-98 has happened")
}

func TestScores_BadArguments(t *testing.T) {
	bot := createTestBot(t)
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$scores one hundred", "user123", "TestUser", "channel123")

	bot.scoresHandler(mockSession, message)

	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "Usage")
}

// endregion

// region novelty tests

func TestNovelty_WouldBeScorigami(t *testing.T) {
	bot := createTestBot(t)
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$novelty 155 154", "user123", "TestUser", "channel123")

	bot.noveltyHandler(mockSession, message)

	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "155-154 final would be a scorigami")
}

func TestNovelty_AlreadyHappened(t *testing.T) {
	bot := createTestBot(t)
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$novelty 100 98", "user123", "TestUser", "channel123")

	bot.noveltyHandler(mockSession, message)

	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "would not be a scorigami")
}

// TestNovelty_Tie tests that a tied score gets its own message rather than a claim
// that the score has happened before
func TestNovelty_Tie(t *testing.T) {
	bot := createTestBot(t)
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$novelty 100 100", "user123", "TestUser", "channel123")

	bot.noveltyHandler(mockSession, message)

	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "cannot end tied")
	assert.NotContains(t, msg.Content, "has happened before")
}

// endregion

// region guess tests

func TestGuess_Success(t *testing.T) {
	bot := createTestBot(t)
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$guess \"Los Angeles Lakers\" \"Boston Celtics\" 112 104", "user123", "TestUser", "channel123")

	bot.guessHandler(mockSession, message)

	require.Len(t, mockSession.SentMessages, 1)
	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "TestUser's guess is in")
	assert.Contains(t, msg.Content, "Los Angeles Lakers 112 at Boston Celtics 104")
	assert.Contains(t, msg.Content, "Scorigami if it lands")
}

func TestGuess_FuzzyTeamNames(t *testing.T) {
	bot := createTestBot(t)
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$guess lakers celtics 100 98", "user123", "TestUser", "channel123")

	bot.guessHandler(mockSession, message)

	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "TestUser's guess is in")
	// 100-98 has happened before so no scorigami callout
	assert.NotContains(t, msg.Content, "Scorigami if it lands")
}

func TestGuess_Duplicate(t *testing.T) {
	bot := createTestBot(t)
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$guess lakers celtics 100 98", "user123", "TestUser", "channel123")

	bot.guessHandler(mockSession, message)
	bot.guessHandler(mockSession, message)

	require.Len(t, mockSession.SentMessages, 2)
	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "already guessed that game")
}

func TestGuess_NoMatchingGame(t *testing.T) {
	bot := createTestBot(t)
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$guess \"Chicago Bulls\" \"New York Knicks\" 100 98", "user123", "TestUser", "channel123")

	bot.guessHandler(mockSession, message)

	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "No game on the upcoming slate")
}

func TestGuess_BadArguments(t *testing.T) {
	bot := createTestBot(t)
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$guess lakers celtics", "user123", "TestUser", "channel123")

	bot.guessHandler(mockSession, message)

	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "Usage")
}

// endregion

// region check tests

func TestCheck_NoGuesses(t *testing.T) {
	bot := createTestBot(t)
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$check", "user123", "TestUser", "channel123")

	bot.checkGuessesHandler(mockSession, message)

	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "does not have any guesses stored")
}

func TestCheck_GradedGuesses(t *testing.T) {
	bot := createTestBot(t)
	mock := bot.ApiPtr.Store.(*api.MockStore)
	mock.StoreGuess(store.Guess{
		Username:  "TestUser",
		GameId:    "g1",
		Guess:     []int{100, 98},
		Team1:     "Lakers",
		Team2:     "Celtics",
		GuessDate: time.Date(2023, time.January, 5, 19, 0, 0, 0, time.UTC),
	})
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$check", "user123", "TestUser", "channel123")

	bot.checkGuessesHandler(mockSession, message)

	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "TestUser's guesses")
	assert.Contains(t, msg.Content, "Lakers at Celtics, guessed 100-98: correct")
}

// TestCheck_ShortGuessArray tests that a guess document with a truncated score array
// still renders instead of panicking
func TestCheck_ShortGuessArray(t *testing.T) {
	bot := createTestBot(t)
	mock := bot.ApiPtr.Store.(*api.MockStore)
	mock.StoreGuess(store.Guess{
		Username:  "TestUser",
		GameId:    "g1",
		Guess:     []int{100},
		Team1:     "Lakers",
		Team2:     "Celtics",
		GuessDate: time.Date(2023, time.January, 5, 19, 0, 0, 0, time.UTC),
	})
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$check", "user123", "TestUser", "channel123")

	bot.checkGuessesHandler(mockSession, message)

	require.Len(t, mockSession.SentMessages, 1)
	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "Lakers at Celtics: wrong")
	assert.NotContains(t, msg.Content, "guessed")
}

// endregion

// region leaderboard tests

func TestLeaderboard_Empty(t *testing.T) {
	bot := createTestBot(t)
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$leaderboard", "user123", "TestUser", "channel123")

	bot.leaderboardHandler(mockSession, message)

	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "Nobody has made a guess yet")
}

func TestLeaderboard_Rankings(t *testing.T) {
	bot := createTestBot(t)
	mock := bot.ApiPtr.Store.(*api.MockStore)
	guessDate := time.Date(2023, time.January, 5, 19, 0, 0, 0, time.UTC)
	mock.StoreGuess(store.Guess{Username: "alice", GameId: "g1", Guess: []int{100, 98}, Team1: "Lakers", Team2: "Celtics", GuessDate: guessDate})
	mock.StoreGuess(store.Guess{Username: "bob", GameId: "g1", Guess: []int{100, 99}, Team1: "Lakers", Team2: "Celtics", GuessDate: guessDate})
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$leaderboard", "user123", "TestUser", "channel123")

	bot.leaderboardHandler(mockSession, message)

	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "1. alice: 1 correct")
	assert.Contains(t, msg.Content, "2. bob: 0 correct")
}

// endregion

// region upcoming tests

func TestUpcoming_ShowsSlate(t *testing.T) {
	bot := createTestBot(t)
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$upcoming", "user123", "TestUser", "channel123")

	bot.upcomingGamesHandler(mockSession, message)

	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "Los Angeles Lakers at Boston Celtics")
	assert.Contains(t, msg.Content, "TD Garden")
}

func TestUpcoming_EmptySchedule(t *testing.T) {
	bot := createTestBot(t)
	bot.ApiPtr.Schedule = []external.ScheduledGame{}
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$upcoming", "user123", "TestUser", "channel123")

	bot.upcomingGamesHandler(mockSession, message)

	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "No upcoming games")
}

// endregion

// region stats tests

func TestStats_FullArchive(t *testing.T) {
	bot := createTestBot(t)
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$stats", "user123", "TestUser", "channel123")

	bot.statsHandler(mockSession, message)

	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "1 unique scores across 1 games")
}

func TestStats_FilteredOut(t *testing.T) {
	bot := createTestBot(t)
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$stats 1990 2000", "user123", "TestUser", "channel123")

	bot.statsHandler(mockSession, message)

	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "0 unique scores across 0 games")
}

func TestStats_BadArguments(t *testing.T) {
	bot := createTestBot(t)
	mockSession := NewMockDiscordSession()
	message := createMockMessage("$stats 1990", "user123", "TestUser", "channel123")

	bot.statsHandler(mockSession, message)

	msg := mockSession.GetLastMessage()
	assert.Contains(t, msg.Content, "Usage")
}

// endregion
