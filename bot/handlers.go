/* handlers.go
 * Contains testable handler methods that accept DiscordSession interface
 * Authors: Zachary Bower
 */

package bot

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"nba-scorigami/api/api"
	"nba-scorigami/api/shared"
	"nba-scorigami/api/store"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"
)

// helpMessageHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("NBA Scorigami Bot v1.0\n")
	res.WriteString("`$scores winner loser`: Look up a final score, e.g. `$scores 112 104`. Shows how often it has happened and the most recent game\n")
	res.WriteString("`$novelty winner loser`: Check whether a final score would be a scorigami, i.e. a score that has never happened in NBA history\n")
	res.WriteString("`$guess \"Visitor\" \"Home\" visitorScore homeScore`: Guess the final score of a game on the upcoming slate. Team names that contain spaces need to be encased in \" (e.g. \"Boston Celtics\"). There is fuzzy matching on names so `$guess lakers celtics 100 98` also works\n")
	res.WriteString("One guess per game; you cannot change a guess once it is in\n")
	res.WriteString("`$check`: shows how your guesses have gone. Guesses for games that have not been played yet show as awaiting\n")
	res.WriteString("`$leaderboard`: shows who has the most correct guesses. Ties are broken alphabetically\n")
	res.WriteString("`$upcoming`: shows the games on the next slate that you can guess on\n")
	res.WriteString("`$stats [minYear maxYear [\"Team\"]]`: shows archive totals, optionally restricted to a year range and a franchise\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// scoresHandler handles the $scores command with a DiscordSession interface
// Expects two score arguments; the larger one is taken as the winning score
func (b *Bot) scoresHandler(session DiscordSession, message *discordgo.MessageCreate) {
	winning, losing, ok := parseScoreArgs(message.Content)
	if !ok {
		session.ChannelMessageSend(message.ChannelID, "Usage: `$scores winner loser`, e.g. `$scores 112 104`")
		return
	}

	record, err := b.ApiPtr.LookupScore(winning, losing)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, describeError(err, "looking up that score"))
		return
	}

	if record == nil || !record.Occurred() {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("%d-%d has never happened. That would be a scorigami!", winning, losing))
		return
	}

	latest := record.Games[len(record.Games)-1]
	res := fmt.Sprintf("%d-%d has happened %d time(s). Most recent: %s %d, %s %d on %s",
		winning, losing, len(record.Games),
		latest.WinningTeam, latest.WinningScore, latest.LosingTeam, latest.LosingScore,
		latest.Date.Format("Jan 2 2006"))
	session.ChannelMessageSend(message.ChannelID, res)
}

// noveltyHandler handles the $novelty command with a DiscordSession interface
func (b *Bot) noveltyHandler(session DiscordSession, message *discordgo.MessageCreate) {
	winning, losing, ok := parseScoreArgs(message.Content)
	if !ok {
		session.ChannelMessageSend(message.ChannelID, "Usage: `$novelty winner loser`, e.g. `$novelty 155 154`")
		return
	}
	if winning == losing {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("NBA games cannot end tied, so %d-%d can never be a scorigami", winning, losing))
		return
	}

	novelty, err := b.ApiPtr.IsPotentialNovelty(winning, losing)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, describeError(err, "checking that score"))
		return
	}

	if novelty {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("A %d-%d final would be a scorigami!", winning, losing))
	} else {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("%d-%d would not be a scorigami, it has happened before", winning, losing))
	}
}

// guessHandler handles the $guess command with a DiscordSession interface
// Expects `$guess "Visitor" "Home" visitorScore homeScore`; team names go through
// fuzzy matching against the upcoming slate
func (b *Bot) guessHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserId: message.Author.ID, Username: message.Author.Username}
	usage := "Usage: `$guess \"Visitor\" \"Home\" visitorScore homeScore`, e.g. `$guess \"Los Angeles Lakers\" \"Boston Celtics\" 100 98`"

	// we use splitter here instead of go's built in splitter so team names that contain
	// spaces e.g. "Boston Celtics" are recognised as one argument not two
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	args, err := spaceSplitter.Split(message.Content)
	if err != nil || len(args) != 5 {
		session.ChannelMessageSend(message.ChannelID, usage)
		return
	}

	visitor := strings.Trim(args[1], "\"")
	home := strings.Trim(args[2], "\"")
	visitorScore, err1 := strconv.Atoi(args[3])
	homeScore, err2 := strconv.Atoi(args[4])
	if err1 != nil || err2 != nil {
		session.ChannelMessageSend(message.ChannelID, usage)
		return
	}

	guess, novelty, err := b.ApiPtr.SubmitGuessForMatchup(user, visitor, home, visitorScore, homeScore, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateGuess):
			session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("%s has already guessed that game. One guess per game!", user.Username))
		case errors.Is(err, api.ErrNoSuchGame):
			session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("No game on the upcoming slate matches %s at %s. Use `$upcoming` to see what you can guess on", visitor, home))
		default:
			log.Println(err)
			session.ChannelMessageSend(message.ChannelID, describeError(err, "saving the guess"))
		}
		return
	}

	res := fmt.Sprintf("%s's guess is in: %s %d at %s %d", user.Username, guess.Team1, guess.Guess[0], guess.Team2, guess.Guess[1])
	if novelty {
		res += "\nThat score has never happened before. Scorigami if it lands!"
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// checkGuessesHandler handles the $check command with a DiscordSession interface
func (b *Bot) checkGuessesHandler(session DiscordSession, message *discordgo.MessageCreate) {
	user := shared.User{UserId: message.Author.ID, Username: message.Author.Username}
	graded, err := b.ApiPtr.CheckGuesses(user)
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, describeError(err, fmt.Sprintf("checking %s's guesses", user.Username)))
		return
	}

	if len(graded) == 0 {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("%s does not have any guesses stored. Use $guess to make one", user.Username))
		return
	}

	var res strings.Builder
	res.WriteString(fmt.Sprintf("%s's guesses:\n", user.Username))
	for _, g := range graded {
		// Documents written by other clients may carry a short or absent guess array
		if len(g.Guess.Guess) == 2 {
			res.WriteString(fmt.Sprintf("- %s at %s, guessed %d-%d: %s", g.Guess.Team1, g.Guess.Team2, g.Guess.Guess[0], g.Guess.Guess[1], g.Verdict))
		} else {
			res.WriteString(fmt.Sprintf("- %s at %s: %s", g.Guess.Team1, g.Guess.Team2, g.Verdict))
		}
		if g.Actual != "" {
			res.WriteString(fmt.Sprintf(" (final %s)", g.Actual))
		}
		res.WriteString("\n")
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// leaderboardHandler handles the $leaderboard command with a DiscordSession interface
func (b *Bot) leaderboardHandler(session DiscordSession, message *discordgo.MessageCreate) {
	standings, err := b.ApiPtr.Leaderboard()
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, describeError(err, "getting the leaderboard"))
		return
	}

	if len(standings) == 0 {
		session.ChannelMessageSend(message.ChannelID, "Nobody has made a guess yet")
		return
	}

	var res strings.Builder
	res.WriteString("Leaderboard:\n")
	for i, standing := range standings {
		res.WriteString(fmt.Sprintf("%d. %s: %d correct\n", i+1, standing.Username, len(standing.Correct)))
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// upcomingGamesHandler handles the $upcoming command with a DiscordSession interface
func (b *Bot) upcomingGamesHandler(session DiscordSession, message *discordgo.MessageCreate) {
	games, err := b.ApiPtr.UpcomingGames(time.Now())
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, describeError(err, "getting upcoming games"))
		return
	}

	if len(games) == 0 {
		session.ChannelMessageSend(message.ChannelID, "No upcoming games on the schedule")
		return
	}

	var res strings.Builder
	res.WriteString("Upcoming games:\n")
	for _, game := range games {
		res.WriteString(fmt.Sprintf("- %s at %s, %s", game.Visitor, game.Home, game.Date.Format("Mon Jan 2 3:04 PM MST")))
		if game.Arena != "" {
			res.WriteString(fmt.Sprintf(" (%s)", game.Arena))
		}
		res.WriteString("\n")
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// statsHandler handles the $stats command with a DiscordSession interface
// Accepts `$stats`, `$stats minYear maxYear` or `$stats minYear maxYear "Team"`
func (b *Bot) statsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	usage := "Usage: `$stats`, `$stats 1990 2000` or `$stats 1990 2000 \"Boston Celtics\"`"

	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	args, err := spaceSplitter.Split(message.Content)
	if err != nil || (len(args) != 1 && len(args) != 3 && len(args) != 4) {
		session.ChannelMessageSend(message.ChannelID, usage)
		return
	}

	minYear, maxYear := 1946, time.Now().Year()
	team := ""
	if len(args) >= 3 {
		var err1, err2 error
		minYear, err1 = strconv.Atoi(args[1])
		maxYear, err2 = strconv.Atoi(args[2])
		if err1 != nil || err2 != nil {
			session.ChannelMessageSend(message.ChannelID, usage)
			return
		}
	}
	if len(args) == 4 {
		team = strings.Trim(args[3], "\"")
	}

	view, err := b.ApiPtr.FilterScores(minYear, maxYear, team)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, describeError(err, "computing the stats"))
		return
	}

	stats := api.ArchiveStats(view)
	scope := fmt.Sprintf("%d-%d", minYear, maxYear)
	if team != "" {
		scope += ", " + team
	}
	res := fmt.Sprintf("Archive stats (%s): %d unique scores across %d games. Highest winning score: %d",
		scope, stats.UniqueScores, stats.TotalGames, stats.MaxScore)
	session.ChannelMessageSend(message.ChannelID, res)
}

// parseScoreArgs extracts the two score arguments from commands like `$scores 112 104`.
// The larger score is returned first so users can give the pair in either order
func parseScoreArgs(content string) (int, int, bool) {
	fields := strings.Fields(content)
	if len(fields) != 3 {
		return 0, 0, false
	}
	first, err1 := strconv.Atoi(fields[1])
	second, err2 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	if second > first {
		first, second = second, first
	}
	return first, second, true
}

// describeError maps internal errors to a channel friendly message
func describeError(err error, doing string) string {
	if errors.Is(err, api.ErrNotReady) {
		return "Still loading the score data, try again in a moment"
	}
	if errors.Is(err, api.ErrUnknownFranchise) {
		return "That team name does not match any NBA franchise"
	}
	return fmt.Sprintf("An error occured %s", doing)
}
