/* bot.go
 * Contains logic used for creating the bot and routing incoming commands. Requires a discord bot token and ApiPtr,
 * both of which are passed in from main.go
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"
	"strings"

	"nba-scorigami/api/api"

	"github.com/bwmarrin/discordgo"
)

type Bot struct {
	BotToken string
	ApiPtr   *api.API
}

func NewBot(botToken string, apiPtr *api.API) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		ApiPtr:   apiPtr,
	}, nil
}

// newMessageHandler routes messages to the matching command handler
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author.ID == botUserID {
		return
	}

	switch {
	case startsWith(message.Content, "$help"):
		b.helpMessageHandler(session, message)

	case startsWith(message.Content, "$scores"):
		b.scoresHandler(session, message)

	case startsWith(message.Content, "$novelty"):
		b.noveltyHandler(session, message)

	case startsWith(message.Content, "$guess"):
		b.guessHandler(session, message)

	case startsWith(message.Content, "$check"):
		b.checkGuessesHandler(session, message)

	case startsWith(message.Content, "$leaderboard"):
		b.leaderboardHandler(session, message)

	case startsWith(message.Content, "$upcoming"):
		b.upcomingGamesHandler(session, message)

	case startsWith(message.Content, "$stats"):
		b.statsHandler(session, message)
	}
}

// Helper function to check if a string starts with a given substring
// Preconditions: Recieves an input string and a substring
// Postconditions: Returns true if the substring is at the start of the string, else returns false
func startsWith(inputString string, substring string) bool {
	//Check if the substring is present in the input string
	if !strings.Contains(inputString, substring) {
		return false
	}
	strLength := len(substring)
	for i := 0; i < strLength; i++ {
		if inputString[i] != substring[i] {
			return false
		}
	}
	return true
}
