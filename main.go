/* main.go
 * The "main" method for running the scorigami bot and HTTP API. For details see `readme.md`
 * Usage: go run main.go -archive="<path or url>" -schedule="<path or url>" -results="<path or url>"
 * Authors: Zachary Bower
 */

package main

import (
	"context"
	"flag"
	"log"
	"os"

	api "nba-scorigami/api/api"
	"nba-scorigami/bot"
	"nba-scorigami/web"

	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()

	//Flags
	dbPtr := flag.String("db", "scorigami", "Name of the mongo database to store guesses in")
	addrPtr := flag.String("addr", ":8080", "HTTP listen address for the read API")
	archivePtr := flag.String("archive", "", "Path or URL of the scorigami archive JSON")
	schedulePtr := flag.String("schedule", "", "Path or URL of the schedule CSV")
	resultsPtr := flag.String("results", "", "Path or URL of the played results CSV")
	testPtr := flag.String("test", "false", "Use main or test bot: takes true or false as argument")

	flag.Parse()

	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	useTestBot, err := convertStrToBool(*testPtr)
	if err != nil {
		log.Fatal("Invalid \"test\" flag. Should be true or false")
	}
	var discordToken string
	if useTestBot {
		discordToken = os.Getenv("DISCORD_BETA_TOKEN")
	} else {
		discordToken = os.Getenv("DISCORD_PROD_TOKEN")
	}

	sources := api.Sources{}
	assignSource(*archivePtr, &sources.ArchivePath, &sources.ArchiveURL)
	assignSource(*schedulePtr, &sources.SchedulePath, &sources.ScheduleURL)
	assignSource(*resultsPtr, &sources.ResultsPath, &sources.ResultsURL)

	apiPtr, err := api.NewAPI(*dbPtr, os.Getenv("MONGO_URI"), sources)
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}
	defer func() {
		if err = apiPtr.Store.GetClient().Disconnect(context.TODO()); err != nil {
			panic(err)
		}
	}()

	// Load the datasets in the background; queries report they are not ready until the
	// load finishes
	go func() {
		if err := apiPtr.Load(context.Background()); err != nil {
			log.Println("dataset load:", err)
			return
		}
		log.Println("datasets loaded")
	}()

	// Serve the read API alongside the bot
	go func() {
		if err := web.Start(web.Config{Addr: *addrPtr, API: apiPtr}); err != nil {
			log.Println("web server:", err)
		}
	}()

	scorigamiBot, err := bot.NewBot(discordToken, apiPtr)
	if err != nil {
		log.Fatalf("failed to initialize bot: %v", err)
	}
	if err := scorigamiBot.Run(); err != nil {
		log.Fatalf("bot stopped: %v", err)
	}
}

// assignSource routes a -archive/-schedule/-results flag value to either the URL or
// the file path slot of the matching source
func assignSource(raw string, pathSlot *string, urlSlot *string) {
	if isURL(raw) {
		*urlSlot = raw
		return
	}
	*pathSlot = raw
}
