/* results.go
 * Contains the logic for parsing the played-results CSV. These rows carry no game
 * identifier; reconciliation later matches them to guesses by team names and date
 * proximity
 * Authors: Zachary Bower
 */

package external

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Date layouts seen in the results export. Most rows carry a full timestamp, older
// seasons only a date
var resultDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseResults reads the played-results CSV from r. Rows missing either score, or with
// an unparseable date, are skipped rather than failing the load
func ParseResults(r io.Reader) ([]PlayedGame, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read results header: %w", err)
	}
	columns := indexColumns(header)

	required := []string{"gameDate", "hometeamCity", "hometeamName", "awayteamCity", "awayteamName", "homeScore", "awayScore"}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("results file is missing the %q column", name)
		}
	}

	var games []PlayedGame
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read results row: %w", err)
		}

		homeScore, err1 := strconv.Atoi(strings.TrimSpace(field(row, columns, "homeScore")))
		awayScore, err2 := strconv.Atoi(strings.TrimSpace(field(row, columns, "awayScore")))
		if err1 != nil || err2 != nil {
			continue
		}

		gameDate, err := parseResultDate(field(row, columns, "gameDate"))
		if err != nil {
			continue
		}

		games = append(games, PlayedGame{
			HomeTeamCity: strings.TrimSpace(field(row, columns, "hometeamCity")),
			HomeTeamName: strings.TrimSpace(field(row, columns, "hometeamName")),
			AwayTeamCity: strings.TrimSpace(field(row, columns, "awayteamCity")),
			AwayTeamName: strings.TrimSpace(field(row, columns, "awayteamName")),
			HomeScore:    homeScore,
			AwayScore:    awayScore,
			GameDate:     gameDate,
		})
	}

	return games, nil
}

// LoadResultsFile opens path and parses it as a played-results CSV
func LoadResultsFile(path string) ([]PlayedGame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open results file: %w", err)
	}
	defer f.Close()
	return ParseResults(f)
}

// parseResultDate tries each known layout for a result row date
func parseResultDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range resultDateLayouts {
		if t, err := time.ParseInLocation(layout, s, easternTime); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid result date %q", s)
}
