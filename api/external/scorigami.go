/* scorigami.go
 * Contains the logic for loading the scorigami archive JSON and converting it into the
 * in-memory archive structure
 * Authors: Zachary Bower
 */

package external

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"nba-scorigami/api/archive"
)

// archiveDateLayout is the date format the data processor writes for games
const archiveDateLayout = "2006-01-02"

// ParseArchive decodes the scorigami JSON from r and builds the score archive.
// Preconditions: r yields a document in the shape of ArchiveDocument
// Postconditions: Returns the built archive, or an error if the document cannot be
// decoded or has no usable max score. Game entries with an unparseable date or score
// are skipped rather than failing the load
func ParseArchive(r io.Reader) (*archive.Archive, error) {
	var doc ArchiveDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode scorigami document: %w", err)
	}

	var games []archive.Game
	for _, entry := range doc.Scores {
		for _, raw := range entry.Games {
			game, err := toArchiveGame(entry, raw)
			if err != nil {
				continue
			}
			games = append(games, game)
		}
	}

	a, err := archive.Build(games, doc.MaxScore)
	if err != nil {
		return nil, fmt.Errorf("failed to build archive: %w", err)
	}
	a.LastUpdated = doc.LastUpdated
	return a, nil
}

// LoadArchiveFile opens path and parses it as a scorigami archive document
func LoadArchiveFile(path string) (*archive.Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive file: %w", err)
	}
	defer f.Close()
	return ParseArchive(f)
}

// toArchiveGame converts one document game entry to an archive game. The per-game
// "W-L" score string wins over the entry pair when both are present, since older
// processor output only carried the string
func toArchiveGame(entry ScoreEntry, raw GameEntry) (archive.Game, error) {
	date, err := time.Parse(archiveDateLayout, raw.Date)
	if err != nil {
		return archive.Game{}, fmt.Errorf("invalid game date %q: %w", raw.Date, err)
	}

	winningScore, losingScore := entry.WinningScore, entry.LosingScore
	if raw.Score != "" {
		ws, ls, err := parseScorePair(raw.Score)
		if err != nil {
			return archive.Game{}, err
		}
		winningScore, losingScore = ws, ls
	}

	return archive.Game{
		Date:         date,
		WinningTeam:  raw.WinningTeam,
		LosingTeam:   raw.LosingTeam,
		WinningScore: winningScore,
		LosingScore:  losingScore,
	}, nil
}

// parseScorePair splits a "W-L" score string into its two components
func parseScorePair(s string) (int, int, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid score string %q", s)
	}
	ws, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid winning score in %q: %w", s, err)
	}
	ls, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid losing score in %q: %w", s, err)
	}
	return ws, ls, nil
}
