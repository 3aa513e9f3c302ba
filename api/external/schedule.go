/* schedule.go
 * Contains the logic for parsing the league schedule CSV into scheduled games. The
 * schedule export uses Eastern tip-off times written like "7:30p", and rows without a
 * confirmed date and time are placeholders that get dropped
 * Authors: Zachary Bower
 */

package external

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// The schedule export pins start times to US Eastern, written as a fixed GMT-0500
// offset rather than a tz database zone
var easternTime = time.FixedZone("ET", -5*60*60)

// Date layouts seen across schedule exports
var scheduleDateLayouts = []string{
	"1/2/2006",
	"01/02/2006",
	"Mon Jan 2 2006",
	"2006-01-02",
}

// ParseSchedule reads the schedule CSV from r and returns the scheduled games in
// start-time order. Rows missing a date or tip-off time are skipped. Each game gets the
// id <rowIndex>_<visitor>_at_<home>, which is the identifier guesses are stored under
func ParseSchedule(r io.Reader) ([]ScheduledGame, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule header: %w", err)
	}
	columns := indexColumns(header)

	required := []string{"Game Date", "Start (ET)", "Visitor/Neutral", "Home/Neutral"}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("schedule is missing the %q column", name)
		}
	}

	var games []ScheduledGame
	for i := 0; ; i++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read schedule row: %w", err)
		}

		dateStr := strings.TrimSpace(strings.ReplaceAll(field(row, columns, "Game Date"), "\"", ""))
		timeStr := strings.TrimSpace(field(row, columns, "Start (ET)"))
		visitor := strings.TrimSpace(field(row, columns, "Visitor/Neutral"))
		home := strings.TrimSpace(field(row, columns, "Home/Neutral"))
		if dateStr == "" || timeStr == "" || visitor == "" || home == "" {
			continue
		}

		start, err := parseTipOff(dateStr, timeStr)
		if err != nil {
			continue
		}

		games = append(games, ScheduledGame{
			Id:      fmt.Sprintf("%d_%s_at_%s", i, visitor, home),
			Date:    start,
			Visitor: visitor,
			Home:    home,
			Arena:   strings.TrimSpace(field(row, columns, "Arena")),
			Note:    strings.TrimSpace(field(row, columns, "Notes")),
		})
	}

	return games, nil
}

// LoadScheduleFile opens path and parses it as a schedule CSV
func LoadScheduleFile(path string) ([]ScheduledGame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schedule file: %w", err)
	}
	defer f.Close()
	return ParseSchedule(f)
}

// parseTipOff combines a schedule date and an Eastern tip-off time like "7:30p" into a
// single timestamp
func parseTipOff(dateStr string, timeStr string) (time.Time, error) {
	timeStr = strings.ToLower(strings.TrimSpace(timeStr))
	timeStr = strings.NewReplacer("a", " AM", "p", " PM").Replace(timeStr)

	var day time.Time
	var err error
	for _, layout := range scheduleDateLayouts {
		day, err = time.ParseInLocation(layout, dateStr, easternTime)
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid schedule date %q", dateStr)
	}

	clock, err := time.Parse("3:04 PM", timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid tip-off time %q", timeStr)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, easternTime), nil
}

// indexColumns maps trimmed header names to their column positions
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	return columns
}

// field returns the named column from row, or "" when the row is short or the column is
// absent
func field(row []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
