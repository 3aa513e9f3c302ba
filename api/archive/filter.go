/* filter.go
 * Contains the filter engine that derives restricted views of the score archive. The
 * original UI re-derives its filtered view from the raw data on every selector change,
 * and Filter keeps that shape: it is a pure function from one archive to another
 * Authors: Zachary Bower
 */

package archive

// YearRange is an inclusive range of calendar years used to restrict an archive view
type YearRange struct {
	Min int
	Max int
}

// Contains reports whether a year falls inside the range
func (r YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// Filter returns a new archive view containing only the games whose year falls inside
// years and, unless team is the AllFranchises sentinel, whose winning or losing team
// equals team. The receiver is never mutated. Records that lose all of their games stop
// reporting as occurred in the returned view.
// Filtering is idempotent: applying the same parameters to an already-filtered view
// returns an equal view
func (a *Archive) Filter(years YearRange, team string) *Archive {
	filtered := &Archive{
		MaxScore:    a.MaxScore,
		LastUpdated: a.LastUpdated,
		records:     make(map[ScoreKey]*ScoreRecord),
	}

	for key, record := range a.records {
		var games []Game
		for _, game := range record.Games {
			if !years.Contains(game.Date.Year()) {
				continue
			}
			if team != AllFranchises && game.WinningTeam != team && game.LosingTeam != team {
				continue
			}
			games = append(games, game)
		}
		if len(games) == 0 {
			continue
		}
		filtered.records[key] = &ScoreRecord{
			WinningScore: record.WinningScore,
			LosingScore:  record.LosingScore,
			Games:        games,
		}
	}

	return filtered
}
