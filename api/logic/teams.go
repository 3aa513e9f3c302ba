/* teams.go
 * Contains the logic for resolving free-text team input against the list of valid
 * franchise names
 * Authors: Zachary Bower
 */

package logic

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ResolveTeamNames processes team names from user input and checks if they are valid.
// Preconditions: receives two string slices; one containing the user's team inputs and
// another that is the list of valid franchise names
// Postconditions: returns two string slices, a slice of correctly formatted franchise
// names and a slice containing the inputs that matched nothing
func ResolveTeamNames(inputs []string, validTeams []string) ([]string, []string) {
	var resolved []string
	var invalid []string

	// Convert valid names to lowercase for better matching
	lookup := make(map[string]string)
	var validTeamsLower []string
	for _, name := range validTeams {
		lower := strings.ToLower(name)
		lookup[lower] = name
		validTeamsLower = append(validTeamsLower, lower)
	}

	for _, input := range inputs {
		lowerInput := strings.ToLower(strings.TrimSpace(input))
		fuzzyResults := fuzzy.RankFind(lowerInput, validTeamsLower)
		if len(fuzzyResults) == 0 {
			invalid = append(invalid, input)
			continue
		}
		// If there are multiple matches, prefer an exact match with the input
		target := ""
		for i := range fuzzyResults {
			if fuzzyResults[i].Target == lowerInput {
				target = fuzzyResults[i].Target
			}
		}
		// If no exact match was found, take the best ranked match
		if target == "" {
			sort.Sort(fuzzyResults)
			target = fuzzyResults[0].Target
		}
		resolved = append(resolved, lookup[target]) // Append the original name, not the lowercase one
	}
	return resolved, invalid
}

// ResolveTeamName resolves a single input, returning the matched franchise name and
// whether anything matched. Used for the team filter selector
func ResolveTeamName(input string, validTeams []string) (string, bool) {
	resolved, _ := ResolveTeamNames([]string{input}, validTeams)
	if len(resolved) == 0 {
		return "", false
	}
	return resolved[0], true
}
