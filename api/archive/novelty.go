/* novelty.go
 * Contains the novelty detector that decides whether a candidate score pair would be a
 * scorigami (a final score with no precedent in the historical record)
 * Authors: Zachary Bower
 */

package archive

// IsPotentialNovelty reports whether the score pair (winning, losing) has never
// occurred in the receiver. Pairs where the winning score does not strictly exceed the
// losing score are impossible results and are never flagged.
// Callers must invoke this on the unfiltered archive: whether a score has ever happened
// is a historical fact, independent of whatever filter view the user is looking at
func (a *Archive) IsPotentialNovelty(winningScore int, losingScore int) bool {
	if winningScore <= losingScore {
		return false
	}
	record := a.Lookup(winningScore, losingScore)
	return record == nil || !record.Occurred()
}
