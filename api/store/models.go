/* models.go
 * This file contains the structs that relate to DB objects
 * Authors: Zachary Bower
 */

package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Guess is one submitted score prediction. Guess is stored visitor-first: Guess[0] is
// the predicted score for Team1 (the visitor), Guess[1] for Team2 (the home side).
// A guess is immutable once stored; there is no update or delete path
type Guess struct {
	Id          primitive.ObjectID `bson:"_id,omitempty"`
	Username    string             `bson:"username,omitempty"`
	GameId      string             `bson:"gameId,omitempty"`
	Guess       []int              `bson:"guess,omitempty"`
	Team1       string             `bson:"team1,omitempty"`
	Team2       string             `bson:"team2,omitempty"`
	GuessDate   time.Time          `bson:"guessDate,omitempty"`
	SubmittedAt time.Time          `bson:"submittedAt,omitempty"`
}
