/* test_helpers.go
 * Contains test helper functions for store package tests
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"time"
)

// CreateTestStore creates a Store connected to a test database.
// Returns the store and a cleanup function.
func CreateTestStore(mongoURI string) (*Store, func(), error) {
	store, err := NewStore("test_scorigami", mongoURI)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if store.Client != nil {
			// Drop test database
			store.Database.Drop(context.TODO())
			// Disconnect client
			store.Client.Disconnect(context.TODO())
		}
	}

	return store, cleanup, nil
}

// CreateSampleGuess creates sample Guess data for testing.
func CreateSampleGuess(username string, gameId string) Guess {
	return Guess{
		Username:    username,
		GameId:      gameId,
		Guess:       []int{100, 98},
		Team1:       "Lakers",
		Team2:       "Celtics",
		GuessDate:   time.Date(2023, time.January, 5, 19, 0, 0, 0, time.UTC),
		SubmittedAt: time.Date(2023, time.January, 4, 12, 0, 0, 0, time.UTC),
	}
}
