/* guesses.go
 * Contains the methods for interacting with the guesses collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateGuess is returned when a user already has a guess stored for a game
var ErrDuplicateGuess = errors.New("a guess for this game has already been submitted")

// StoreGuess persists a new guess in the db
// Preconditions: Receives a Guess with at least username and gameId set
// Postconditions: Inserts the guess, or returns ErrDuplicateGuess if one already exists
// for this (username, gameId), or another error if the operation was unsuccessful.
// The pre-insert lookup gives the common duplicate a clean answer without a round trip
// through the index error; the unique index still backstops a concurrent submission
func (s *Store) StoreGuess(guess Guess) error {
	var existing Guess
	err := s.Collections.Guesses.FindOne(context.TODO(), bson.M{"username": guess.Username, "gameId": guess.GameId}).Decode(&existing)
	if err == nil {
		return ErrDuplicateGuess
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("lookup for existing guess failed: %w", err)
	}

	_, err = s.Collections.Guesses.InsertOne(context.TODO(), guess)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateGuess
		}
		return fmt.Errorf("failed to insert guess: %w", err)
	}
	return nil
}

// GetUserGuesses does a DB lookup and gets all guesses stored for a user
// Preconditions: Receives string containing the username
// Postconditions: Returns a slice of the user's guesses in submission order, or an
// error if it occurs. A user with no guesses gets an empty slice, not an error
func (s *Store) GetUserGuesses(username string) ([]Guess, error) {
	cursor, err := s.Collections.Guesses.Find(context.TODO(), bson.D{{Key: "username", Value: username}})
	if err != nil {
		return nil, fmt.Errorf("error fetching guesses from db: %w", err)
	}

	var results []Guess
	if err = cursor.All(context.TODO(), &results); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of guesses: %w", err)
	}
	return results, nil
}

// GetAllGuesses does a DB lookup and gets every stored guess. Used in leaderboard
// calculations
// Postconditions: Returns a slice of all guesses, or an error if it occurs
func (s *Store) GetAllGuesses() ([]Guess, error) {
	cursor, err := s.Collections.Guesses.Find(context.TODO(), bson.D{})
	if err != nil {
		return nil, fmt.Errorf("error fetching guesses from db: %w", err)
	}

	var results []Guess
	if err = cursor.All(context.TODO(), &results); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of guesses: %w", err)
	}
	return results, nil
}
