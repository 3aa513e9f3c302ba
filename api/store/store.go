/* store.go
 * Contains the store struct and NewStore function. The methods for this package live in
 * guesses.go, which contains everything for interacting with the guesses collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Collections struct {
		Guesses *mongo.Collection
	}
}

// Function for initialising Store. Connects to Mongo and binds the guesses collection
// Preconditions: Receives strings containing dbName and mongoURI
// Postconditions: Returns pointer to the Store object, or error if it occurs
func NewStore(dbName string, mongoURI string) (*Store, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName cannot be empty")
	}

	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	s := &Store{
		Client:   client,
		Database: db,
	}
	s.Collections.Guesses = db.Collection("guesses")
	return s, nil
}

// EnsureIndexes creates the unique (username, gameId) index on the guesses collection.
// The index makes the duplicate-guess check an atomic conditional insert: two sessions
// racing the same submission cannot both land a document
func (s *Store) EnsureIndexes() error {
	_, err := s.Collections.Guesses.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}, {Key: "gameId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create guesses index: %w", err)
	}
	return nil
}
