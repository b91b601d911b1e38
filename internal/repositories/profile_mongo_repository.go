package repositories

import (
	"context"
	"errors"
	"fmt"

	"coffeinimals/internal/apperr"
	"coffeinimals/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// DefaultProfileDBName is the default for MongoConfig.DBName.
	DefaultProfileDBName = "coffeinimals"

	// DefaultUsersCollectionName is the default for MongoConfig.UsersCollectionName.
	DefaultUsersCollectionName = "users"
)

// MongoConfig holds MongoProfileRepository configuration.
// A zero value is a valid configuration, see constants for default values.
type MongoConfig struct {
	// DBName is the name of the database holding profile documents.
	DBName string

	// UsersCollectionName is the name of the collection holding profile documents.
	UsersCollectionName string
}

// MongoProfileRepository is a MongoDB implementation of ProfileRepository.
type MongoProfileRepository struct {
	users *mongo.Collection
}

// NewMongoProfileRepository creates a new MongoProfileRepository.
// This function panics if client is nil.
func NewMongoProfileRepository(client *mongo.Client, cfg MongoConfig) *MongoProfileRepository {
	if client == nil {
		panic("mongo client must be provided")
	}
	if cfg.DBName == "" {
		cfg.DBName = DefaultProfileDBName
	}
	if cfg.UsersCollectionName == "" {
		cfg.UsersCollectionName = DefaultUsersCollectionName
	}

	return &MongoProfileRepository{
		users: client.Database(cfg.DBName).Collection(cfg.UsersCollectionName),
	}
}

// Get loads the profile document with the given ID.
func (r *MongoProfileRepository) Get(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.ErrNotFound
		}
		return nil, &apperr.PersistenceError{Op: fmt.Sprintf("get profile %s", id), Err: err}
	}
	if user.Favorites == nil {
		user.Favorites = []string{}
	}
	return &user, nil
}

// Set writes the full profile document, creating it when absent.
func (r *MongoProfileRepository) Set(ctx context.Context, id string, user *models.User) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := r.users.ReplaceOne(ctx, bson.M{"_id": id}, user, opts); err != nil {
		return &apperr.PersistenceError{Op: fmt.Sprintf("set profile %s", id), Err: err}
	}
	return nil
}

// UpdateFields merges the given fields into the profile document.
func (r *MongoProfileRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	update := bson.M{"$set": bson.M(fields)}
	res, err := r.users.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return &apperr.PersistenceError{Op: fmt.Sprintf("update profile %s", id), Err: err}
	}
	if res.MatchedCount == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
