package devicetokenRepo

import (
	"context"
	"fmt"
	"time"

	"urbanauto/database"
	"urbanauto/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDeviceTokenRepo implements DeviceTokenRepository using MongoDB.
type MongoDeviceTokenRepo struct {
	coll *mongo.Collection
}

// NewMongoDeviceTokenRepo creates a new instance of DeviceTokenRepository using MongoDB.
func NewMongoDeviceTokenRepo() DeviceTokenRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("device_tokens")
	repo := &MongoDeviceTokenRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoDeviceTokenRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "token", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Upsert inserts or refreshes a registration keyed by the token string.
func (r *MongoDeviceTokenRepo) Upsert(token *models.DeviceToken) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	token.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"token": token.Token}, token, opts); err != nil {
		return fmt.Errorf("failed to upsert device token: %w", err)
	}
	return nil
}

// GetAll returns every registered device token.
func (r *MongoDeviceTokenRepo) GetAll() ([]models.DeviceToken, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list device tokens: %w", err)
	}
	defer cursor.Close(ctx)

	var tokens []models.DeviceToken
	if err := cursor.All(ctx, &tokens); err != nil {
		return nil, fmt.Errorf("failed to decode device tokens: %w", err)
	}
	return tokens, nil
}

// DeleteByToken removes a registration by its token string.
func (r *MongoDeviceTokenRepo) DeleteByToken(token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"token": token}); err != nil {
		return fmt.Errorf("failed to delete device token: %w", err)
	}
	return nil
}
