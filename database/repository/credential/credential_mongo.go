package credentialRepo

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

// MongoCredentialRepo implements CredentialRepository using MongoDB.
type MongoCredentialRepo struct {
	coll *mongo.Collection
}

// NewMongoCredentialRepo creates a new instance of CredentialRepository using MongoDB.
func NewMongoCredentialRepo() CredentialRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("credentials")
	repo := &MongoCredentialRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoCredentialRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new credential record.
func (r *MongoCredentialRepo) Create(cred *models.Credential) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, cred); err != nil {
		return fmt.Errorf("failed to create credential: %w", err)
	}
	return nil
}

// GetByID retrieves a credential by id.
func (r *MongoCredentialRepo) GetByID(id string) (*models.Credential, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var cred models.Credential
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&cred); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch credential %s: %w", id, err)
	}
	return &cred, nil
}

// GetByEmail retrieves a credential by email.
func (r *MongoCredentialRepo) GetByEmail(email string) (*models.Credential, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var cred models.Credential
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&cred); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch credential with email %s: %w", email, err)
	}
	return &cred, nil
}

// Delete removes a credential record by its id.
func (r *MongoCredentialRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete credential %s: %w", id, err)
	}
	return nil
}
