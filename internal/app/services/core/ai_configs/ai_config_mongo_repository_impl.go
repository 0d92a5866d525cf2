package ai_configs

import (
	"context"

	"simoly-service/internal/app/contracts"
	"simoly-service/internal/app/models"
	"simoly-service/internal/pkg/constvars"
	"simoly-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AIConfigMongoRepository struct {
	Collection *mongo.Collection
}

func NewAIConfigMongoRepository(db *mongo.Client, dbName string) contracts.AIConfigRepository {
	return &AIConfigMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAIConfigs),
	}
}

func (repo *AIConfigMongoRepository) CreateAIConfig(ctx context.Context, aiConfig *models.AIConfig) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, aiConfig)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindLatestAIConfig returns the most recently created configuration row, or
// nil when none exists yet.
func (r *AIConfigMongoRepository) FindLatestAIConfig(ctx context.Context) (*models.AIConfig, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var aiConfig models.AIConfig
	err := r.Collection.FindOne(ctx, bson.M{}, opts).Decode(&aiConfig)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &aiConfig, nil
}
