package questionnaire_responses

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

type QuestionnaireResponseMongoRepository struct {
	Collection *mongo.Collection
}

func NewQuestionnaireResponseMongoRepository(db *mongo.Client, dbName string) contracts.QuestionnaireResponseRepository {
	return &QuestionnaireResponseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionQuestionnaireResponses),
	}
}

func (repo *QuestionnaireResponseMongoRepository) CreateResponse(ctx context.Context, response *models.QuestionnaireResponse) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, response)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *QuestionnaireResponseMongoRepository) FindResponseByID(ctx context.Context, responseID string) (*models.QuestionnaireResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(responseID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var response models.QuestionnaireResponse
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&response)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &response, nil
}

// FindResponseByQuestionnaireAndUser returns the most recent response a user
// gave to a questionnaire, or nil when none exists.
func (r *QuestionnaireResponseMongoRepository) FindResponseByQuestionnaireAndUser(ctx context.Context, questionnaireID, userID string) (*models.QuestionnaireResponse, error) {
	filter := bson.M{
		"questionnaire_id": questionnaireID,
		"user_id":          userID,
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var response models.QuestionnaireResponse
	err := r.Collection.FindOne(ctx, filter, opts).Decode(&response)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &response, nil
}

func (r *QuestionnaireResponseMongoRepository) UpdateResponse(ctx context.Context, response *models.QuestionnaireResponse) error {
	objectID, err := primitive.ObjectIDFromHex(response.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"status":    response.Status,
		"answers":   response.Answers,
		"updatedAt": response.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
