package leadRepo

import (
	"context"
	"fmt"
	"time"

	"ongkit/database"
	"ongkit/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LeadRepository defines data access for public form submissions.
type LeadRepository interface {
	Create(lead *models.Lead) error
	ListByOrg(orgID, kind string, limit int64) ([]models.Lead, error)
}

// MongoLeadRepo implements LeadRepository using MongoDB.
type MongoLeadRepo struct {
	coll *mongo.Collection
}

// NewMongoLeadRepo creates a new instance of LeadRepository using MongoDB.
func NewMongoLeadRepo() LeadRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("leads")
	return &MongoLeadRepo{coll: coll}
}

func (r *MongoLeadRepo) Create(lead *models.Lead) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, lead); err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

func (r *MongoLeadRepo) ListByOrg(orgID, kind string, limit int64) ([]models.Lead, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"orgId": orgID}
	if kind != "" {
		filter["kind"] = kind
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads for org %s: %w", orgID, err)
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	for cursor.Next(ctx) {
		var l models.Lead
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode lead: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, cursor.Err()
}
