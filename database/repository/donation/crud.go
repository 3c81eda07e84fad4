package donationRepo

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

// DonationRepository defines data access for donation records.
type DonationRepository interface {
	Create(donation *models.Donation) error
	SetStatus(id, status string) error
	ListByOrg(orgID string, limit int64) ([]models.Donation, error)
}

// MongoDonationRepo implements DonationRepository using MongoDB.
type MongoDonationRepo struct {
	coll *mongo.Collection
}

// NewMongoDonationRepo creates a new instance of DonationRepository using MongoDB.
func NewMongoDonationRepo() DonationRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("donations")
	return &MongoDonationRepo{coll: coll}
}

func (r *MongoDonationRepo) Create(donation *models.Donation) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, donation); err != nil {
		return fmt.Errorf("failed to create donation: %w", err)
	}
	return nil
}

func (r *MongoDonationRepo) SetStatus(id, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update donation %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("donation with id %s not found", id)
	}
	return nil
}

func (r *MongoDonationRepo) ListByOrg(orgID string, limit int64) ([]models.Donation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, bson.M{"orgId": orgID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations for org %s: %w", orgID, err)
	}
	defer cursor.Close(ctx)

	var donations []models.Donation
	for cursor.Next(ctx) {
		var d models.Donation
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode donation: %w", err)
		}
		donations = append(donations, d)
	}
	return donations, cursor.Err()
}
