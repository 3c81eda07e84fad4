package organizationRepo

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

// MongoOrganizationRepo implements OrganizationRepository using MongoDB.
type MongoOrganizationRepo struct {
	coll *mongo.Collection
}

// NewMongoOrganizationRepo creates a new instance of OrganizationRepository using MongoDB.
func NewMongoOrganizationRepo() OrganizationRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("organizations")
	return &MongoOrganizationRepo{coll: coll}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoOrganizationRepo) GetByID(id string) (*models.Organization, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var org models.Organization
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&org); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch organization with id %s: %w", id, err)
	}
	return &org, nil
}

func (r *MongoOrganizationRepo) GetBySlug(slug string) (*models.Organization, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var org models.Organization
	if err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&org); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch organization with slug %s: %w", slug, err)
	}
	return &org, nil
}

func (r *MongoOrganizationRepo) Create(org *models.Organization) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, org); err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}
	return nil
}

func (r *MongoOrganizationRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	setDoc := bson.M{}
	for k, v := range updateDoc {
		setDoc[k] = v
	}
	setDoc["updatedAt"] = time.Now()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": setDoc})
	if err != nil {
		return fmt.Errorf("failed to update organization with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoOrganizationRepo) ListExpiring(cutoff time.Time) ([]models.Organization, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"subscription.plan":           bson.M{"$in": []string{models.PlanPro, models.PlanElite}},
		"subscription.status":         models.SubscriptionActive,
		"subscription.expiresAt":      bson.M{"$ne": nil, "$lte": cutoff},
		"subscription.reminderSentAt": nil,
	}
	opts := options.Find().SetSort(bson.D{{Key: "subscription.expiresAt", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring subscriptions: %w", err)
	}
	defer cursor.Close(ctx)

	var orgs []models.Organization
	for cursor.Next(ctx) {
		var org models.Organization
		if err := cursor.Decode(&org); err != nil {
			return nil, fmt.Errorf("failed to decode organization: %w", err)
		}
		orgs = append(orgs, org)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return orgs, nil
}
