package minisiteRepo

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

// MongoMiniSiteRepo implements MiniSiteRepository using MongoDB.
type MongoMiniSiteRepo struct {
	coll *mongo.Collection
}

// NewMongoMiniSiteRepo creates a new instance of MiniSiteRepository using MongoDB.
func NewMongoMiniSiteRepo() MiniSiteRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("minisites")
	return &MongoMiniSiteRepo{coll: coll}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoMiniSiteRepo) GetByOrgID(orgID string) (*models.MiniSiteConfig, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var cfg models.MiniSiteConfig
	filter := bson.M{"orgId": orgID}
	if err := r.coll.FindOne(ctx, filter).Decode(&cfg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch mini-site config for org %s: %w", orgID, err)
	}
	return &cfg, nil
}

func (r *MongoMiniSiteRepo) GetBySlug(slug string) (*models.MiniSiteConfig, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var cfg models.MiniSiteConfig
	filter := bson.M{"slug": slug}
	if err := r.coll.FindOne(ctx, filter).Decode(&cfg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch mini-site config for slug %s: %w", slug, err)
	}
	return &cfg, nil
}

func (r *MongoMiniSiteRepo) Create(cfg *models.MiniSiteConfig) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, cfg); err != nil {
		return fmt.Errorf("failed to create mini-site config for org %s: %w", cfg.OrgID, err)
	}
	return nil
}

func (r *MongoMiniSiteRepo) ApplyPatch(orgID string, patch bson.M) (*models.MiniSiteConfig, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	setDoc := bson.M{}
	for k, v := range patch {
		setDoc[k] = v
	}
	setDoc["updatedAt"] = time.Now()

	filter := bson.M{"orgId": orgID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.MiniSiteConfig
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": setDoc}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to patch mini-site config for org %s: %w", orgID, err)
	}
	return &updated, nil
}

func (r *MongoMiniSiteRepo) SlugTaken(slug, excludeOrgID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	filter := bson.M{"slug": slug}
	if excludeOrgID != "" {
		filter["orgId"] = bson.M{"$ne": excludeOrgID}
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check slug %s: %w", slug, err)
	}
	return count > 0, nil
}
