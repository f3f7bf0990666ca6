package config

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureMongoIndexes creates the indexes behind the hot listing paths.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := db.Collection("projects").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "featured", Value: -1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("by_featured_created"),
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("skills").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "level", Value: -1}},
			Options: options.Index().SetName("by_category_level"),
		},
	})
	if err != nil {
		return err
	}

	for _, name := range []string{"services", "interests", "competencies", "cv_education", "cv_languages"} {
		_, err = db.Collection(name).Indexes().CreateMany(ctx, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "order", Value: 1}},
				Options: options.Index().SetName("by_order"),
			},
		})
		if err != nil {
			return err
		}
	}

	_, err = db.Collection("admin_users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("uniq_email").
				SetUnique(true),
		},
	})
	return err
}
