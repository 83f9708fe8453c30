package mongodb

import (
	// Go Internal Packages
	"context"
	"fmt"

	// Local Packages
	models "tx-publisher/models"

	// External Packages
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RunRepository struct {
	Client     *mongo.Client
	Database   string
	Collection string
}

func NewRunRepository(client *mongo.Client, database string) *RunRepository {
	return &RunRepository{Client: client, Database: database, Collection: "publisher_runs"}
}

// SaveStats upserts the run summary, one document per run id.
func (r *RunRepository) SaveStats(ctx context.Context, stats models.RunStats) error {
	collection := r.Client.Database(r.Database).Collection(r.Collection)
	opts := options.Replace().SetUpsert(true)

	_, err := collection.ReplaceOne(ctx, bson.M{"_id": stats.RunID}, stats, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert run %s: %w", stats.RunID, err)
	}
	return nil
}
