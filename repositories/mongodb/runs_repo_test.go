package mongodb

import (
	// Go Internal Packages
	"testing"
	"time"

	// Local Packages
	models "tx-publisher/models"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestRunStatsDocument(t *testing.T) {
	started := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	stats := models.RunStats{
		RunID:        "run-1",
		StartedAt:    started,
		UpdatedAt:    started.Add(time.Minute),
		State:        "stopped",
		Generated:    12,
		Sent:         11,
		Acknowledged: 10,
		Failed:       1,
		Dropped:      1,
		Pauses:       3,
	}

	raw, err := bson.Marshal(stats)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))

	assert.Equal(t, "run-1", doc["_id"])
	assert.Equal(t, "stopped", doc["state"])
	assert.Equal(t, int64(12), doc["generated"])
	assert.Equal(t, int64(10), doc["acknowledged"])
	assert.Equal(t, int64(0), doc["undelivered"])
	assert.NotContains(t, doc, "run_id")
	assert.Len(t, doc, 11)
}

func TestNewRunRepository(t *testing.T) {
	repo := NewRunRepository(nil, "txpub")
	assert.Equal(t, "txpub", repo.Database)
	assert.Equal(t, "publisher_runs", repo.Collection)
}
