package redis

import (
	// Go Internal Packages
	"testing"
	"time"

	// Local Packages
	models "tx-publisher/models"

	// External Packages
	"github.com/stretchr/testify/assert"
)

func TestStatsFields(t *testing.T) {
	started := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	stats := models.RunStats{
		RunID:        "run-1",
		StartedAt:    started,
		UpdatedAt:    started.Add(time.Minute),
		State:        "stopped",
		Generated:    10,
		Sent:         9,
		Acknowledged: 8,
		Failed:       1,
		Dropped:      1,
		Pauses:       3,
	}

	fields := statsFields(stats)
	assert.Equal(t, "tx-publisher:runs:run-1", StatsKey(stats.RunID))
	assert.Equal(t, "2025-05-01T10:01:00Z", fields["updated_at"])
	assert.Equal(t, int64(9), fields["sent"])
	assert.Equal(t, int64(0), fields["undelivered"])
	assert.Len(t, fields, 11)
}
