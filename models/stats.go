package models

import "time"

// RunStats summarizes one publisher run. It never contains generated records.
type RunStats struct {
	RunID        string    `json:"run_id" bson:"_id"`
	StartedAt    time.Time `json:"started_at" bson:"started_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
	State        string    `json:"state" bson:"state"`
	Generated    int64     `json:"generated" bson:"generated"`
	Sent         int64     `json:"sent" bson:"sent"`
	Acknowledged int64     `json:"acknowledged" bson:"acknowledged"`
	Failed       int64     `json:"failed" bson:"failed"`
	Dropped      int64     `json:"dropped" bson:"dropped"`
	Pauses       int64     `json:"pauses" bson:"pauses"`
	Undelivered  int64     `json:"undelivered" bson:"undelivered"`
}
