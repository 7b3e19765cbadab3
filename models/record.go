package models

import "time"

// Due record status values.
const (
	StatusPending = "Pending"
	StatusDone    = "Done"
)

// DefaultRecordAmount is substituted when a record is written with a missing
// or non-numeric amount.
const DefaultRecordAmount = 500

// Record is a monthly due record. The (Name, Period) pair is its natural key:
// writes are upserts against that pair, so at most one record exists per
// member per period.
type Record struct {
	// RecordID is the internal unique identifier of the record.
	// It is assigned on first insert and never changes on upsert.
	RecordID int64 `json:"-"`

	// Name is the payer name part of the natural key.
	Name string `json:"name"`

	// Period is the human-readable period label, e.g. "March 2026".
	Period string `json:"period"`

	// Amount is the due amount for the period.
	Amount float64 `json:"amount"`

	// Status is either "Pending" or "Done".
	Status string `json:"status"`

	// PaidDate is the "YYYY-MM-DD" date the due was settled.
	// Empty unless Status is "Done".
	PaidDate string `json:"paidDate"`

	// CreatedAt is the timestamp of the first insert; upserts leave it intact.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Record model.
func (r Record) TableName() string {
	return "records"
}
