package models

// Setting is a generic key→value pair reserved for future extensibility.
// Values are stored as raw strings; interpretation is up to the caller.
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// TableName returns the name of the database table
// associated with the Setting model.
func (s Setting) TableName() string {
	return "settings"
}
