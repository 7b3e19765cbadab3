package models

// Member is an entry in the household membership registry. The registry is
// always replaced as a whole; members are never mutated record-by-record.
type Member struct {
	// Code is the short member code, e.g. "BB-01". Serialized as "id" to
	// match the registry's wire format.
	Code string `json:"id"`

	// Name is the member's full name.
	Name string `json:"name"`

	// Phone is the member's contact number; may be empty.
	Phone string `json:"phone"`
}

// TableName returns the name of the database table
// associated with the Member model.
func (m Member) TableName() string {
	return "members"
}

// DefaultMembers is the fixed seed roster returned when the stored registry
// is empty. It is never persisted.
func DefaultMembers() []Member {
	return []Member{
		{Code: "BB-01", Name: "Deepak Singh Bisht", Phone: ""},
		{Code: "BB-02", Name: "Lokesh Singh Bisht", Phone: ""},
		{Code: "BB-03", Name: "Suraj Singh Bisht", Phone: ""},
		{Code: "BB-04", Name: "Karan Singh Bisht", Phone: ""},
		{Code: "BB-05", Name: "Himanshu Bisht", Phone: ""},
		{Code: "BB-06", Name: "Gaurav Bisht", Phone: ""},
		{Code: "BB-07", Name: "Rahul Bisht", Phone: ""},
		{Code: "BB-08", Name: "Saurav Bisht", Phone: ""},
		{Code: "BB-09", Name: "Pankaj Bisht", Phone: ""},
	}
}
