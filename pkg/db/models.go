package db

// Roster represents a database roster record
type Roster struct {
	ID        string
	Name      string
	StartDate string
	EndDate   string
}

// Shift represents a database shift record, owned by a roster
type Shift struct {
	ID        string
	RosterID  string
	Name      string
	StartTime string
	EndTime   string
}

// Officer represents a database officer directory record
type Officer struct {
	ID          string
	BadgeNumber string
	FirstName   string
	LastName    string
	Rank        string
	Status      string
	Email       string
	Phone       string
}

// Assignment represents a database shift assignment record
type Assignment struct {
	ID        string
	RosterID  string
	ShiftID   string
	OfficerID string
	Date      string
	Position  string
}
