package model

// Center is a physical civil-affairs service location. Reference data owned
// by the backend; the client only reads it.
type Center struct {
	ID           string `json:"id"`
	CenterID     string `json:"center_id"`
	Name         string `json:"name"`
	City         string `json:"city"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	WorkingHours string `json:"working_hours"`
}
