package models

// Event is a scheduled block for a single day, as supplied by the persistence layer.
type Event struct {
	ID        string  `json:"id" yaml:"id"`
	Date      string  `json:"date" yaml:"date"` // YYYY-MM-DD format
	Title     string  `json:"title" yaml:"title"`
	StartTime string  `json:"start_time" yaml:"start_time"` // HH:MM format
	EndTime   string  `json:"end_time" yaml:"end_time"`     // HH:MM format, "00:00" or "24:00" means end of day
	Color     string  `json:"color,omitempty" yaml:"color,omitempty"`
	Icon      string  `json:"icon,omitempty" yaml:"icon,omitempty"`
	Notes     string  `json:"notes,omitempty" yaml:"notes,omitempty"`
	Completed bool    `json:"completed" yaml:"completed"`
	CreatedAt string  `json:"created_at,omitempty" yaml:"-"` // RFC3339 timestamp
	DeletedAt *string `json:"deleted_at,omitempty" yaml:"-"` // RFC3339 timestamp
}

// IsDeleted reports whether the event has been soft-deleted.
func (e Event) IsDeleted() bool {
	return e.DeletedAt != nil
}
