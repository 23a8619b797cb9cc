package constants

const (
	AppName           = "dayface"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/dayface/config.yaml"
	DefaultDBPath     = "~/.config/dayface/dayface.db"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Day bounds, in minutes from midnight. Intervals are half-open [start, end).
	MinutesPerDay  = 1440
	MinutesPerHour = 60
	LastMinute     = MinutesPerDay - 1

	// Gesture rounding
	SnapMinutes         = 15
	MinSelectionMinutes = 15
	DefaultBlockMinutes = 60

	// Linear layout metrics, in pixels
	PixelsPerMinute = 1.5
	MinRowHeight    = 48.0
	TileHeight      = 56.0
	TileGap         = 8.0
	RowMargin       = 8.0

	// Polar projection
	TopAngle           = -90.0
	FullCircleDegrees  = 360.0
	SemicircleDegrees  = 180.0
	SemicircleMinutes  = 360
	DefaultWindowHours = 6

	// Rotation
	DegPerPixel   = 0.5
	MaxRotation   = 180.0
	RotationSnap  = 30.0
	PageThreshold = 90.0

	// Astro fallbacks when no location data is available
	DefaultSunrise = "06:00"
	DefaultSunset  = "18:00"

	// Slice styling
	DefaultEventColor = "#4f86c6"
	FreeSliceColor    = "#e6e6e6"
	FreeSliceRadius   = 0.55
)
