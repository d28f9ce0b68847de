package constant

const (
	// DaysPerWeek is the step of the weekly recurrence walk.
	DaysPerWeek = 7

	// MaxMaterializeRangeDays caps a single materialization request so a typo
	// in a year cannot enqueue decades of inserts in one call.
	MaxMaterializeRangeDays = 731
)
