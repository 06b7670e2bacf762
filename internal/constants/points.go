package constants

// Point rewards. Each component of a day's score is evaluated independently;
// none are mutually exclusive.
const (
	PointsMorningCheckin = 10
	PointsEveningReview  = 10
	PointsPriorityTask   = 50
	PointsPerTask        = 25
	PointsPerConnection  = 30
	PointsPerHabit       = 30
	PointsPerBasic       = 10

	// Side-channel awards
	PointsWorryEntry   = 20
	PointsWorryReframe = 10
	PointsFocusSession = 15
)

// Flow step counts. The machines are linear; these are fixed.
const (
	MorningStepCount = 14
	EveningStepCount = 5
	WorryStepCount   = 8
)

// Focus timer defaults
const (
	DefaultFocusMinutes = 25
	DefaultBreakMinutes = 5
)

// WaterGoalGlasses is the daily glass count that flips the water basic.
const WaterGoalGlasses = 8
