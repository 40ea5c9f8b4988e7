package constants

import "time"

// Scoring
const (
	// InitialMultiplier is the multiplier with no upgrades and no bonuses
	InitialMultiplier = 1.0

	// UpgradeCostGrowth is applied to an upgrade cost after each purchase, then floored
	UpgradeCostGrowth = 1.5

	// CO2PerKm is kilograms of CO2 a car would emit per kilometer (130 g)
	CO2PerKm = 0.13

	// QuizCorrectFactor multiplies the live multiplier on a correct answer
	QuizCorrectFactor = 2.0

	// QuizWrongFactor multiplies the live multiplier on a wrong answer
	QuizWrongFactor = 0.5
)

// Timer Defaults
const (
	// BonusSweepInterval is the polling period of the temporary bonus expiry sweep
	BonusSweepInterval = time.Second

	// AutoPedalInterval is the period between auto-pedal accumulations
	AutoPedalInterval = time.Second

	// PopupDuration is how long a score popup stays visible
	PopupDuration = time.Second

	// TipInterval is the period between eco tips
	TipInterval = 15 * time.Second

	// TipDuration is how long a scheduled tip stays visible
	TipDuration = 8 * time.Second

	// QuizFeedbackDuration is how long the quiz result notice stays visible
	QuizFeedbackDuration = 3 * time.Second

	// QuizMinDelay and QuizMaxDelay bound the random quiz trigger delay
	QuizMinDelay = 180 * time.Second
	QuizMaxDelay = 300 * time.Second
)

// Bonus identifiers with special handling
const (
	BonusAutoPedal = "auto-pedal"
)
