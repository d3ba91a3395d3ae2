package constants

// Storage keys. The values are part of the persisted layout and must not change.
const (
	KeyProfile  = "love-countdown-data"
	KeyMood     = "love-countdown-mood"
	KeyDiary    = "love-countdown-diary"
	KeyMiss     = "love-countdown-miss"
	KeyCapsule  = "love-countdown-capsule"
	KeyStats    = "love-countdown-stats"
	KeySilent   = "love-countdown-silent"
	KeyBucket   = "love-countdown-bucket"
	KeyPromises = "love-countdown-promises"
	KeyTruth    = "love-countdown-truth"
	KeyMemories = "love-countdown-memories"

	KeyWheelFood = "spinWheel_food"
	KeyWheelDate = "spinWheel_date"
)

// Retention bounds and text caps
const (
	MaxDiaryEntries   = 50
	MaxTruthHistory   = 30
	MaxDiaryText      = 100
	MaxCapsuleText    = 200
	MaxPromiseText    = 150
	MaxMemoryTitle    = 60
	MaxMemoryDesc     = 150
	MinWheelOptions   = 2
	QuizLength        = 5
	MinAge            = 1
	MaxAge            = 100
	DefaultBucketIcon = "💕"
	DefaultMemoryIcon = "💕"
	MissMoodEmoji     = "🥹"
)

// AllKeys lists every key owned by the application, in reset order.
var AllKeys = []string{
	KeyProfile,
	KeyMood,
	KeyDiary,
	KeyMiss,
	KeyCapsule,
	KeyStats,
	KeySilent,
	KeyBucket,
	KeyPromises,
	KeyTruth,
	KeyMemories,
	KeyWheelFood,
	KeyWheelDate,
}
