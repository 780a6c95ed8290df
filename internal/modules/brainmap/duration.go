package brainmap

import "strings"

// DurationBucket is an ordered severity proxy for how long an experience lasted.
// The zero value is DurationUnknown, which scores like an unspecified duration.
type DurationBucket int

const (
	DurationUnknown DurationBucket = iota
	DurationSingle
	DurationDays
	DurationWeeks
	DurationMonths
	DurationUnderOneYear
	DurationOneToTwoYears
	DurationThreeToFiveYears
	DurationFivePlusYears
	DurationThroughout
	DurationOngoing
)

var durationKeys = map[DurationBucket]string{
	DurationSingle:           "single",
	DurationDays:             "days",
	DurationWeeks:            "weeks",
	DurationMonths:           "months",
	DurationUnderOneYear:     "<1year",
	DurationOneToTwoYears:    "1-2years",
	DurationThreeToFiveYears: "3-5years",
	DurationFivePlusYears:    "5+years",
	DurationThroughout:       "throughout",
	DurationOngoing:          "ongoing",
}

var durationMultipliers = map[DurationBucket]float64{
	DurationSingle:           0.7,
	DurationDays:             0.8,
	DurationWeeks:            0.9,
	DurationMonths:           1.0,
	DurationUnderOneYear:     1.1,
	DurationOneToTwoYears:    1.2,
	DurationThreeToFiveYears: 1.3,
	DurationFivePlusYears:    1.4,
	DurationThroughout:       1.5,
	DurationOngoing:          1.5,
}

// ParseDuration maps a survey duration string to its bucket. Anything not in
// the table, including typos, yields DurationUnknown.
func ParseDuration(raw string) DurationBucket {
	k := strings.ToLower(strings.TrimSpace(raw))
	k = strings.ReplaceAll(k, " ", "")
	for b, key := range durationKeys {
		if key == k {
			return b
		}
	}
	return DurationUnknown
}

func (d DurationBucket) String() string {
	if k, ok := durationKeys[d]; ok {
		return k
	}
	return "unknown"
}

// Multiplier returns the impact multiplier for the bucket, 1.0 when unknown.
func (d DurationBucket) Multiplier() float64 {
	if m, ok := durationMultipliers[d]; ok {
		return m
	}
	return 1.0
}

// AllDurations returns the known buckets from shortest to longest.
func AllDurations() []DurationBucket {
	return []DurationBucket{
		DurationSingle, DurationDays, DurationWeeks, DurationMonths, DurationUnderOneYear,
		DurationOneToTwoYears, DurationThreeToFiveYears, DurationFivePlusYears,
		DurationThroughout, DurationOngoing,
	}
}
