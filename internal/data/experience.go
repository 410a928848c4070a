package data

// MaxCurveLevel caps the character level used by the experience curve.
const MaxCurveLevel = 200

// BaseRequiredExperience is the flat part of every threshold.
const BaseRequiredExperience = 3000

// RequiredExperience returns the character experience needed to advance
// from level to level+1. Levels are clamped to [1, MaxCurveLevel].
func RequiredExperience(level int) int64 {
	l := int64(clampLevel(level))
	return l*(l+1)*(l+2)*(l+3) + BaseRequiredExperience
}

// GetLevelForExp returns how many levels a character at startLevel gains
// with exp accumulated experience, and the remainder left over.
// Scans upward threshold by threshold, stopping at MaxCurveLevel.
func GetLevelForExp(exp int64, startLevel int) (level int, rest int64) {
	level = clampLevel(startLevel)
	rest = exp
	for level < MaxCurveLevel {
		need := RequiredExperience(level)
		if rest < need {
			break
		}
		rest -= need
		level++
	}
	return level, rest
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > MaxCurveLevel {
		return MaxCurveLevel
	}
	return level
}
