package data

import "testing"

func TestRequiredExperience(t *testing.T) {
	tests := []struct {
		level int
		want  int64
	}{
		{0, 3024},   // clamped to 1
		{1, 3024},   // 1*2*3*4 + 3000
		{2, 3120},   // 2*3*4*5 + 3000
		{10, 20160}, // 10*11*12*13 + 3000
		{200, 200*201*202*203 + 3000},
		{500, 200*201*202*203 + 3000}, // clamped to 200
	}

	for _, tt := range tests {
		got := RequiredExperience(tt.level)
		if got != tt.want {
			t.Errorf("RequiredExperience(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestGetLevelForExp(t *testing.T) {
	tests := []struct {
		exp        int64
		startLevel int
		wantLevel  int
		wantRest   int64
	}{
		{0, 1, 1, 0},
		{3023, 1, 1, 3023},        // just below level 2
		{3024, 1, 2, 0},           // exactly level 2
		{3024 + 3120, 1, 3, 0},    // two thresholds at once
		{3024 + 3121, 1, 3, 1},    // one over
		{100, 0, 1, 100},          // start level clamped
		{1 << 50, 199, 200, 1<<50 - RequiredExperience(199)},
	}

	for _, tt := range tests {
		level, rest := GetLevelForExp(tt.exp, tt.startLevel)
		if level != tt.wantLevel || rest != tt.wantRest {
			t.Errorf("GetLevelForExp(%d, %d) = (%d, %d), want (%d, %d)",
				tt.exp, tt.startLevel, level, rest, tt.wantLevel, tt.wantRest)
		}
	}
}

func TestRequiredExperienceMonotonic(t *testing.T) {
	for i := 1; i < MaxCurveLevel; i++ {
		if RequiredExperience(i) >= RequiredExperience(i+1) {
			t.Errorf("RequiredExperience(%d)=%d >= RequiredExperience(%d)=%d, must be strictly increasing",
				i, RequiredExperience(i), i+1, RequiredExperience(i+1))
		}
	}
}
