package rotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	return BaseReferenceDate.AddDate(0, 0, offset)
}

func TestGetShiftInfo_ReferenceDate(t *testing.T) {
	info := GetShiftInfo(BaseReferenceDate)

	assert.True(t, info.IsWorkDay)
	assert.Equal(t, ShiftNight, info.ShiftType)
	assert.Equal(t, 1, info.WeekNumber)
}

func TestGetShiftInfo_FullCycle(t *testing.T) {
	// Expected classification for each of the 32 cycle days:
	// [0,4) night week 1, [9,13) night week 2, [16,20) day week 1,
	// [24,28) day week 2, everything else off
	expected := func(dayInCycle int) ShiftInfo {
		switch {
		case dayInCycle >= 0 && dayInCycle < 4:
			return ShiftInfo{IsWorkDay: true, ShiftType: ShiftNight, WeekNumber: 1}
		case dayInCycle >= 9 && dayInCycle < 13:
			return ShiftInfo{IsWorkDay: true, ShiftType: ShiftNight, WeekNumber: 2}
		case dayInCycle >= 16 && dayInCycle < 20:
			return ShiftInfo{IsWorkDay: true, ShiftType: ShiftDay, WeekNumber: 1}
		case dayInCycle >= 24 && dayInCycle < 28:
			return ShiftInfo{IsWorkDay: true, ShiftType: ShiftDay, WeekNumber: 2}
		}
		return ShiftInfo{ShiftType: ShiftOff}
	}

	// Check several full cycles so the modulo reduction is exercised too
	for offset := 0; offset < RotationCycleDays*3; offset++ {
		info := GetShiftInfo(day(offset))
		assert.Equal(t, expected(offset%RotationCycleDays), info, "offset %d", offset)
	}
}

func TestGetShiftInfo_WeekNumberInvariant(t *testing.T) {
	// WeekNumber is set if and only if the day is a work day
	for offset := -64; offset < 256; offset++ {
		info := GetShiftInfo(day(offset))
		if info.IsWorkDay {
			assert.NotEqual(t, ShiftOff, info.ShiftType, "offset %d", offset)
			assert.Contains(t, []int{1, 2}, info.WeekNumber, "offset %d", offset)
		} else {
			assert.Equal(t, ShiftOff, info.ShiftType, "offset %d", offset)
			assert.Zero(t, info.WeekNumber, "offset %d", offset)
		}
	}
}

func TestGetShiftInfo_IgnoresTimeOfDay(t *testing.T) {
	base := GetShiftInfo(day(17))

	afternoon := day(17).Add(14*time.Hour + 30*time.Minute)
	assert.Equal(t, base, GetShiftInfo(afternoon))

	lastSecond := day(17).Add(24*time.Hour - time.Second)
	assert.Equal(t, base, GetShiftInfo(lastSecond))

	// Same calendar date in a non-UTC zone classifies identically
	zoned := time.Date(day(17).Year(), day(17).Month(), day(17).Day(), 23, 0, 0, 0, time.FixedZone("TEST", -5*3600))
	assert.Equal(t, base, GetShiftInfo(zoned))
}

func TestGetShiftInfo_CycleRepeats(t *testing.T) {
	for offset := 0; offset < RotationCycleDays; offset++ {
		assert.Equal(t, GetShiftInfo(day(offset)), GetShiftInfo(day(offset+RotationCycleDays)), "offset %d", offset)
	}
}

func TestGetShiftInfo_BeforeReference(t *testing.T) {
	// One day before the reference re-maps to cycle day 31: off
	info := GetShiftInfo(day(-1))
	assert.False(t, info.IsWorkDay)
	assert.Equal(t, ShiftOff, info.ShiftType)

	// Exactly one cycle before re-maps to cycle day 0: night week 1
	info = GetShiftInfo(day(-RotationCycleDays))
	assert.True(t, info.IsWorkDay)
	assert.Equal(t, ShiftNight, info.ShiftType)
	assert.Equal(t, 1, info.WeekNumber)
}

func TestGetShiftInfo_Total(t *testing.T) {
	// No calendar input panics or misclassifies, however far out
	farFuture := time.Date(2150, time.June, 15, 12, 0, 0, 0, time.UTC)
	farPast := time.Date(1980, time.March, 3, 0, 0, 0, 0, time.UTC)

	assert.NotPanics(t, func() { GetShiftInfo(farFuture) })
	assert.NotPanics(t, func() { GetShiftInfo(farPast) })
}

func TestGetNextWorkDay_AlwaysAdvances(t *testing.T) {
	// From a work day, the result is still strictly after the input
	next := GetNextWorkDay(BaseReferenceDate)
	assert.True(t, next.After(BaseReferenceDate))
	assert.True(t, GetShiftInfo(next).IsWorkDay)
	assert.Equal(t, day(1), next)
}

func TestGetNextWorkDay_SkipsOffBlock(t *testing.T) {
	// Cycle day 3 is the last of the first night block; days 4-8 are off
	next := GetNextWorkDay(day(3))
	assert.Equal(t, day(9), next)
}

func TestGetNextWorkDay_StrictlyIncreasingSequence(t *testing.T) {
	current := day(0)

	for i := 0; i < 64; i++ {
		next := GetNextWorkDay(current)
		require.True(t, next.After(current), "iteration %d", i)
		require.True(t, GetShiftInfo(next).IsWorkDay, "iteration %d", i)
		current = next
	}

	// 16 work days per 32-day cycle, so 64 steps from a work day land
	// exactly 4 cycles later
	assert.Equal(t, day(4*RotationCycleDays), current)
}

func TestGetWorkDaysInMonth_January2024(t *testing.T) {
	// January 2024 starts on the reference date, so cycle days 0-30 fall in
	// the month: four full work blocks of four days each
	days := GetWorkDaysInMonth(2024, time.January)

	require.Len(t, days, 16)

	for i, d := range days {
		assert.Equal(t, time.January, d.Month(), "index %d", i)
		assert.True(t, GetShiftInfo(d).IsWorkDay, "index %d", i)
		if i > 0 {
			assert.True(t, d.After(days[i-1]), "dates must be strictly increasing")
		}
	}

	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), days[0])
	assert.Contains(t, days, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC))
	assert.NotContains(t, days, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC))
}

func TestGetWorkDaysInMonth_IsPure(t *testing.T) {
	first := GetWorkDaysInMonth(2024, time.March)
	second := GetWorkDaysInMonth(2024, time.March)
	assert.Equal(t, first, second)
}
