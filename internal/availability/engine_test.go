package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"field-service-api/internal/models"
	"field-service-api/pkg/timeslot"
)

func job(start, duration int) models.Job {
	return models.Job{StartMinute: start, DurationMinutes: duration}
}

func openDay(intervals ...timeslot.Interval) models.BaseAvailability {
	if intervals == nil {
		intervals = []timeslot.Interval{}
	}
	return models.BaseAvailability{Available: true, Intervals: intervals}
}

// Working 09:00-12:00 and 13:00-18:00 with one job 09:30-10:30 and a
// 15 minute driving buffer: the buffers eat 09:15-09:30 and 10:30-10:45.
func TestComputeRemainingWithDrivingBuffer(t *testing.T) {
	base := openDay(iv(540, 720), iv(780, 1080))

	result, err := ComputeRemaining(base, []models.Job{job(570, 60)}, 15, nil)
	require.NoError(t, err)

	assert.Equal(t, []timeslot.Interval{iv(540, 555), iv(645, 720), iv(780, 1080)}, result.RemainingIntervals)
	assert.Equal(t, []timeslot.Interval{iv(570, 630)}, result.BusyIntervals)
	assert.Equal(t, []timeslot.Interval{iv(555, 570), iv(630, 645)}, result.DrivingIntervals)
	assert.Equal(t, 60, result.TotalBusyMinutes)
	assert.Equal(t, 30, result.TotalDrivingMinutes)
	assert.Equal(t, 15+75+300, result.TotalFreeMinutes)
}

func TestComputeRemainingNoDrivingTime(t *testing.T) {
	base := openDay(iv(540, 1080))

	result, err := ComputeRemaining(base, []models.Job{job(600, 120)}, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, []timeslot.Interval{iv(540, 600), iv(720, 1080)}, result.RemainingIntervals)
	assert.Empty(t, result.DrivingIntervals)
	assert.Equal(t, 0, result.TotalDrivingMinutes)
}

// Unavailable day short-circuits everything regardless of jobs.
func TestComputeRemainingUnavailableDay(t *testing.T) {
	base := models.BaseAvailability{Available: false, Intervals: []timeslot.Interval{}}
	candidate := &models.Candidate{StartMinute: 600, DurationMinutes: 60}

	result, err := ComputeRemaining(base, []models.Job{job(600, 60), job(800, 120)}, 30, candidate)
	require.NoError(t, err)

	assert.Empty(t, result.RemainingIntervals)
	assert.Empty(t, result.BusyIntervals)
	assert.False(t, result.IsAvailableForCandidate)
	assert.Zero(t, result.TotalFreeMinutes)
	assert.Zero(t, result.TotalBusyMinutes)
	assert.Zero(t, result.TotalDrivingMinutes)
}

// A candidate starting before the window opens does not fit.
func TestCandidateBeforeWindow(t *testing.T) {
	base := openDay(iv(540, 1080))
	candidate := &models.Candidate{StartMinute: 480, DurationMinutes: 60}

	result, err := ComputeRemaining(base, nil, 0, candidate)
	require.NoError(t, err)
	assert.False(t, result.IsAvailableForCandidate)
}

func TestCandidateFitsInsideRemaining(t *testing.T) {
	base := openDay(iv(540, 1080))

	tests := []struct {
		name      string
		candidate models.Candidate
		want      bool
	}{
		{name: "exact window", candidate: models.Candidate{StartMinute: 540, DurationMinutes: 540}, want: true},
		{name: "inside", candidate: models.Candidate{StartMinute: 600, DurationMinutes: 60}, want: true},
		{name: "overruns the end", candidate: models.Candidate{StartMinute: 1050, DurationMinutes: 60}, want: false},
		{name: "collides with job", candidate: models.Candidate{StartMinute: 700, DurationMinutes: 60}, want: false},
	}

	jobs := []models.Job{job(720, 60)}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeRemaining(base, jobs, 0, &tt.candidate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.IsAvailableForCandidate)
		})
	}
}

// Open schedule: available with no declared hours accepts any candidate,
// and zero free minutes must not read as "unavailable".
func TestOpenScheduleFallback(t *testing.T) {
	base := openDay()
	candidate := &models.Candidate{StartMinute: 300, DurationMinutes: 240}

	result, err := ComputeRemaining(base, nil, 0, candidate)
	require.NoError(t, err)
	assert.True(t, result.IsAvailableForCandidate)
	assert.Zero(t, result.TotalFreeMinutes)
}

// Jobs recorded outside nominal hours still count as busy time.
func TestJobOutsideBaseStillCountsAsBusy(t *testing.T) {
	base := openDay(iv(540, 1080))

	result, err := ComputeRemaining(base, []models.Job{job(60, 60)}, 0, nil)
	require.NoError(t, err)

	assert.Equal(t, 60, result.TotalBusyMinutes)
	assert.Equal(t, []timeslot.Interval{iv(540, 1080)}, result.RemainingIntervals, "nothing to subtract inside base hours")
}

// Driving buffers never extend outside the day's outer bound.
func TestDrivingBuffersClampedToDayBounds(t *testing.T) {
	base := openDay(iv(540, 720))

	// First job starts right at opening, last job ends at closing.
	jobs := []models.Job{job(540, 30), job(690, 30)}
	result, err := ComputeRemaining(base, jobs, 60, nil)
	require.NoError(t, err)

	for _, buffer := range result.DrivingIntervals {
		assert.GreaterOrEqual(t, buffer.Start, 540)
		assert.LessOrEqual(t, buffer.End, 720)
	}
}

// Buffers are per job, computed before the busy merge: two back-to-back
// jobs still produce a buffer zone around the pair, and buffer time that
// coincides with a job is not double-counted in the totals.
func TestDrivingBuffersPerJobBeforeMerge(t *testing.T) {
	base := openDay(iv(480, 1080))

	jobs := []models.Job{job(600, 60), job(660, 60)}
	result, err := ComputeRemaining(base, jobs, 30, nil)
	require.NoError(t, err)

	assert.Equal(t, []timeslot.Interval{iv(600, 720)}, result.BusyIntervals)
	// Before-buffer of the second job and after-buffer of the first fall
	// inside busy time; only the outer 30+30 minutes count as driving.
	assert.Equal(t, []timeslot.Interval{iv(570, 600), iv(630, 690), iv(720, 750)}, result.DrivingIntervals)
	assert.Equal(t, 120, result.TotalBusyMinutes)
	assert.Equal(t, 60, result.TotalDrivingMinutes)
	assert.Equal(t, []timeslot.Interval{iv(480, 570), iv(750, 1080)}, result.RemainingIntervals)
}

// busy + driving + free never exceeds the total base time.
func TestNoDoubleCounting(t *testing.T) {
	base := openDay(iv(540, 720), iv(780, 1080))
	baseTotal := timeslot.TotalMinutes(base.Intervals)

	cases := []struct {
		name    string
		jobs    []models.Job
		driving int
	}{
		{name: "no jobs", driving: 30},
		{name: "one job no driving", jobs: []models.Job{job(600, 60)}},
		{name: "one job with driving", jobs: []models.Job{job(600, 60)}, driving: 15},
		{name: "stacked jobs", jobs: []models.Job{job(540, 180), job(600, 120), job(900, 60)}, driving: 45},
		{name: "job outside hours", jobs: []models.Job{job(0, 120)}, driving: 30},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ComputeRemaining(base, tt.jobs, tt.driving, nil)
			require.NoError(t, err)

			inDay := result.TotalDrivingMinutes + result.TotalFreeMinutes
			for _, busy := range result.BusyIntervals {
				for _, b := range base.Intervals {
					inDay += busy.OverlapMinutes(b)
				}
			}
			assert.LessOrEqual(t, inDay, baseTotal)
		})
	}
}

func TestFilterShortSlots(t *testing.T) {
	intervals := []timeslot.Interval{iv(540, 550), iv(600, 700), iv(720, 734)}

	assert.Equal(t, []timeslot.Interval{iv(600, 700)}, FilterShortSlots(intervals, 15))
	assert.Equal(t, intervals, FilterShortSlots(intervals, 0), "no filter by default")
	assert.Empty(t, FilterShortSlots(intervals, 200))
}

func TestComputeRemainingRejectsBadJob(t *testing.T) {
	base := openDay(iv(540, 1080))

	_, err := ComputeRemaining(base, []models.Job{job(600, 0)}, 0, nil)
	var invalid *timeslot.InvalidIntervalError
	require.ErrorAs(t, err, &invalid)
}
