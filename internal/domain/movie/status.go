package movie

import "time"

// ShowingMonths is how many calendar months a movie stays NOW_SHOWING after release.
const ShowingMonths = 2

// CalculateStatus derives the status from the release date alone. Only the calendar
// date of both arguments is compared; callers pass today in the business timezone.
func CalculateStatus(releaseDate *time.Time, today time.Time) Status {
	if releaseDate == nil {
		return StatusComingSoon
	}

	release := dateOf(*releaseDate)
	now := dateOf(today)

	if release.After(now) {
		return StatusComingSoon
	}
	if AddMonthsClamped(release, ShowingMonths).After(now) {
		return StatusNowShowing
	}
	return StatusEnded
}

// AddMonthsClamped adds calendar months and clamps to the last day of the target month,
// so Jan 31 + 1 month is Feb 28 (or 29) rather than time.AddDate's Mar 3.
func AddMonthsClamped(d time.Time, months int) time.Time {
	firstOfTarget := time.Date(d.Year(), d.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()

	day := d.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, time.UTC)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
