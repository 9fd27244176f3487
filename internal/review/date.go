package review

import (
	"fmt"
	"math/rand"
)

// Review ages are drawn uniformly from this inclusive day range.
const (
	minAgeDays = 2
	maxAgeDays = 365
)

// RelativeDate renders an age in days as a phrase like "3 weeks ago".
// Weeks and months use integer division; anything from 365 days up is
// "1 year ago".
func RelativeDate(days int) string {
	switch {
	case days <= 1:
		return "1 day ago"
	case days <= 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return plural(days/7, "week")
	case days < 365:
		return plural(days/30, "month")
	default:
		return "1 year ago"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

func randomAge(rng *rand.Rand) int {
	return minAgeDays + rng.Intn(maxAgeDays-minAgeDays+1)
}
