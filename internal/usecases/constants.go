package usecases

import "time"

const (
	// SubmissionWindow is the trailing window for per-email submission limits.
	SubmissionWindow = 24 * time.Hour
	// RecentWindow bounds the "recent" counts of the dashboard and stats.
	RecentWindow = 7 * 24 * time.Hour
	// MaxInquiriesPerWindow is how many sponsor inquiries one email may send
	// within SubmissionWindow.
	MaxInquiriesPerWindow = 3

	submissionLockTTL = 10 * time.Second
)

const (
	msgExecutiveNotFound   = "Executive not found"
	msgSponsorNotFound     = "Sponsor not found"
	msgInterestRateLimited = "You have already submitted an interest form in the last 24 hours"
	msgInquiryRateLimited  = "Too many inquiries from this email address. Please try again later."
	msgAdminNotConfigured  = "Admin credentials not configured"
	msgSponsorConflict     = "Another sponsor was activated concurrently, please retry"
)

func utcNow() time.Time {
	return time.Now().UTC()
}
