package enum

import "strings"

// LeadBucket is the coarse lifecycle bucket a lead falls into, derived
// from its free-text lead_type field.
type LeadBucket string

const (
	LeadBucketRaw         LeadBucket = "raw"
	LeadBucketBeforeVisit LeadBucket = "before-visit"
	LeadBucketAfterVisit  LeadBucket = "after-visit"
	LeadBucketCompleted   LeadBucket = "completed"
)

// Canonical lead_type values. The column itself is free text, so these
// are conventions rather than an exhaustive set.
const (
	LeadTypeRaw         = "raw"
	LeadTypeBeforeVisit = "before visit"
	LeadTypeAfterVisit  = "after visit"
	LeadTypeCompleted   = "completed"
)

// ParseLeadBucket validates a bucket name coming from a request path.
func ParseLeadBucket(s string) (LeadBucket, bool) {
	switch LeadBucket(strings.ToLower(strings.TrimSpace(s))) {
	case LeadBucketRaw:
		return LeadBucketRaw, true
	case LeadBucketBeforeVisit:
		return LeadBucketBeforeVisit, true
	case LeadBucketAfterVisit:
		return LeadBucketAfterVisit, true
	case LeadBucketCompleted:
		return LeadBucketCompleted, true
	}
	return "", false
}

// MatchesBucket reports whether a lead_type value belongs to the given
// bucket. Membership is case-insensitive substring matching:
//
//   - raw: contains "raw" or "pending", or is empty
//   - completed: contains "complete" (which also covers "completed")
//   - before-visit / after-visit: everything not matching "raw",
//     "complete" or "overdue"
//
// The visit buckets are the complement of the excluded patterns, not a
// positive match, so a lead_type like "pending call" lands in both the
// raw and visit buckets. That mirrors how the data has always been
// queried and is kept intact, false positives included.
func MatchesBucket(bucket LeadBucket, leadType string) bool {
	t := strings.ToLower(strings.TrimSpace(leadType))
	switch bucket {
	case LeadBucketRaw:
		return t == "" || strings.Contains(t, "raw") || strings.Contains(t, "pending")
	case LeadBucketCompleted:
		return strings.Contains(t, "complete")
	case LeadBucketBeforeVisit, LeadBucketAfterVisit:
		return !strings.Contains(t, "raw") &&
			!strings.Contains(t, "complete") &&
			!strings.Contains(t, "overdue")
	}
	return false
}
