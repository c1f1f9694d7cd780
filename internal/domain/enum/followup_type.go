package enum

import (
	"database/sql/driver"
	"strings"
)

// FollowupType represents the state of a followup entry
type FollowupType string

const (
	FollowupTypeOverdue   FollowupType = "overdue"
	FollowupTypePending   FollowupType = "pending"
	FollowupTypeCompleted FollowupType = "completed"
)

func (t FollowupType) String() string {
	return string(t)
}

// IsValid reports whether the value is one of the known followup types
func (t FollowupType) IsValid() bool {
	switch t {
	case FollowupTypeOverdue, FollowupTypePending, FollowupTypeCompleted:
		return true
	}
	return false
}

// ParseFollowupType normalizes a raw string into a FollowupType.
// Unknown values are kept as-is; callers decide whether that matters.
func ParseFollowupType(s string) FollowupType {
	return FollowupType(strings.ToLower(strings.TrimSpace(s)))
}

func (t FollowupType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *FollowupType) Scan(value interface{}) error {
	if value == nil {
		*t = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = FollowupType(v)
	case []byte:
		*t = FollowupType(v)
	}
	return nil
}
