package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/domain/entity"
	"github.com/sangkips/leadtrack-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func followupOn(date *time.Time, remarks string) entity.Followup {
	return entity.Followup{
		ID:           uuid.New(),
		LeadID:       uuid.New(),
		FollowupDate: date,
		FollowupType: enum.FollowupTypePending,
		Remarks:      remarks,
	}
}

func TestOrderedFollowupsTodayFirstThenDescending(t *testing.T) {
	today := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

	followups := []entity.Followup{
		followupOn(timePtr(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)), "due today"),
		followupOn(timePtr(time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)), "two days ago"),
		followupOn(timePtr(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)), "next week"),
	}

	ordered := OrderedFollowups(followups, today)
	require.Len(t, ordered, 3)
	assert.Equal(t, "due today", ordered[0].Remarks)
	assert.Equal(t, "next week", ordered[1].Remarks)
	assert.Equal(t, "two days ago", ordered[2].Remarks)
}

func TestOrderedFollowupsNilDateSortsLast(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	followups := []entity.Followup{
		followupOn(nil, "undated"),
		followupOn(timePtr(time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)), "dated"),
	}

	ordered := OrderedFollowups(followups, today)
	assert.Equal(t, "dated", ordered[0].Remarks)
	assert.Equal(t, "undated", ordered[1].Remarks)
}

func TestOrderedFollowupsStableForEqualKeys(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	date := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	followups := []entity.Followup{
		followupOn(&date, "first"),
		followupOn(&date, "second"),
		followupOn(&date, "third"),
	}

	ordered := OrderedFollowups(followups, today)
	assert.Equal(t, "first", ordered[0].Remarks)
	assert.Equal(t, "second", ordered[1].Remarks)
	assert.Equal(t, "third", ordered[2].Remarks)
}

func TestOrderedFollowupsDoesNotMutateInput(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	followups := []entity.Followup{
		followupOn(timePtr(time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)), "older"),
		followupOn(timePtr(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)), "today"),
	}

	_ = OrderedFollowups(followups, today)
	assert.Equal(t, "older", followups[0].Remarks, "input order must be preserved")
	assert.Equal(t, "today", followups[1].Remarks)
}

func TestClassifyBucketsByType(t *testing.T) {
	leads := newFakeLeadRepo()
	followups := &fakeFollowupRepo{}
	svc := NewFollowupService(followups, leads)
	ctx := context.Background()
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	lead := &entity.Lead{Name: "Asha", Contact: "9812345678"}
	require.NoError(t, leads.Create(ctx, lead))

	mk := func(followupType enum.FollowupType) {
		require.NoError(t, followups.Create(ctx, &entity.Followup{
			LeadID:       lead.ID,
			FollowupType: followupType,
			FollowupDate: timePtr(today),
		}))
	}
	mk(enum.FollowupTypeOverdue)
	mk(enum.FollowupTypePending)
	mk(enum.FollowupTypePending)
	mk(enum.FollowupTypeCompleted)
	mk(enum.FollowupType("other"))

	buckets, err := svc.Classify(ctx, lead.ID, today)
	require.NoError(t, err)

	assert.Len(t, buckets.All, 5, "unknown types still appear in All")
	assert.Len(t, buckets.Overdue, 1)
	assert.Len(t, buckets.Pending, 2)
	assert.Len(t, buckets.Completed, 1)
}

func TestScheduleRequiresExistingLead(t *testing.T) {
	svc := NewFollowupService(&fakeFollowupRepo{}, newFakeLeadRepo())

	_, err := svc.Schedule(context.Background(), &ScheduleFollowupInput{
		LeadID: uuid.New(),
		UserID: uuid.New(),
	})
	require.Error(t, err)
}

func TestScheduleDefaultsToPending(t *testing.T) {
	leads := newFakeLeadRepo()
	followups := &fakeFollowupRepo{}
	svc := NewFollowupService(followups, leads)
	ctx := context.Background()

	lead := &entity.Lead{Name: "Asha", Contact: "9812345678"}
	require.NoError(t, leads.Create(ctx, lead))

	followup, err := svc.Schedule(ctx, &ScheduleFollowupInput{
		LeadID:  lead.ID,
		UserID:  uuid.New(),
		Remarks: "call back",
	})
	require.NoError(t, err)
	assert.Equal(t, enum.FollowupTypePending, followup.FollowupType)
}
