package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/domain/entity"
	"github.com/sangkips/leadtrack-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeadLogFixture() (*LeadLogService, *fakeLeadRepo, *fakeLeadLogRepo) {
	leads := newFakeLeadRepo()
	logs := &fakeLeadLogRepo{}
	return NewLeadLogService(logs, leads), leads, logs
}

func TestRecordLinksFollowup(t *testing.T) {
	svc, leads, logs := newLeadLogFixture()
	ctx := context.Background()

	lead := &entity.Lead{Name: "Asha", Contact: "9812345678"}
	require.NoError(t, leads.Create(ctx, lead))

	userID := uuid.New()
	followupID := uuid.New()

	entry, err := svc.Record(ctx, lead.ID, userID, "spoke on the phone", &followupID)
	require.NoError(t, err)
	require.NotNil(t, entry.FollowupID)
	assert.Equal(t, followupID, *entry.FollowupID)

	// Without a followup the entry stands alone
	entry, err = svc.Record(ctx, lead.ID, userID, "left a voicemail", nil)
	require.NoError(t, err)
	assert.Nil(t, entry.FollowupID)

	require.Len(t, logs.logs, 2)
}

func TestRecordUnknownLead(t *testing.T) {
	svc, _, logs := newLeadLogFixture()

	_, err := svc.Record(context.Background(), uuid.New(), uuid.New(), "remark", nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
	assert.Empty(t, logs.logs)
}

func TestLatestReturnsNewestEntry(t *testing.T) {
	svc, leads, _ := newLeadLogFixture()
	ctx := context.Background()

	lead := &entity.Lead{Name: "Asha", Contact: "9812345678"}
	require.NoError(t, leads.Create(ctx, lead))

	userID := uuid.New()
	_, err := svc.Record(ctx, lead.ID, userID, "first", nil)
	require.NoError(t, err)
	_, err = svc.Record(ctx, lead.ID, userID, "second", nil)
	require.NoError(t, err)

	latest, err := svc.Latest(ctx, lead.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "second", latest.Remarks)
}
