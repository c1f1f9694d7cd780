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

func newAssignmentFixture(users ...*entity.User) (*AssignmentService, *fakeLeadRepo, *fakeAssignRepo) {
	leads := newFakeLeadRepo()
	assigns := &fakeAssignRepo{}
	svc := NewAssignmentService(leads, assigns, newFakeUserRepo(users...), fakeTransactor{})
	return svc, leads, assigns
}

func TestAssignRecordsHistory(t *testing.T) {
	userA := &entity.User{ID: uuid.New(), FirstName: "Ram", Email: "ram@example.com"}
	userB := &entity.User{ID: uuid.New(), FirstName: "Sita", Email: "sita@example.com"}
	svc, leads, assigns := newAssignmentFixture(userA, userB)
	ctx := context.Background()
	actor := uuid.New()

	lead := &entity.Lead{Name: "Asha", Contact: "9812345678"}
	require.NoError(t, leads.Create(ctx, lead))

	result, err := svc.Assign(ctx, lead.ID, userA.ID, actor)
	require.NoError(t, err)
	assert.True(t, result.Changed)

	result, err = svc.Assign(ctx, lead.ID, userB.ID, actor)
	require.NoError(t, err)
	assert.True(t, result.Changed)

	history, err := svc.HistoryByLead(ctx, lead.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, userA.ID, history[0].UserID)
	assert.Equal(t, userB.ID, history[1].UserID)
	require.NotNil(t, history[1].AssignedByID)
	assert.Equal(t, actor, *history[1].AssignedByID)

	current, err := svc.CurrentAssignee(ctx, lead.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, userB.ID, current.ID)
	assert.Len(t, assigns.records, 2)
}

func TestAssignSameUserIsNoOp(t *testing.T) {
	user := &entity.User{ID: uuid.New(), FirstName: "Ram", Email: "ram@example.com"}
	svc, leads, assigns := newAssignmentFixture(user)
	ctx := context.Background()
	actor := uuid.New()

	lead := &entity.Lead{Name: "Asha", Contact: "9812345678"}
	require.NoError(t, leads.Create(ctx, lead))

	_, err := svc.Assign(ctx, lead.ID, user.ID, actor)
	require.NoError(t, err)

	result, err := svc.Assign(ctx, lead.ID, user.ID, actor)
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Len(t, assigns.records, 1, "repeat assignment must not add history")
}

func TestAssignUnknownLeadOrUser(t *testing.T) {
	user := &entity.User{ID: uuid.New(), FirstName: "Ram", Email: "ram@example.com"}
	svc, leads, _ := newAssignmentFixture(user)
	ctx := context.Background()

	_, err := svc.Assign(ctx, uuid.New(), user.ID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)

	lead := &entity.Lead{Name: "Asha", Contact: "9812345678"}
	require.NoError(t, leads.Create(ctx, lead))

	_, err = svc.Assign(ctx, lead.ID, uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestHistoryByUserSpansLeads(t *testing.T) {
	user := &entity.User{ID: uuid.New(), FirstName: "Ram", Email: "ram@example.com"}
	svc, leads, _ := newAssignmentFixture(user)
	ctx := context.Background()
	actor := uuid.New()

	first := &entity.Lead{Name: "Asha", Contact: "9812345678"}
	second := &entity.Lead{Name: "Bikram", Contact: "9800000000"}
	require.NoError(t, leads.Create(ctx, first))
	require.NoError(t, leads.Create(ctx, second))

	_, err := svc.Assign(ctx, first.ID, user.ID, actor)
	require.NoError(t, err)
	_, err = svc.Assign(ctx, second.ID, user.ID, actor)
	require.NoError(t, err)

	history, err := svc.HistoryByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, first.ID, history[0].LeadID)
	assert.Equal(t, second.ID, history[1].LeadID)
}

func TestCurrentAssigneeNilWhenUnassigned(t *testing.T) {
	svc, leads, _ := newAssignmentFixture()
	ctx := context.Background()

	lead := &entity.Lead{Name: "Asha", Contact: "9812345678"}
	require.NoError(t, leads.Create(ctx, lead))

	current, err := svc.CurrentAssignee(ctx, lead.ID)
	require.NoError(t, err)
	assert.Nil(t, current)
}
