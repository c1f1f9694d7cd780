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

type importFixture struct {
	leads     *fakeLeadRepo
	followups *fakeFollowupRepo
	logs      *fakeLeadLogRepo
	assigns   *fakeAssignRepo
	users     *fakeUserRepo
	svc       *ImportService
}

func newImportFixture(users ...*entity.User) *importFixture {
	f := &importFixture{
		leads:     newFakeLeadRepo(),
		followups: &fakeFollowupRepo{},
		logs:      &fakeLeadLogRepo{},
		assigns:   &fakeAssignRepo{},
		users:     newFakeUserRepo(users...),
	}
	refs := NewReferenceService(newFakeDivisionRepo(), newFakeSubDivisionRepo(), newFakeBranchRepo(), newFakeDealerRepo(), f.users, newFakeRoleRepo())
	f.svc = NewImportService(f.leads, f.followups, f.logs, f.assigns, refs, fakeTransactor{})
	return f
}

var importColumns = []string{"name", "contact", "gender", "address", "email"}

func importRow(name, contact string) map[string]string {
	return map[string]string{
		"name":    name,
		"contact": contact,
		"gender":  "female",
		"address": "Kathmandu",
		"email":   "",
	}
}

func TestImportLeadsMissingColumnFailsWhole(t *testing.T) {
	f := newImportFixture()

	_, err := f.svc.ImportLeads(context.Background(), uuid.New(),
		[]string{"name", "contact", "gender"},
		[]map[string]string{importRow("Asha", "9812345678")},
	)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
	assert.Empty(t, f.leads.all(), "no row may import when the header is invalid")
}

func TestImportLeadsRowsAreIndependent(t *testing.T) {
	f := newImportFixture()

	rows := []map[string]string{
		importRow("Asha", "9812345678"),
		importRow("Bikram", "9812345678"), // duplicate contact
		importRow("Chitra", "9800000000"),
	}

	summary, err := f.svc.ImportLeads(context.Background(), uuid.New(), importColumns, rows)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalRows)
	assert.Equal(t, 2, summary.Imported)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Results, 3)

	assert.Equal(t, 0, summary.Results[0].Row)
	assert.True(t, summary.Results[0].Success)

	assert.Equal(t, 1, summary.Results[1].Row)
	assert.False(t, summary.Results[1].Success)
	assert.Equal(t, "Contact number already exists", summary.Results[1].Message)

	assert.Equal(t, 2, summary.Results[2].Row)
	assert.True(t, summary.Results[2].Success)

	assert.Len(t, f.leads.all(), 2)
}

func TestImportLeadsInvalidContact(t *testing.T) {
	f := newImportFixture()

	rows := []map[string]string{
		importRow("Asha", "12345"),
		importRow("Bikram", "98123abc90"),
	}

	summary, err := f.svc.ImportLeads(context.Background(), uuid.New(), importColumns, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Failed)
	assert.Empty(t, f.leads.all())
}

func TestImportLeadsCustomerBecomesCompleted(t *testing.T) {
	f := newImportFixture()

	row := importRow("Asha", "9812345678")
	row["is_customer"] = "true"
	row["lead_type"] = "raw"

	summary, err := f.svc.ImportLeads(context.Background(), uuid.New(),
		append(importColumns, "is_customer", "lead_type"),
		[]map[string]string{row},
	)
	require.NoError(t, err)
	require.Equal(t, 1, summary.Imported)

	leads := f.leads.all()
	require.Len(t, leads, 1)
	assert.True(t, leads[0].IsCustomer)
	assert.Equal(t, "completed", leads[0].LeadType)
}

func TestImportLeadsNullCellsAreAbsent(t *testing.T) {
	f := newImportFixture()

	row := importRow("Asha", "9812345678")
	row["email"] = "null"
	row["address"] = "  "

	summary, err := f.svc.ImportLeads(context.Background(), uuid.New(), importColumns, []map[string]string{row})
	require.NoError(t, err)
	require.Equal(t, 1, summary.Imported)

	leads := f.leads.all()
	require.Len(t, leads, 1)
	assert.Nil(t, leads[0].Email)
	assert.Nil(t, leads[0].Address)
}

func TestImportLeadsFollowupNeedsAllThreeFields(t *testing.T) {
	f := newImportFixture()
	cols := append(importColumns, "followup_date", "followup_type", "followup_remarks", "remarks")

	// Date present but no remarks: lead imports, no followup
	partial := importRow("Asha", "9812345678")
	partial["followup_date"] = "2024-06-10"
	partial["followup_type"] = "pending"

	// All three present plus remarks: followup and linked log
	full := importRow("Bikram", "9800000000")
	full["followup_date"] = "2024-06-11"
	full["followup_type"] = "pending"
	full["followup_remarks"] = "site visit"
	full["remarks"] = "imported from fair"

	summary, err := f.svc.ImportLeads(context.Background(), uuid.New(), cols,
		[]map[string]string{partial, full})
	require.NoError(t, err)
	require.Equal(t, 2, summary.Imported)

	require.Len(t, f.followups.followups, 1)
	require.Len(t, f.logs.logs, 1)
	require.NotNil(t, f.logs.logs[0].FollowupID)
	assert.Equal(t, f.followups.followups[0].ID, *f.logs.logs[0].FollowupID)
}

func TestImportLeadsLenientAssignee(t *testing.T) {
	user := &entity.User{ID: uuid.New(), FirstName: "Ram", Email: "ram@example.com"}
	f := newImportFixture(user)
	cols := append(importColumns, "assign_to")

	known := importRow("Asha", "9812345678")
	known["assign_to"] = user.ID.String()

	unknown := importRow("Bikram", "9800000000")
	unknown["assign_to"] = uuid.New().String()

	garbage := importRow("Chitra", "9811111111")
	garbage["assign_to"] = "not-a-uuid"

	summary, err := f.svc.ImportLeads(context.Background(), uuid.New(), cols,
		[]map[string]string{known, unknown, garbage})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Imported, "unresolved assignees must not fail the row")

	require.Len(t, f.assigns.records, 1)
	assert.Equal(t, user.ID, f.assigns.records[0].UserID)
}
