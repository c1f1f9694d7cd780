package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/leadtrack-api/internal/domain/entity"
	"github.com/sangkips/leadtrack-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportHeader(t *testing.T) {
	svc := NewExportService(newFakeLeadRepo())

	header := svc.Header()
	require.Len(t, header, 21)
	assert.Equal(t, "Name", header[0])
	assert.Equal(t, "Assigned To", header[16])
	assert.Equal(t, "Created At", header[20])

	// Header must be a copy, not the shared slice
	header[0] = "mutated"
	assert.Equal(t, "Name", svc.Header()[0])
}

func TestExportProjection(t *testing.T) {
	leads := newFakeLeadRepo()
	svc := NewExportService(leads)
	ctx := context.Background()

	visit := time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)
	lead := &entity.Lead{
		Name:               "Asha Rai",
		Contact:            "9812345678",
		Email:              strPtr("asha@example.com"),
		Gender:             strPtr("female"),
		LeadType:           "completed",
		IsCustomer:         true,
		TentetiveVisitDate: &visit,
		CreatedAt:          time.Date(2024, 6, 1, 8, 5, 0, 0, time.UTC),
		Division:           &entity.Division{Name: "Two Wheeler"},
		AssignTo:           &entity.User{ID: uuid.New(), FirstName: "Ram", LastName: "Thapa"},
	}
	require.NoError(t, leads.Create(ctx, lead))

	rows, err := svc.Export(ctx, &repository.LeadFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Asha Rai", row[0])
	assert.Equal(t, "9812345678", row[1])
	assert.Equal(t, "asha@example.com", row[2])
	assert.Equal(t, "female", row[3])
	assert.Equal(t, "", row[4], "absent address renders empty")
	assert.Equal(t, "completed", row[10])
	assert.Equal(t, "Two Wheeler", row[13])
	assert.Equal(t, "", row[14], "absent subdivision renders empty")
	assert.Equal(t, "Ram Thapa", row[16])
	assert.Equal(t, "Yes", row[17])
	assert.Equal(t, "2024-06-10 14:30", row[18])
	assert.Equal(t, "", row[19], "absent purchase date renders empty")
	assert.Equal(t, "2024-06-01 08:05", row[20])
}

func TestExportIsCustomerNo(t *testing.T) {
	leads := newFakeLeadRepo()
	svc := NewExportService(leads)
	ctx := context.Background()

	require.NoError(t, leads.Create(ctx, &entity.Lead{
		Name:    "Bikram",
		Contact: "9800000000",
	}))

	rows, err := svc.Export(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "No", rows[0][17])
}

func TestExportVisitFromHasNoUpperBound(t *testing.T) {
	leads := newFakeLeadRepo()
	svc := NewExportService(leads)
	ctx := context.Background()

	visitOn := func(name, contact string, date time.Time) *entity.Lead {
		return &entity.Lead{Name: name, Contact: contact, TentetiveVisitDate: &date}
	}
	require.NoError(t, leads.Create(ctx, visitOn("Before", "9811111111", time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC))))
	require.NoError(t, leads.Create(ctx, visitOn("OnBound", "9812222222", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))))
	require.NoError(t, leads.Create(ctx, visitOn("FarFuture", "9813333333", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))))
	require.NoError(t, leads.Create(ctx, &entity.Lead{Name: "Undated", Contact: "9814444444"}))

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	rows, err := svc.Export(ctx, &repository.LeadFilter{VisitFrom: &from})
	require.NoError(t, err)
	require.Len(t, rows, 2, "every lead on or after the bound is included")
	assert.Equal(t, "OnBound", rows[0][0])
	assert.Equal(t, "FarFuture", rows[1][0])
}

func TestExportAppliesFilter(t *testing.T) {
	leads := newFakeLeadRepo()
	svc := NewExportService(leads)
	ctx := context.Background()

	require.NoError(t, leads.Create(ctx, &entity.Lead{Name: "Asha", Contact: "9812345678", IsCustomer: true}))
	require.NoError(t, leads.Create(ctx, &entity.Lead{Name: "Bikram", Contact: "9800000000"}))

	isCustomer := true
	rows, err := svc.Export(ctx, &repository.LeadFilter{IsCustomer: &isCustomer})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Asha", rows[0][0])
}
