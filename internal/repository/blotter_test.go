package repository_test

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/barangayan/brgyems/internal/models"
	"github.com/barangayan/brgyems/internal/repository"
	"github.com/barangayan/brgyems/internal/testenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlotter(complainant string) *models.BlotterRecord {
	incident, _ := models.ParseDate("2025-04-01")
	return &models.BlotterRecord{
		ReportType:       "Noise Complaint",
		PriorityLevel:    models.PriorityMedium,
		Barangay:         "Lahug",
		Complainant:      complainant,
		Respondent:       "Neighbor",
		IncidentDate:     incident,
		IncidentLocation: "Purok 3",
		Description:      "Karaoke past midnight",
	}
}

func TestBlotterCaseNumbersAreSequential(t *testing.T) {
	ctx := context.Background()
	blotters := repository.NewBlotterRepository(testenv.OpenDB(t))

	const n = 5
	for i := 1; i <= n; i++ {
		caseNo, err := blotters.Insert(ctx, newBlotter(fmt.Sprintf("Complainant %d", i)))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("BL-%04d", i), caseNo)
	}

	all, err := blotters.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, n)
	for i, rec := range all {
		assert.Equal(t, fmt.Sprintf("BL-%04d", n-i), rec.CaseNo)
	}
}

func TestInsertBlotterDefaults(t *testing.T) {
	ctx := context.Background()
	blotters := repository.NewBlotterRepository(testenv.OpenDB(t))

	rec := &models.BlotterRecord{Complainant: "Lola Basyang"}
	caseNo, err := blotters.Insert(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, "BL-0001", caseNo)

	got, err := blotters.GetByCaseNo(ctx, caseNo)
	require.NoError(t, err)
	assert.Equal(t, models.ReportTypeOther, got.ReportType)
	assert.Equal(t, models.PriorityLow, got.PriorityLevel)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, models.Today().String(), got.DateReported.String())
	assert.Equal(t, got.DateReported.String(), got.IncidentDate.String())
	assert.Empty(t, got.Witnesses)
}

func TestInsertBlotterKeepsProvidedFields(t *testing.T) {
	ctx := context.Background()
	blotters := repository.NewBlotterRepository(testenv.OpenDB(t))

	rec := newBlotter("Juan")
	rec.Witnesses = "Pedro, Maria"
	caseNo, err := blotters.Insert(ctx, rec)
	require.NoError(t, err)

	got, err := blotters.GetByCaseNo(ctx, caseNo)
	require.NoError(t, err)
	assert.Equal(t, "Noise Complaint", got.ReportType)
	assert.Equal(t, models.PriorityMedium, got.PriorityLevel)
	assert.Equal(t, "2025-04-01", got.IncidentDate.String())
	assert.Equal(t, "Pedro, Maria", got.Witnesses)
	assert.Equal(t, "Lahug", got.Barangay)
}

func TestUpdateBlotter(t *testing.T) {
	ctx := context.Background()
	blotters := repository.NewBlotterRepository(testenv.OpenDB(t))

	caseNo, err := blotters.Insert(ctx, newBlotter("Juan"))
	require.NoError(t, err)

	require.NoError(t, blotters.UpdateStatus(ctx, caseNo, models.StatusUnderInvestigation))

	edited, err := models.ParseDate("2025-03-30")
	require.NoError(t, err)
	require.NoError(t, blotters.UpdateDetails(ctx, &models.BlotterRecord{
		CaseNo:           caseNo,
		ReportType:       "Threat / Harassment",
		PriorityLevel:    models.PriorityUrgent,
		Barangay:         "Apas",
		Complainant:      "Juan",
		Respondent:       "Unknown",
		IncidentDate:     edited,
		IncidentLocation: "Basketball court",
		Description:      "Verbal threats",
		Status:           models.StatusDismissed,
	}))

	got, err := blotters.GetByCaseNo(ctx, caseNo)
	require.NoError(t, err)
	assert.Equal(t, "Threat / Harassment", got.ReportType)
	assert.Equal(t, models.PriorityUrgent, got.PriorityLevel)
	assert.Equal(t, "Apas", got.Barangay)
	assert.Equal(t, "2025-03-30", got.IncidentDate.String())
	assert.Equal(t, models.StatusUnderInvestigation, got.Status)
	assert.Equal(t, caseNo, got.CaseNo)

	assert.ErrorIs(t, blotters.UpdateStatus(ctx, "BL-9999", models.StatusSettled), repository.ErrNotFound)
	assert.ErrorIs(t, blotters.UpdateDetails(ctx, &models.BlotterRecord{CaseNo: "BL-9999"}), repository.ErrNotFound)
}

func TestDeleteBlotter(t *testing.T) {
	ctx := context.Background()
	blotters := repository.NewBlotterRepository(testenv.OpenDB(t))

	first, err := blotters.Insert(ctx, newBlotter("A"))
	require.NoError(t, err)
	second, err := blotters.Insert(ctx, newBlotter("B"))
	require.NoError(t, err)

	require.NoError(t, blotters.Delete(ctx, first))
	require.NoError(t, blotters.Delete(ctx, "BL-7777"))

	all, err := blotters.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, second, all[0].CaseNo)

	_, err = blotters.GetByCaseNo(ctx, first)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	n, err := blotters.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestBlotterCountByStatus(t *testing.T) {
	ctx := context.Background()
	blotters := repository.NewBlotterRepository(testenv.OpenDB(t))

	for i := 0; i < 3; i++ {
		_, err := blotters.Insert(ctx, newBlotter("X"))
		require.NoError(t, err)
	}
	require.NoError(t, blotters.UpdateStatus(ctx, "BL-0002", models.StatusSettled))

	counts, err := blotters.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[models.StatusPending])
	assert.Equal(t, int64(1), counts[models.StatusSettled])
}

func TestFormatIdentifier(t *testing.T) {
	assert.Equal(t, "BL-0001", repository.FormatIdentifier("BL", 1))
	assert.Equal(t, "REQ-0420", repository.FormatIdentifier("REQ", 420))
	assert.Equal(t, "REQ-12345", repository.FormatIdentifier("REQ", 12345))
}

func TestBlotterDatesStoredAsDayText(t *testing.T) {
	ctx := context.Background()
	db := testenv.OpenDB(t)
	blotters := repository.NewBlotterRepository(db)

	caseNo, err := blotters.Insert(ctx, newBlotter("Juan"))
	require.NoError(t, err)

	var row struct {
		IncidentDate string
		DateReported string
	}
	require.NoError(t, db.Raw(`SELECT "IncidentDate" AS incident_date, "DateReported" AS date_reported FROM "BlotterReports" WHERE "CaseNo" = ?`, caseNo).Scan(&row).Error)
	assert.Equal(t, "2025-04-01", row.IncidentDate)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), row.DateReported)
	assert.Equal(t, models.Today().String(), row.DateReported)
}
