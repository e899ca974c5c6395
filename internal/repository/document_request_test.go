package repository_test

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"testing"

	"github.com/barangayan/brgyems/internal/models"
	"github.com/barangayan/brgyems/internal/repository"
	"github.com/barangayan/brgyems/internal/testenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(requester string) *models.DocumentRequest {
	return &models.DocumentRequest{
		Type:          "Barangay Certificate",
		RequesterName: requester,
		ContactNumber: "09171234567",
		Purpose:       "Employment",
	}
}

func TestInsertDocumentRequestDefaults(t *testing.T) {
	ctx := context.Background()
	requests := repository.NewDocumentRequestRepository(testenv.OpenDB(t))

	rec := &models.DocumentRequest{
		Type:          "Barangay Clearance",
		RequesterName: "Juan Dela Cruz",
	}
	requestID, err := requests.Insert(ctx, rec)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^REQ-\d{4}$`), requestID)
	assert.Equal(t, requestID, rec.RequestID)

	got, err := requests.GetByRequestID(ctx, requestID)
	require.NoError(t, err)
	assert.Equal(t, "Barangay Clearance", got.Type)
	assert.Equal(t, "Juan Dela Cruz", got.RequesterName)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Equal(t, 1, got.Copies)
	assert.Nil(t, got.PickupDate)
	assert.Equal(t, models.Today().String(), got.DateFiled.String())
}

func TestInsertDocumentRequestKeepsPickupDate(t *testing.T) {
	ctx := context.Background()
	requests := repository.NewDocumentRequestRepository(testenv.OpenDB(t))

	pickup, err := models.ParseDate("2025-08-15")
	require.NoError(t, err)
	rec := newRequest("Ana Reyes")
	rec.PickupDate = &pickup
	rec.Copies = 3
	rec.Status = models.StatusApproved

	requestID, err := requests.Insert(ctx, rec)
	require.NoError(t, err)

	got, err := requests.GetByRequestID(ctx, requestID)
	require.NoError(t, err)
	require.NotNil(t, got.PickupDate)
	assert.Equal(t, "2025-08-15", got.PickupDate.String())
	assert.Equal(t, 3, got.Copies)
	assert.Equal(t, models.StatusApproved, got.Status)
}

func TestDocumentRequestIdentifiersAreSequential(t *testing.T) {
	ctx := context.Background()
	requests := repository.NewDocumentRequestRepository(testenv.OpenDB(t))

	for i := 1; i <= 3; i++ {
		requestID, err := requests.Insert(ctx, newRequest(fmt.Sprintf("Resident %d", i)))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("REQ-%04d", i), requestID)
	}

	all, err := requests.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "REQ-0003", all[0].RequestID)
	assert.Equal(t, "REQ-0001", all[2].RequestID)
}

func TestDocumentRequestIdentifiersLeaveGapsAfterDelete(t *testing.T) {
	ctx := context.Background()
	requests := repository.NewDocumentRequestRepository(testenv.OpenDB(t))

	for i := 0; i < 3; i++ {
		_, err := requests.Insert(ctx, newRequest("Resident"))
		require.NoError(t, err)
	}
	require.NoError(t, requests.Delete(ctx, "REQ-0002"))

	requestID, err := requests.Insert(ctx, newRequest("Resident"))
	require.NoError(t, err)
	assert.Equal(t, "REQ-0004", requestID)

	_, err = requests.GetByRequestID(ctx, "REQ-0002")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateDocumentRequestStatusIsPermissive(t *testing.T) {
	ctx := context.Background()
	requests := repository.NewDocumentRequestRepository(testenv.OpenDB(t))

	requestID, err := requests.Insert(ctx, newRequest("Pedro Penduko"))
	require.NoError(t, err)

	require.NoError(t, requests.UpdateStatus(ctx, requestID, models.StatusForPickup))
	got, err := requests.GetByRequestID(ctx, requestID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusForPickup, got.Status)

	require.NoError(t, requests.UpdateStatus(ctx, requestID, "Waiting on Captain"))
	got, err = requests.GetByRequestID(ctx, requestID)
	require.NoError(t, err)
	assert.Equal(t, "Waiting on Captain", got.Status)

	assert.ErrorIs(t, requests.UpdateStatus(ctx, "REQ-9999", models.StatusApproved), repository.ErrNotFound)
}

func TestUpdateDocumentRequestDetails(t *testing.T) {
	ctx := context.Background()
	requests := repository.NewDocumentRequestRepository(testenv.OpenDB(t))

	pickup := models.Today()
	rec := newRequest("Jose Rizal")
	rec.PickupDate = &pickup
	requestID, err := requests.Insert(ctx, rec)
	require.NoError(t, err)
	require.NoError(t, requests.UpdateStatus(ctx, requestID, models.StatusApproved))

	edit := &models.DocumentRequest{
		RequestID:              requestID,
		Type:                   "Business Permit",
		RequesterName:          "Jose P. Rizal",
		ContactNumber:          "0999",
		Purpose:                "Sari-sari store",
		Copies:                 0,
		AdditionalRequirements: "DTI registration",
		Status:                 models.StatusRejected,
	}
	require.NoError(t, requests.UpdateDetails(ctx, edit))

	got, err := requests.GetByRequestID(ctx, requestID)
	require.NoError(t, err)
	assert.Equal(t, "Business Permit", got.Type)
	assert.Equal(t, "Jose P. Rizal", got.RequesterName)
	assert.Equal(t, "Sari-sari store", got.Purpose)
	assert.Equal(t, "DTI registration", got.AdditionalRequirements)
	assert.Equal(t, 1, got.Copies)
	assert.Nil(t, got.PickupDate)
	assert.Equal(t, models.StatusApproved, got.Status, "details update must not touch status")
	assert.Equal(t, requestID, got.RequestID)

	assert.ErrorIs(t, requests.UpdateDetails(ctx, &models.DocumentRequest{}), repository.ErrNotFound)
	assert.ErrorIs(t, requests.UpdateDetails(ctx, &models.DocumentRequest{RequestID: "REQ-4242"}), repository.ErrNotFound)
}

func TestDeleteDocumentRequest(t *testing.T) {
	ctx := context.Background()
	requests := repository.NewDocumentRequestRepository(testenv.OpenDB(t))

	requestID, err := requests.Insert(ctx, newRequest("Andres Bonifacio"))
	require.NoError(t, err)

	require.NoError(t, requests.Delete(ctx, requestID))
	_, err = requests.GetByRequestID(ctx, requestID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	all, err := requests.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.NoError(t, requests.Delete(ctx, requestID))
	assert.NoError(t, requests.Delete(ctx, "REQ-0404"))
	assert.NoError(t, requests.Delete(ctx, ""))
}

func TestGetByRequestIDBlank(t *testing.T) {
	requests := repository.NewDocumentRequestRepository(testenv.OpenDB(t))

	_, err := requests.GetByRequestID(context.Background(), "  ")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDocumentRequestCounts(t *testing.T) {
	ctx := context.Background()
	requests := repository.NewDocumentRequestRepository(testenv.OpenDB(t))

	for i := 0; i < 4; i++ {
		_, err := requests.Insert(ctx, newRequest("Resident"))
		require.NoError(t, err)
	}
	require.NoError(t, requests.UpdateStatus(ctx, "REQ-0001", models.StatusCompleted))

	total, err := requests.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	byStatus, err := requests.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{models.StatusPending: 3, models.StatusCompleted: 1}, byStatus)
}

func TestConcurrentDocumentRequestInsertsGetDistinctIdentifiers(t *testing.T) {
	ctx := context.Background()
	requests := repository.NewDocumentRequestRepository(testenv.OpenDB(t))

	const n = 10
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			requestID, err := requests.Insert(ctx, newRequest("Concurrent"))
			assert.NoError(t, err)
			ids <- requestID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate %s", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	for i := 1; i <= n; i++ {
		assert.True(t, seen[fmt.Sprintf("REQ-%04d", i)])
	}
}

func TestDocumentRequestDatesStoredAsDayText(t *testing.T) {
	ctx := context.Background()
	db := testenv.OpenDB(t)
	requests := repository.NewDocumentRequestRepository(db)

	filed, err := models.ParseDate("2025-07-01")
	require.NoError(t, err)
	pickup, err := models.ParseDate("2025-07-08")
	require.NoError(t, err)
	rec := newRequest("Niño Peña")
	rec.DateFiled = filed
	rec.PickupDate = &pickup

	requestID, err := requests.Insert(ctx, rec)
	require.NoError(t, err)

	var row struct {
		DateFiled  string
		PickupDate string
	}
	require.NoError(t, db.Raw(`SELECT "DateFiled" AS date_filed, "PickupDate" AS pickup_date FROM "DocumentRequests" WHERE "RequestId" = ?`, requestID).Scan(&row).Error)
	assert.Equal(t, "2025-07-01", row.DateFiled)
	assert.Equal(t, "2025-07-08", row.PickupDate)

	var defaulted string
	otherID, err := requests.Insert(ctx, newRequest("Ana Reyes"))
	require.NoError(t, err)
	require.NoError(t, db.Raw(`SELECT "DateFiled" FROM "DocumentRequests" WHERE "RequestId" = ?`, otherID).Scan(&defaulted).Error)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), defaulted)
}
