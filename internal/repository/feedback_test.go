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

func TestNewFeedbackRepositoryRecreatesTable(t *testing.T) {
	ctx := context.Background()
	db := testenv.OpenDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.FeedbackRecord{}))

	feedback, err := repository.NewFeedbackRepository(ctx, db)
	require.NoError(t, err)
	assert.True(t, db.Migrator().HasTable(&models.FeedbackRecord{}))

	_, err = feedback.Insert(ctx, "Suggestion", "Add a ramp at the hall", "Demo Resident")
	require.NoError(t, err)
}

func TestFeedbackInsert(t *testing.T) {
	ctx := context.Background()
	db := testenv.OpenDB(t)
	feedback, err := repository.NewFeedbackRepository(ctx, db)
	require.NoError(t, err)

	rec, err := feedback.Insert(ctx, "", "Thanks for the quick clearance", "Juan Dela Cruz")
	require.NoError(t, err)
	assert.Equal(t, models.FeedbackTypeGeneral, rec.Type)
	assert.NotZero(t, rec.ID)

	var stored string
	require.NoError(t, db.Raw(`SELECT "CreatedAt" FROM "Feedbacks" WHERE "Id" = ?`, rec.ID).Scan(&stored).Error)
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`), stored)
}

func TestFeedbackGetLatest(t *testing.T) {
	ctx := context.Background()
	feedback, err := repository.NewFeedbackRepository(ctx, testenv.OpenDB(t))
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		_, err := feedback.Insert(ctx, "Complaint", fmt.Sprintf("message %d", i), "Resident")
		require.NoError(t, err)
	}

	latest, err := feedback.GetLatest(ctx, 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, "message 5", latest[0].Message)
	assert.Equal(t, "message 4", latest[1].Message)

	all, err := feedback.GetLatest(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.Equal(t, "Resident", all[4].UserName)
}
