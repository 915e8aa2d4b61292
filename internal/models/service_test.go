package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ramiyazhr/kampusskill-app2/internal/models"
)

func TestFlagTransition(t *testing.T) {
	s := models.Service{Status: models.StatusActive}
	s.Flag()
	assert.Equal(t, models.StatusFlagged, s.Status)

	// flag lagi tidak mengubah apa-apa
	s.Flag()
	assert.Equal(t, models.StatusFlagged, s.Status)
}

func TestFlagOnDeletedIsNoop(t *testing.T) {
	s := models.Service{Status: models.StatusDeleted}
	s.Flag()
	assert.Equal(t, models.StatusDeleted, s.Status)
}

func TestApproveClearsReports(t *testing.T) {
	s := models.Service{
		Status:  models.StatusFlagged,
		Reports: []string{"user_1", "user_2", "admin_1"},
	}
	err := s.Approve()
	assert.NoError(t, err)
	assert.Equal(t, models.StatusActive, s.Status)
	assert.Empty(t, s.Reports)
}

func TestApproveOnDeletedIsRejected(t *testing.T) {
	s := models.Service{Status: models.StatusDeleted, Reports: []string{"user_1"}}
	err := s.Approve()
	assert.ErrorIs(t, err, models.ErrDeletedTerminal)
	assert.Equal(t, models.StatusDeleted, s.Status)
	assert.Equal(t, []string{"user_1"}, s.Reports)
}

func TestMarkDeletedIsTerminal(t *testing.T) {
	s := models.Service{Status: models.StatusFlagged}
	s.MarkDeleted()
	assert.Equal(t, models.StatusDeleted, s.Status)

	s.Flag()
	assert.Equal(t, models.StatusDeleted, s.Status)
	assert.Error(t, s.Approve())
	assert.Equal(t, models.StatusDeleted, s.Status)
}

func TestAverageRating(t *testing.T) {
	s := models.Service{}
	assert.Equal(t, 0.0, s.AverageRating())

	s.Ratings = []models.Rating{
		{UserID: "a", Rating: 5},
		{UserID: "b", Rating: 4},
	}
	assert.InDelta(t, 4.5, s.AverageRating(), 0.001)
}

func TestValidCategory(t *testing.T) {
	assert.True(t, models.ValidCategory(models.CategoryPrint))
	assert.True(t, models.ValidCategory(models.CategoryOther))
	assert.False(t, models.ValidCategory(models.Category("Masak")))
	assert.False(t, models.ValidCategory(models.Category("")))
}
