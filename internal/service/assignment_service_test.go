package service

import (
	"sync"
	"testing"

	"hospital-bed-management/internal/apperrors"
	"hospital-bed-management/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAssignmentService(beds *fakeBedStore, patients *fakePatientStore) *AssignmentService {
	return NewAssignmentService(beds, patients, &fakeAuditSink{}, zap.NewNop())
}

func TestAssignPatientToBed_Success(t *testing.T) {
	beds := newFakeBedStore(&models.Bed{ID: "bed-1", Room: "101-A", Status: models.BedStatusAvailable})
	patients := newFakePatientStore(&models.Patient{ID: "pat-1", Status: models.PatientStatusHospitalized})
	svc := newAssignmentService(beds, patients)

	bed, err := svc.AssignPatientToBed("bed-1", "pat-1")

	require.NoError(t, err)
	assert.Equal(t, models.BedStatusOccupied, bed.Status)
	require.NotNil(t, bed.PatientID)
	assert.Equal(t, "pat-1", *bed.PatientID)
	require.NotNil(t, bed.OccupiedSince)

	// The patient record itself must not be modified by assignment.
	patient, err := patients.FindByID("pat-1")
	require.NoError(t, err)
	assert.Equal(t, models.PatientStatusHospitalized, patient.Status)
}

func TestAssignPatientToBed_BedNotFound(t *testing.T) {
	beds := newFakeBedStore()
	patients := newFakePatientStore(&models.Patient{ID: "pat-1"})
	svc := newAssignmentService(beds, patients)

	_, err := svc.AssignPatientToBed("missing", "pat-1")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "bed")
	assert.Contains(t, err.Error(), "missing")
}

func TestAssignPatientToBed_PatientNotFound(t *testing.T) {
	beds := newFakeBedStore(&models.Bed{ID: "bed-1", Status: models.BedStatusAvailable})
	patients := newFakePatientStore()
	svc := newAssignmentService(beds, patients)

	_, err := svc.AssignPatientToBed("bed-1", "missing")

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "patient")
}

func TestAssignPatientToBed_BedOccupied(t *testing.T) {
	other := "pat-0"
	beds := newFakeBedStore(&models.Bed{ID: "bed-1", Status: models.BedStatusOccupied, PatientID: &other})
	patients := newFakePatientStore(&models.Patient{ID: "pat-1"})
	svc := newAssignmentService(beds, patients)

	_, err := svc.AssignPatientToBed("bed-1", "pat-1")

	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))

	// The existing occupant must not be overwritten.
	bed, ferr := beds.FindByID("bed-1")
	require.NoError(t, ferr)
	require.NotNil(t, bed.PatientID)
	assert.Equal(t, "pat-0", *bed.PatientID)
}

func TestAssignPatientToBed_ConcurrentAssignExactlyOneWins(t *testing.T) {
	beds := newFakeBedStore(&models.Bed{ID: "bed-1", Status: models.BedStatusAvailable})
	patients := newFakePatientStore(
		&models.Patient{ID: "pat-1"},
		&models.Patient{ID: "pat-2"},
	)
	svc := newAssignmentService(beds, patients)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	ids := []string{"pat-1", "pat-2"}
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.AssignPatientToBed("bed-1", ids[i])
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.True(t, apperrors.IsInvalidState(err), "loser must observe InvalidState, got %v", err)
		}
	}
	assert.Equal(t, 1, winners, "exactly one concurrent assignment must succeed")

	bed, err := beds.FindByID("bed-1")
	require.NoError(t, err)
	assert.Equal(t, models.BedStatusOccupied, bed.Status)
	require.NotNil(t, bed.PatientID)
	assert.Contains(t, ids, *bed.PatientID)
}
