package service

import (
	"sync"

	"hospital-bed-management/internal/apperrors"
	"hospital-bed-management/internal/models"
)

// fakeBedStore is an in-memory BedStore with the same atomicity contract as
// the real repository: conditional updates run under one lock.
type fakeBedStore struct {
	mu         sync.Mutex
	beds       map[string]*models.Bed
	findErr    error
	assignErr  error
	releaseErr error
}

func newFakeBedStore(beds ...*models.Bed) *fakeBedStore {
	s := &fakeBedStore{beds: make(map[string]*models.Bed)}
	for _, b := range beds {
		copied := *b
		s.beds[b.ID] = &copied
	}
	return s
}

func (s *fakeBedStore) FindByID(id string) (*models.Bed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	bed, ok := s.beds[id]
	if !ok {
		return nil, apperrors.NewNotFound("bed", id)
	}
	copied := *bed
	return &copied, nil
}

func (s *fakeBedStore) FindAll() ([]models.Bed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Bed
	for _, b := range s.beds {
		out = append(out, *b)
	}
	return out, nil
}

func (s *fakeBedStore) FindByStatus(status string) ([]models.Bed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Bed
	for _, b := range s.beds {
		if b.Status == status {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *fakeBedStore) FindByPatientID(patientID string) (*models.Bed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.beds {
		if b.PatientID != nil && *b.PatientID == patientID {
			copied := *b
			return &copied, nil
		}
	}
	return nil, apperrors.NewNotFound("bed for patient", patientID)
}

func (s *fakeBedStore) Create(bed *models.Bed) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *bed
	s.beds[bed.ID] = &copied
	return nil
}

func (s *fakeBedStore) AssignIfAvailable(bedID, patientID, occupiedSince string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.assignErr != nil {
		return false, s.assignErr
	}
	bed, ok := s.beds[bedID]
	if !ok || bed.Status != models.BedStatusAvailable {
		return false, nil
	}
	bed.Status = models.BedStatusOccupied
	bed.PatientID = &patientID
	bed.OccupiedSince = &occupiedSince
	return true, nil
}

func (s *fakeBedStore) ReleaseIfOccupied(bedID, releasedAt string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.releaseErr != nil {
		return false, s.releaseErr
	}
	bed, ok := s.beds[bedID]
	if !ok || bed.Status != models.BedStatusOccupied {
		return false, nil
	}
	bed.Status = models.BedStatusAvailable
	bed.PatientID = nil
	bed.ReleasedAt = &releasedAt
	return true, nil
}

func (s *fakeBedStore) Release(bedID, releasedAt string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.releaseErr != nil {
		return s.releaseErr
	}
	bed, ok := s.beds[bedID]
	if !ok {
		return apperrors.NewNotFound("bed", bedID)
	}
	bed.Status = models.BedStatusAvailable
	bed.PatientID = nil
	bed.ReleasedAt = &releasedAt
	return nil
}

func (s *fakeBedStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.beds[id]; !ok {
		return apperrors.NewNotFound("bed", id)
	}
	delete(s.beds, id)
	return nil
}

func (s *fakeBedStore) Exists(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.beds[id]
	return ok, nil
}

// fakePatientStore is an in-memory PatientStore.
type fakePatientStore struct {
	mu       sync.Mutex
	patients map[string]*models.Patient
	saveErr  error
}

func newFakePatientStore(patients ...*models.Patient) *fakePatientStore {
	s := &fakePatientStore{patients: make(map[string]*models.Patient)}
	for _, p := range patients {
		copied := *p
		s.patients[p.ID] = &copied
	}
	return s
}

func (s *fakePatientStore) FindByID(id string) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.patients[id]
	if !ok {
		return nil, apperrors.NewNotFound("patient", id)
	}
	copied := *p
	return &copied, nil
}

func (s *fakePatientStore) FindAll() ([]models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Patient
	for _, p := range s.patients {
		out = append(out, *p)
	}
	return out, nil
}

func (s *fakePatientStore) Create(patient *models.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *patient
	s.patients[patient.ID] = &copied
	return nil
}

func (s *fakePatientStore) Save(patient *models.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	copied := *patient
	s.patients[patient.ID] = &copied
	return nil
}

func (s *fakePatientStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.patients[id]; !ok {
		return apperrors.NewNotFound("patient", id)
	}
	delete(s.patients, id)
	return nil
}

func (s *fakePatientStore) Exists(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.patients[id]
	return ok, nil
}

// publishedEvent captures one call to the fake publisher.
type publishedEvent struct {
	Topic string
	Event interface{}
}

type fakePublisher struct {
	mu         sync.Mutex
	published  []publishedEvent
	publishErr error
}

func (p *fakePublisher) Publish(topic string, event interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.publishErr != nil {
		return p.publishErr
	}
	p.published = append(p.published, publishedEvent{Topic: topic, Event: event})
	return nil
}

func (p *fakePublisher) events() []publishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]publishedEvent(nil), p.published...)
}

type fakeAuditSink struct {
	mu      sync.Mutex
	actions []string
}

func (a *fakeAuditSink) CreateAuditLog(action string, details string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.actions = append(a.actions, action)
	return nil
}
