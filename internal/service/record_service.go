package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"podkeeper/internal/model"
	"podkeeper/pkg/apierror"
)

// RecordStore is the persistence surface RecordService needs.
type RecordStore interface {
	Create(ctx context.Context, rec model.PODRecord) error
	FindByID(ctx context.Context, id string) (model.PODRecord, error)
	List(ctx context.Context) ([]model.PODRecord, error)
}

type RecordService struct {
	records RecordStore
	now     func() time.Time
}

func NewRecordService(records RecordStore) *RecordService {
	return &RecordService{records: records, now: time.Now}
}

// Create persists a new immutable delivery record. Case number and
// driver name are the only required fields; case numbers are not
// unique, two records for the same case are both accepted.
func (s *RecordService) Create(ctx context.Context, req model.CreateRecordRequest) (model.PODRecord, error) {
	caseNumber := strings.TrimSpace(req.CaseNumber)
	driverName := strings.TrimSpace(req.DriverName)

	if caseNumber == "" {
		return model.PODRecord{}, apierror.BadRequest("case_number is required", "case_number")
	}
	if driverName == "" {
		return model.PODRecord{}, apierror.BadRequest("driver_name is required", "driver_name")
	}

	photos := make([]string, 0, len(req.PhotoPaths))
	for _, p := range req.PhotoPaths {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			photos = append(photos, trimmed)
		}
	}

	rec := model.PODRecord{
		ID:            uuid.NewString(),
		CaseNumber:    caseNumber,
		DriverName:    driverName,
		ForemanName:   strings.TrimSpace(req.ForemanName),
		CustomerName:  strings.TrimSpace(req.CustomerName),
		Notes:         strings.TrimSpace(req.Notes),
		PhotoPaths:    photos,
		SignaturePath: strings.TrimSpace(req.SignaturePath),
		CreatedAt:     s.now().UTC(),
	}

	if err := s.records.Create(ctx, rec); err != nil {
		return model.PODRecord{}, err
	}

	return rec, nil
}

func (s *RecordService) Get(ctx context.Context, id string) (model.PODRecord, error) {
	return s.records.FindByID(ctx, id)
}

// List returns summaries of every record, newest first.
func (s *RecordService) List(ctx context.Context) ([]model.RecordSummary, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.RecordSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, rec.Summary())
	}
	return summaries, nil
}
