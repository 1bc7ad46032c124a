package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"podkeeper/internal/model"
)

type RecordRepository struct {
	pool *pgxpool.Pool
}

func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{pool: pool}
}

// Create inserts the record and its photo references in one
// transaction. Photo ordering is preserved through the position column.
func (r *RecordRepository) Create(ctx context.Context, rec model.PODRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO pod_records (id, case_number, driver_name, foreman_name, customer_name, notes, signature_path, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.CaseNumber, rec.DriverName, nullable(rec.ForemanName), nullable(rec.CustomerName),
		nullable(rec.Notes), nullable(rec.SignaturePath), rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}

	for i, path := range rec.PhotoPaths {
		_, err = tx.Exec(ctx,
			`INSERT INTO pod_photos (record_id, position, path) VALUES ($1, $2, $3)`,
			rec.ID, i, path)
		if err != nil {
			return fmt.Errorf("insert photo %d: %w", i, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *RecordRepository) FindByID(ctx context.Context, id string) (model.PODRecord, error) {
	var rec model.PODRecord
	var foreman, customer, notes, signature *string
	err := r.pool.QueryRow(ctx,
		`SELECT id, case_number, driver_name, foreman_name, customer_name, notes, signature_path, created_at
		 FROM pod_records WHERE id = $1`, id).
		Scan(&rec.ID, &rec.CaseNumber, &rec.DriverName, &foreman, &customer, &notes, &signature, &rec.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.PODRecord{}, model.ErrRecordNotFound
	}
	if err != nil {
		return model.PODRecord{}, fmt.Errorf("find record by id: %w", err)
	}

	rec.ForemanName = deref(foreman)
	rec.CustomerName = deref(customer)
	rec.Notes = deref(notes)
	rec.SignaturePath = deref(signature)

	rec.PhotoPaths, err = r.photosFor(ctx, rec.ID)
	if err != nil {
		return model.PODRecord{}, err
	}
	return rec, nil
}

// List returns every record newest-first. Small scale by design; there
// is no pagination.
func (r *RecordRepository) List(ctx context.Context) ([]model.PODRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, case_number, driver_name, foreman_name, customer_name, notes, signature_path, created_at
		 FROM pod_records ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	records := make([]model.PODRecord, 0)
	for rows.Next() {
		var rec model.PODRecord
		var foreman, customer, notes, signature *string
		if err := rows.Scan(&rec.ID, &rec.CaseNumber, &rec.DriverName, &foreman, &customer, &notes, &signature, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.ForemanName = deref(foreman)
		rec.CustomerName = deref(customer)
		rec.Notes = deref(notes)
		rec.SignaturePath = deref(signature)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	for i := range records {
		records[i].PhotoPaths, err = r.photosFor(ctx, records[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return records, nil
}

func (r *RecordRepository) photosFor(ctx context.Context, recordID string) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT path FROM pod_photos WHERE record_id = $1 ORDER BY position`, recordID)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer rows.Close()

	paths := make([]string, 0)
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
