package model

import "time"

// PODRecord is a proof-of-delivery record. Records are immutable once
// created: there is no update or delete path anywhere in the API.
type PODRecord struct {
	ID            string    `json:"id"`
	CaseNumber    string    `json:"case_number"`
	DriverName    string    `json:"driver_name"`
	ForemanName   string    `json:"foreman_name,omitempty"`
	CustomerName  string    `json:"customer_name,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	PhotoPaths    []string  `json:"photo_paths"`
	SignaturePath string    `json:"signature_path,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// RecordSummary is the list-view projection of a PODRecord.
type RecordSummary struct {
	ID           string    `json:"id"`
	CaseNumber   string    `json:"case_number"`
	DriverName   string    `json:"driver_name"`
	CustomerName string    `json:"customer_name,omitempty"`
	PhotoPaths   []string  `json:"photo_paths"`
	CreatedAt    time.Time `json:"created_at"`
}

// Summary projects a full record down to its list form.
func (r PODRecord) Summary() RecordSummary {
	return RecordSummary{
		ID:           r.ID,
		CaseNumber:   r.CaseNumber,
		DriverName:   r.DriverName,
		CustomerName: r.CustomerName,
		PhotoPaths:   r.PhotoPaths,
		CreatedAt:    r.CreatedAt,
	}
}
