package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podkeeper/internal/model"
)

func sampleRecord() model.PODRecord {
	return model.PODRecord{
		ID:            "rec-1",
		CaseNumber:    "2026-0042",
		DriverName:    "Jens Hansen",
		ForemanName:   "Bo Larsen",
		CustomerName:  "Nordisk Byg A/S",
		Notes:         "Leveret ved port 3",
		PhotoPaths:    []string{"uploads/p1.jpg", "uploads/p2.jpg"},
		SignaturePath: "uploads/sig.png",
		CreatedAt:     time.Date(2026, 5, 2, 12, 30, 0, 0, time.UTC),
	}
}

func TestRenderer_Render(t *testing.T) {
	generatedAt := time.Date(2026, 5, 2, 14, 0, 0, 0, time.UTC)

	t.Run("produces a PDF document", func(t *testing.T) {
		document, err := NewRenderer().Render(sampleRecord(), generatedAt)
		require.NoError(t, err)
		require.NotEmpty(t, document)
		assert.Equal(t, "%PDF", string(document[:4]))
	})

	t.Run("is deterministic for the same record and timestamp", func(t *testing.T) {
		renderer := NewRenderer()
		first, err := renderer.Render(sampleRecord(), generatedAt)
		require.NoError(t, err)
		second, err := renderer.Render(sampleRecord(), generatedAt)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("renders a record with no optional fields", func(t *testing.T) {
		record := model.PODRecord{
			ID:         "rec-2",
			CaseNumber: "2026-0001",
			DriverName: "Jens Hansen",
		}
		document, err := NewRenderer().Render(record, generatedAt)
		require.NoError(t, err)
		assert.NotEmpty(t, document)
	})
}

func TestFieldLines(t *testing.T) {
	t.Run("keeps receipt ordering", func(t *testing.T) {
		lines := fieldLines(sampleRecord())
		labels := make([]string, 0, len(lines))
		for _, line := range lines {
			labels = append(labels, line.Label)
		}
		assert.Equal(t, []string{
			"Sags nr", "Chauffør/Pakkemester", "Formand", "Kunde", "Noter", "Billeder", "Signatur",
		}, labels)
	})

	t.Run("absent optional fields become empty strings", func(t *testing.T) {
		record := model.PODRecord{CaseNumber: "2026-0001", DriverName: "Jens Hansen"}
		for _, line := range fieldLines(record) {
			switch line.Label {
			case "Sags nr", "Chauffør/Pakkemester":
				assert.NotEmpty(t, line.Value)
			default:
				assert.Equal(t, "", line.Value, "label %q should render empty", line.Label)
				assert.NotContains(t, line.Value, "nil")
			}
		}
	})

	t.Run("photo paths join into one opaque line", func(t *testing.T) {
		lines := fieldLines(sampleRecord())
		for _, line := range lines {
			if line.Label == "Billeder" {
				assert.Equal(t, "uploads/p1.jpg, uploads/p2.jpg", line.Value)
			}
		}
	})
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "POD_2026-0042.pdf", Filename(sampleRecord()))
}
