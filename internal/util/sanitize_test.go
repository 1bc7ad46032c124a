package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	t.Run("replaces invalid characters", func(t *testing.T) {
		actual, err := SanitizeFilename(` sags<2026>?.jpg `)
		require.NoError(t, err)
		require.Equal(t, "sags_2026__.jpg", actual)
	})

	t.Run("rejects empty filenames", func(t *testing.T) {
		_, err := SanitizeFilename("   ")
		require.Error(t, err)
	})

	t.Run("rejects hidden filenames", func(t *testing.T) {
		_, err := SanitizeFilename(".env")
		require.Error(t, err)
	})

	t.Run("rejects null bytes", func(t *testing.T) {
		_, err := SanitizeFilename("photo\x00.jpg")
		require.Error(t, err)
	})

	t.Run("rejects windows reserved names", func(t *testing.T) {
		_, err := SanitizeFilename("CON.jpg")
		require.Error(t, err)
	})

	t.Run("replaces path separators", func(t *testing.T) {
		actual, err := SanitizeFilename(`uploads/sub\photo.jpg`)
		require.NoError(t, err)
		require.Equal(t, "uploads_sub_photo.jpg", actual)
	})

	t.Run("truncates long filenames by runes", func(t *testing.T) {
		tooLong := strings.Repeat("ø", 300)
		actual, err := SanitizeFilename(tooLong)
		require.NoError(t, err)
		require.Equal(t, 255, len([]rune(actual)))
	})

	t.Run("keeps danish letters", func(t *testing.T) {
		actual, err := SanitizeFilename("blåbær.jpg")
		require.NoError(t, err)
		require.Equal(t, "blåbær.jpg", actual)
	})
}
