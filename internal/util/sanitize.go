package util

import (
	"regexp"
	"strings"
	"unicode"

	"podkeeper/pkg/apierror"
)

var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

var windowsReservedNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {},
	"COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {},
	"LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// SanitizeFilename normalizes a client-supplied upload name into
// something safe to store on disk. Hidden names are rejected outright;
// uploads have no business starting with a dot.
func SanitizeFilename(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", apierror.BadRequest("filename cannot be empty", "")
	}

	if strings.Contains(trimmed, "\x00") {
		return "", apierror.BadRequest("filename contains null bytes", trimmed)
	}

	builder := strings.Builder{}
	builder.Grow(len(trimmed))
	for _, char := range trimmed {
		if unicode.IsControl(char) || unicode.Is(unicode.Cf, char) {
			continue
		}
		builder.WriteRune(char)
	}

	cleaned := strings.TrimSpace(invalidFilenameChars.ReplaceAllString(builder.String(), "_"))
	if cleaned == "" {
		return "", apierror.BadRequest("filename is invalid after sanitization", trimmed)
	}

	// Truncate by runes (not bytes) to avoid splitting multi-byte characters.
	runes := []rune(cleaned)
	if len(runes) > 255 {
		runes = runes[:255]
	}
	cleaned = string(runes)

	if strings.HasPrefix(cleaned, ".") {
		return "", apierror.BadRequest("hidden filenames are not allowed", cleaned)
	}

	stem := cleaned
	if idx := strings.Index(cleaned, "."); idx >= 0 {
		stem = cleaned[:idx]
	}
	if _, exists := windowsReservedNames[strings.ToUpper(stem)]; exists {
		return "", apierror.BadRequest("reserved filename is not allowed", cleaned)
	}

	return cleaned, nil
}
