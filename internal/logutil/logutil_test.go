package logutil

import "testing"

func TestNewLoggerFromConfigFormats(t *testing.T) {
	for _, format := range []string{"", "text", "json", "TEXT"} {
		if _, err := newLoggerFromConfig(loggerConfig{Format: format}); err != nil {
			t.Errorf("format %q: unexpected error: %v", format, err)
		}
	}
	if _, err := newLoggerFromConfig(loggerConfig{Format: "xml"}); err == nil {
		t.Errorf("expected error for unknown format")
	}
}

func TestParseSlogLevelRejectsUnknown(t *testing.T) {
	if _, err := parseSlogLevel("verbose"); err == nil {
		t.Errorf("expected error for unknown level")
	}
	if _, err := parseSlogLevel("WARNING"); err != nil {
		t.Errorf("warning should parse: %v", err)
	}
}
