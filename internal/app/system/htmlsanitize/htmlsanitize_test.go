package htmlsanitize_test

import (
	"testing"

	"github.com/bloodlink-dev/bloodlink/internal/app/system/htmlsanitize"
)

func TestPlain_Empty(t *testing.T) {
	if got := htmlsanitize.Plain(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestPlain_PlainText(t *testing.T) {
	if got := htmlsanitize.Plain("Urgent, needs B+ before Friday"); got != "Urgent, needs B+ before Friday" {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestPlain_RemovesScript(t *testing.T) {
	got := htmlsanitize.Plain("Hello<script>alert('xss')</script>")
	if got != "Hello" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestPlain_StripsTagsKeepsText(t *testing.T) {
	got := htmlsanitize.Plain("<p><strong>Ward 4</strong>, Dhaka Medical</p>")
	if got != "Ward 4, Dhaka Medical" {
		t.Errorf("expected tags stripped, got %q", got)
	}
}
