package exporter

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/nikbrunner/marq/internal/model"
)

func exportStore() *model.Store {
	store := model.NewStore()
	store.AddBookmark(model.Bookmark{
		ID:         "b1",
		URL:        "https://github.com",
		Collection: "work",
		Title:      "GitHub",
		CreatedAt:  time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
	})
	store.AddBookmark(model.Bookmark{
		ID:         "b2",
		URL:        "https://news.ycombinator.com",
		Collection: "fun",
		Title:      "Hacker <News>",
		CreatedAt:  time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC),
	})
	return store
}

func TestExportHTML_Structure(t *testing.T) {
	out := ExportHTML(exportStore())

	if !strings.HasPrefix(out, "<!DOCTYPE NETSCAPE-Bookmark-file-1>") {
		t.Error("missing Netscape doctype")
	}
	for _, want := range []string{
		"<DT><H3>work</H3>",
		"<DT><H3>fun</H3>",
		`HREF="https://github.com"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in export:\n%s", want, out)
		}
	}
}

func TestExportHTML_EscapesTitles(t *testing.T) {
	out := ExportHTML(exportStore())

	if !strings.Contains(out, "Hacker &lt;News&gt;") {
		t.Error("expected HTML-escaped title")
	}
	if strings.Contains(out, "Hacker <News>") {
		t.Error("unescaped title leaked into export")
	}
}

func TestExportHTML_AddDate(t *testing.T) {
	out := ExportHTML(exportStore())

	want := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC).Unix()
	if !strings.Contains(out, `ADD_DATE="`+strconv.FormatInt(want, 10)+`"`) {
		t.Errorf("expected ADD_DATE %d in export:\n%s", want, out)
	}
}

func TestExportHTML_EmptyStore(t *testing.T) {
	out := ExportHTML(model.NewStore())

	if !strings.Contains(out, "<DL><p>\n</DL><p>") {
		t.Errorf("expected empty list markers, got:\n%s", out)
	}
}

func TestExportHTML_RoundTripsCollections(t *testing.T) {
	out := ExportHTML(exportStore())

	// Each collection appears exactly once
	if strings.Count(out, "<DT><H3>work</H3>") != 1 {
		t.Error("expected one folder per collection")
	}
}
