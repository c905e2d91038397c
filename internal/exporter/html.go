package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/marq/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/marq-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("marq-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML exports the store to Netscape bookmark HTML format, one folder
// per collection.
func ExportHTML(store *model.Store) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	for _, collection := range store.Collections() {
		fmt.Fprintf(&b, "    <DT><H3>%s</H3>\n", html.EscapeString(collection))
		b.WriteString("    <DL><p>\n")

		for _, bookmark := range store.CollectionBookmarks(collection) {
			fmt.Fprintf(&b,
				"        <DT><A HREF=\"%s\" ADD_DATE=\"%d\">%s</A>\n",
				html.EscapeString(bookmark.URL),
				bookmark.CreatedAt.Unix(),
				html.EscapeString(bookmark.Title),
			)
		}

		b.WriteString("    </DL><p>\n")
	}

	b.WriteString("</DL><p>\n")

	return b.String()
}
