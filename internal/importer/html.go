package importer

import (
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/nikbrunner/marq/internal/model"
	"github.com/nikbrunner/marq/internal/urlutil"
)

// DefaultCollection receives bookmarks that sit outside any folder in the
// imported file.
const DefaultCollection = "Imported"

// ParseHTMLBookmarks parses Netscape bookmark HTML and returns bookmarks.
// Folder names map to collections; nested folders flatten to their
// innermost name. Entries without a parseable URL are skipped.
func ParseHTMLBookmarks(r io.Reader) ([]model.Bookmark, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var bookmarks []model.Bookmark

	// Stack of folder names for hierarchy; innermost wins as collection
	var folderStack []string
	var pendingFolder string

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				// Folder definition - pushed when the following DL opens
				if name := getTextContent(n); name != "" {
					pendingFolder = name
				}
				return

			case "a":
				href := getAttr(n, "href")
				if href == "" {
					return
				}

				hash, err := urlutil.Hash(href)
				if err != nil {
					// Unparseable URL, skip the entry
					return
				}

				title := getTextContent(n)
				if title == "" {
					title = href
				}

				collection := DefaultCollection
				if len(folderStack) > 0 {
					collection = folderStack[len(folderStack)-1]
				}

				createdAt := time.Now()
				if addDate := getAttr(n, "add_date"); addDate != "" {
					if ts, err := strconv.ParseInt(addDate, 10, 64); err == nil {
						createdAt = time.Unix(ts, 0)
					}
				}

				bookmarks = append(bookmarks, model.Bookmark{
					ID:         model.GenerateUUID(),
					Hash:       hash,
					URL:        href,
					Collection: collection,
					Title:      title,
					CreatedAt:  createdAt,
				})
				return

			case "dl":
				pushed := false
				if pendingFolder != "" {
					folderStack = append(folderStack, pendingFolder)
					pendingFolder = ""
					pushed = true
				}

				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				if pushed {
					folderStack = folderStack[:len(folderStack)-1]
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return bookmarks, nil
}

// Merge adds parsed bookmarks to the store, skipping hashes that are
// already present. Returns the number added and skipped.
func Merge(store *model.Store, bookmarks []model.Bookmark) (added, skipped int) {
	existing := make(map[string]bool, len(store.Bookmarks))
	for _, b := range store.Bookmarks {
		existing[b.Hash] = true
	}

	for _, b := range bookmarks {
		if existing[b.Hash] {
			skipped++
			continue
		}
		existing[b.Hash] = true
		store.AddBookmark(b)
		added++
	}

	return added, skipped
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
