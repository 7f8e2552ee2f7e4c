package reference

import (
	"regexp"
	"strings"

	"policy-rag-be/internal/constant"
	"policy-rag-be/pkg/store"
)

// PolicySummary is the lightweight view of a document that was retrieved but
// not selected for the main answer.
type PolicySummary struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Policy chunks carry labeled fields in their text body; the title and link
// are recovered by pattern match, not by metadata lookup.
var (
	titlePattern = regexp.MustCompile(`정책명:([^\n]+)`)
	urlPattern   = regexp.MustCompile(`관련링크: *([^\n\s]+)`)
)

// FromDocument extracts {title, url} from one document's content. Missing
// fields default to a generic title and an empty URL.
func FromDocument(doc store.Document) PolicySummary {
	summary := PolicySummary{Title: constant.DefaultReferenceTitle}

	if m := titlePattern.FindStringSubmatch(doc.Content); m != nil {
		summary.Title = strings.TrimSpace(m[1])
	}
	if m := urlPattern.FindStringSubmatch(doc.Content); m != nil {
		summary.URL = strings.TrimSpace(m[1])
	}

	return summary
}

// FromDocuments maps every secondary document to its summary, preserving order
func FromDocuments(docs []store.Document) []PolicySummary {
	summaries := make([]PolicySummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, FromDocument(doc))
	}
	return summaries
}
