package format

import (
	"fmt"

	"github.com/habtools/habctl/internal/rest"
)

// FormatItem converts an item record into a display document. Deterministic
// for a given input, member order preserved, and a separator never follows
// the final member. Must not be called for a record carrying an error
// field; that case resolves to no document at the call site.
func FormatItem(item *rest.Item) *Document {
	doc := &Document{}

	if !item.IsGroup() {
		// Plain items render their state alone
		doc.Blocks = append(doc.Blocks, Block{Kind: KindCode, Text: item.State})
		return doc
	}

	doc.Blocks = append(doc.Blocks,
		Block{Kind: KindCode, Text: itemLine(item)},
		Block{Kind: KindHeading, Text: "Members:"},
	)

	for i, member := range item.Members {
		doc.Blocks = append(doc.Blocks, Block{
			Kind:  KindCode,
			Text:  itemLine(&member),
			Break: i < len(item.Members)-1,
		})
	}

	return doc
}

// FormatServiceConfig renders a service configuration record as humanized
// "label: value" heading lines, keys in the given order.
func FormatServiceConfig(cfg rest.ServiceConfig, keys []string) *Document {
	doc := &Document{}
	for _, key := range keys {
		doc.Blocks = append(doc.Blocks, Block{
			Kind: KindHeading,
			Text: fmt.Sprintf("%s: %v", Humanize(key), cfg[key]),
		})
	}
	return doc
}

func itemLine(item *rest.Item) string {
	return fmt.Sprintf("Item %s | %s", item.Name, item.State)
}
