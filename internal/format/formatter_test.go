package format

import (
	"strings"
	"testing"

	"github.com/habtools/habctl/internal/rest"
)

func TestFormatItem_Group(t *testing.T) {
	item := &rest.Item{
		Name:  "G",
		State: "ON",
		Type:  "Group",
		Members: []rest.Item{
			{Name: "A", State: "ON", Type: "Switch"},
			{Name: "B", State: "OFF", Type: "Switch"},
		},
	}

	doc := FormatItem(item)

	if len(doc.Blocks) != 4 {
		t.Fatalf("FormatItem() produced %d blocks, expected 4", len(doc.Blocks))
	}

	expected := []struct {
		kind  BlockKind
		text  string
		brk   bool
	}{
		{KindCode, "Item G | ON", false},
		{KindHeading, "Members:", false},
		{KindCode, "Item A | ON", true},
		{KindCode, "Item B | OFF", false},
	}

	for i, want := range expected {
		got := doc.Blocks[i]
		if got.Kind != want.kind || got.Text != want.text || got.Break != want.brk {
			t.Errorf("block %d = {kind:%v text:%q break:%v}, expected {kind:%v text:%q break:%v}",
				i, got.Kind, got.Text, got.Break, want.kind, want.text, want.brk)
		}
	}
}

func TestFormatItem_GroupSingleMember(t *testing.T) {
	item := &rest.Item{
		Name:    "G",
		State:   "ON",
		Type:    "Group",
		Members: []rest.Item{{Name: "A", State: "ON", Type: "Switch"}},
	}

	doc := FormatItem(item)

	if len(doc.Blocks) != 3 {
		t.Fatalf("FormatItem() produced %d blocks, expected 3", len(doc.Blocks))
	}
	// A lone member is also the last member: no separator
	if doc.Blocks[2].Break {
		t.Errorf("final member block carries a separator")
	}
}

func TestFormatItem_PlainItem(t *testing.T) {
	item := &rest.Item{Name: "Temperature", State: "21.5", Type: "Number"}

	doc := FormatItem(item)

	if len(doc.Blocks) != 1 {
		t.Fatalf("FormatItem() produced %d blocks, expected 1", len(doc.Blocks))
	}
	if doc.Blocks[0].Kind != KindCode || doc.Blocks[0].Text != "21.5" {
		t.Errorf("block = {kind:%v text:%q}, expected state alone in a code block",
			doc.Blocks[0].Kind, doc.Blocks[0].Text)
	}
}

func TestFormatItem_Deterministic(t *testing.T) {
	item := &rest.Item{
		Name:  "G",
		State: "ON",
		Type:  "Group",
		Members: []rest.Item{
			{Name: "A", State: "ON"},
			{Name: "B", State: "OFF"},
			{Name: "C", State: "ON"},
		},
	}

	first := FormatItem(item).Markdown()
	second := FormatItem(item).Markdown()
	if first != second {
		t.Errorf("FormatItem() is not deterministic")
	}

	// Member order must be preserved
	aIdx := strings.Index(first, "Item A")
	bIdx := strings.Index(first, "Item B")
	cIdx := strings.Index(first, "Item C")
	if !(aIdx < bIdx && bIdx < cIdx) {
		t.Errorf("member order not preserved in %q", first)
	}
}

func TestFormatServiceConfig(t *testing.T) {
	cfg := rest.ServiceConfig{
		"defaultSitemap": "home",
		"iconType":       "svg",
	}

	doc := FormatServiceConfig(cfg, []string{"defaultSitemap", "iconType"})

	if len(doc.Blocks) != 2 {
		t.Fatalf("FormatServiceConfig() produced %d blocks, expected 2", len(doc.Blocks))
	}
	if doc.Blocks[0].Text != "Default sitemap: home" {
		t.Errorf("block 0 = %q, expected humanized key label", doc.Blocks[0].Text)
	}
	if doc.Blocks[1].Text != "Icon type: svg" {
		t.Errorf("block 1 = %q, expected humanized key label", doc.Blocks[1].Text)
	}
}

func TestDocumentMarkdown(t *testing.T) {
	doc := &Document{Blocks: []Block{
		{Kind: KindCode, Text: "Item G | ON"},
		{Kind: KindHeading, Text: "Members:"},
		{Kind: KindCode, Text: "Item A | ON", Break: true},
		{Kind: KindCode, Text: "Item B | OFF"},
	}}

	md := doc.Markdown()

	want := "```openhab\nItem G | ON\n```\nMembers:\n```openhab\nItem A | ON\n```\n\n```openhab\nItem B | OFF\n```\n"
	if md != want {
		t.Errorf("Markdown() = %q, expected %q", md, want)
	}

	if strings.HasSuffix(md, "\n\n") {
		t.Errorf("Markdown() ends with a trailing separator")
	}
}

func TestDocumentEmpty(t *testing.T) {
	var nilDoc *Document
	if !nilDoc.Empty() {
		t.Errorf("nil document should be empty")
	}
	if (&Document{}).Empty() != true {
		t.Errorf("zero document should be empty")
	}
	if nilDoc.Markdown() != "" {
		t.Errorf("empty document should render to empty string")
	}
}
