package docs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestAllTopicsLoad(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics: %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("no topics embedded")
	}
	for _, topic := range topics {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("failed to get topic %q: %v", topic, err)
		}
	}
}

func TestTopicsMatchFiles(t *testing.T) {
	// Every .md file in this directory must be reachable as a topic.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".md")
		found := false
		for _, topic := range topics {
			if topic == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("file %s is not listed as a topic", file)
		}
	}
}

func TestTopicsStartWithHeading(t *testing.T) {
	// Each topic is rendered on a terminal; a missing title makes for a
	// confusing page, so enforce a level-1 heading up front.
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			root := goldmark.DefaultParser().Parse(text.NewReader(content))
			first := root.FirstChild()
			heading, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("first block is %T, want heading", first)
			}
			if heading.Level != 1 {
				t.Errorf("first heading level = %d, want 1", heading.Level)
			}
		})
	}
}

func TestUnknownTopic(t *testing.T) {
	if _, err := GetTopic("does-not-exist"); err == nil {
		t.Error("expected an error for an unknown topic")
	}
}

func TestStarExpandsAllTopics(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatal(err)
	}
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range topics {
		single, err := GetTopic(topic)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(all, single) {
			t.Errorf("expansion of %q is missing topic %q", "*", topic)
		}
	}
}
