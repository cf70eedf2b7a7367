package docs

import (
	"strings"
	"testing"
)

func TestAll_ReturnsTopics(t *testing.T) {
	topics := All()
	if len(topics) == 0 {
		t.Fatal("All() returned no topics")
	}
	if topics[0].Name != "quickstart" {
		t.Errorf("first topic = %q, want %q", topics[0].Name, "quickstart")
	}
}

func TestAll_NoDuplicateNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, topic := range All() {
		if seen[topic.Name] {
			t.Errorf("duplicate topic name: %q", topic.Name)
		}
		seen[topic.Name] = true
	}
}

func TestAll_AllFieldsPopulated(t *testing.T) {
	for _, topic := range All() {
		if topic.Name == "" {
			t.Error("topic has empty Name")
		}
		if topic.Title == "" {
			t.Errorf("topic %q has empty Title", topic.Name)
		}
		if topic.Summary == "" {
			t.Errorf("topic %q has empty Summary", topic.Name)
		}
		if topic.Content == "" {
			t.Errorf("topic %q has empty Content", topic.Name)
		}
	}
}

func TestGet_Found(t *testing.T) {
	topic, err := Get("plan")
	if err != nil {
		t.Fatalf("Get(plan) error: %v", err)
	}
	if topic.Name != "plan" {
		t.Errorf("Name = %q, want %q", topic.Name, "plan")
	}
}

func TestGet_NotFound(t *testing.T) {
	_, err := Get("nonexistent")
	if err == nil {
		t.Fatal("Get(nonexistent) should return error")
	}
}

func TestGet_CaseInsensitive(t *testing.T) {
	topic, err := Get("Config")
	if err != nil {
		t.Fatalf("Get(Config) error: %v", err)
	}
	if topic.Name != "config" {
		t.Errorf("Name = %q, want %q", topic.Name, "config")
	}
}

func TestGet_SuggestsByName(t *testing.T) {
	_, err := Get("scr")
	if err == nil || !strings.Contains(err.Error(), `did you mean "script"`) {
		t.Fatalf("got %v", err)
	}
}

func TestGet_SuggestsByTitle(t *testing.T) {
	_, err := Get("validation")
	if err == nil || !strings.Contains(err.Error(), `did you mean "errors"`) {
		t.Fatalf("got %v", err)
	}
}

func TestGet_NoSuggestion(t *testing.T) {
	_, err := Get("nonexistent")
	if err == nil || !strings.Contains(err.Error(), "run 'beadplan docs'") {
		t.Fatalf("got %v", err)
	}
}
