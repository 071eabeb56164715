// file: internals/features/updates/model/news_article_model_test.go
package model

import (
	"strings"
	"testing"
)

func TestArticleStatusValid(t *testing.T) {
	if !ArticleStatusDraft.Valid() || !ArticleStatusPublished.Valid() {
		t.Fatal("DF and PB must be valid statuses")
	}
	if ArticleStatus("XX").Valid() {
		t.Fatal("unknown status must not validate")
	}
}

func TestArticleBeforeSaveDerivesSlugOnce(t *testing.T) {
	m := &NewsArticleModel{
		NewsArticleTitle:   "General Notice",
		NewsArticleContent: "short note",
	}
	if err := m.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if m.NewsArticleSlug != "general-notice" {
		t.Fatalf("slug = %q, want %q", m.NewsArticleSlug, "general-notice")
	}

	// Renaming the article must not move the permalink.
	m.NewsArticleTitle = "Completely Different Title"
	if err := m.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if m.NewsArticleSlug != "general-notice" {
		t.Fatalf("slug changed on rename: %q", m.NewsArticleSlug)
	}
}

func TestArticleBeforeSaveRecomputesReadTime(t *testing.T) {
	m := &NewsArticleModel{
		NewsArticleTitle:   "Annual Report",
		NewsArticleContent: strings.TrimSpace(strings.Repeat("word ", 250)),
	}
	if err := m.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if m.NewsArticleReadTime != 2 {
		t.Fatalf("read_time = %d, want 2 for 250 words", m.NewsArticleReadTime)
	}

	// Stale value is overwritten on every save, shrinking included.
	m.NewsArticleContent = "one two three"
	if err := m.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if m.NewsArticleReadTime != 1 {
		t.Fatalf("read_time = %d, want 1 after shortening", m.NewsArticleReadTime)
	}

	m.NewsArticleContent = ""
	if err := m.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if m.NewsArticleReadTime != 0 {
		t.Fatalf("read_time = %d, want 0 for empty content", m.NewsArticleReadTime)
	}
}

func TestCategoryBeforeSaveDerivesSlugOnce(t *testing.T) {
	m := &CategoryModel{CategoryName: "Press Release"}
	if err := m.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if m.CategorySlug != "press-release" {
		t.Fatalf("slug = %q, want %q", m.CategorySlug, "press-release")
	}

	m.CategoryName = "Renamed Category"
	if err := m.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if m.CategorySlug != "press-release" {
		t.Fatalf("slug changed on rename: %q", m.CategorySlug)
	}
}
