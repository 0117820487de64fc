package service

import (
	"errors"
	"testing"
)

func TestCategoryListAggregatesPublishedArticleCount(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	author := seedAuthor(t, gdb)
	categories := NewCategoryService(gdb)
	articles := NewArticleService(gdb)

	strategy, err := categories.Create("Content Strategy", "content-strategy")
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	empty, err := categories.Create("Video Creation", "video-creation")
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	createArticle(t, articles, ArticleInput{Title: "A", Slug: "a", Excerpt: "e", Content: "c", AuthorID: author.ID, CategoryID: &strategy.ID, Published: true})
	createArticle(t, articles, ArticleInput{Title: "B", Slug: "b", Excerpt: "e", Content: "c", AuthorID: author.ID, CategoryID: &strategy.ID, Published: true})
	// 未发布文章不计数
	createArticle(t, articles, ArticleInput{Title: "C", Slug: "c", Excerpt: "e", Content: "c", AuthorID: author.ID, CategoryID: &strategy.ID})

	list, err := categories.List()
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(list))
	}

	counts := make(map[string]int64, len(list))
	for _, category := range list {
		counts[category.Slug] = category.ArticleCount
	}
	if counts["content-strategy"] != 2 {
		t.Fatalf("expected 2 published articles in content-strategy, got %d", counts["content-strategy"])
	}
	if counts[empty.Slug] != 0 {
		t.Fatalf("expected 0 articles in %s, got %d", empty.Slug, counts[empty.Slug])
	}
}

func TestCategoryGetBySlugNotFound(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	categories := NewCategoryService(gdb)
	if _, err := categories.GetBySlug("missing"); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryCreateDuplicateSlug(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	categories := NewCategoryService(gdb)
	if _, err := categories.Create("SEO", "seo"); err != nil {
		t.Fatalf("create category: %v", err)
	}
	if _, err := categories.Create("Search", "seo"); !errors.Is(err, ErrCategorySlugUsed) {
		t.Fatalf("expected ErrCategorySlugUsed, got %v", err)
	}
}
