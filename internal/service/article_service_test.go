package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/canvaspress/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:service-test-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.User{},
		&db.Category{},
		&db.Article{},
		&db.Podcast{},
		&db.Tag{},
		&db.Subscriber{},
		&db.Setting{},
		&db.ContactMessage{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}
}

func seedAuthor(t *testing.T, gdb *gorm.DB) db.User {
	t.Helper()

	author := db.User{Username: "tester", Password: "hashed", DisplayName: "Tester"}
	if err := gdb.Create(&author).Error; err != nil {
		t.Fatalf("failed to seed author: %v", err)
	}
	return author
}

func createArticle(t *testing.T, svc *ArticleService, input ArticleInput) *db.Article {
	t.Helper()

	article, err := svc.Create(input)
	if err != nil {
		t.Fatalf("create article %q: %v", input.Slug, err)
	}
	return article
}

func TestArticleCreateAssignsIncreasingIDs(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	author := seedAuthor(t, gdb)
	svc := NewArticleService(gdb)

	var lastID uint
	for i := 0; i < 3; i++ {
		article := createArticle(t, svc, ArticleInput{
			Title:     fmt.Sprintf("Article %d", i),
			Slug:      fmt.Sprintf("article-%d", i),
			Excerpt:   "excerpt",
			Content:   "content",
			AuthorID:  author.ID,
			Published: true,
		})
		if article.ID <= lastID {
			t.Fatalf("expected id greater than %d, got %d", lastID, article.ID)
		}
		lastID = article.ID
	}

	// 删除后新建也不会复用 ID
	if err := svc.Delete(lastID); err != nil {
		t.Fatalf("delete article: %v", err)
	}

	article := createArticle(t, svc, ArticleInput{
		Title:     "After delete",
		Slug:      "after-delete",
		Excerpt:   "excerpt",
		Content:   "content",
		AuthorID:  author.ID,
		Published: true,
	})
	if article.ID <= lastID {
		t.Fatalf("expected id greater than %d after delete, got %d", lastID, article.ID)
	}
}

func TestArticleListFiltersFeatured(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	author := seedAuthor(t, gdb)
	svc := NewArticleService(gdb)

	createArticle(t, svc, ArticleInput{Title: "Hero", Slug: "hero", Excerpt: "e", Content: "c", AuthorID: author.ID, Featured: true, Published: true})
	createArticle(t, svc, ArticleInput{Title: "Plain", Slug: "plain", Excerpt: "e", Content: "c", AuthorID: author.ID, Published: true})

	featured := true
	list, err := svc.List(ArticleFilter{Featured: &featured})
	if err != nil {
		t.Fatalf("list featured: %v", err)
	}
	if len(list) != 1 || !list[0].Featured {
		t.Fatalf("expected exactly one featured article, got %d", len(list))
	}

	featured = false
	list, err = svc.List(ArticleFilter{Featured: &featured})
	if err != nil {
		t.Fatalf("list non-featured: %v", err)
	}
	if len(list) != 1 || list[0].Featured {
		t.Fatalf("expected exactly one non-featured article, got %d", len(list))
	}
}

func TestArticleListLimitReturnsPrefix(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	author := seedAuthor(t, gdb)
	svc := NewArticleService(gdb)

	for i := 0; i < 4; i++ {
		createArticle(t, svc, ArticleInput{
			Title:     fmt.Sprintf("Article %d", i),
			Slug:      fmt.Sprintf("article-%d", i),
			Excerpt:   "e",
			Content:   "c",
			AuthorID:  author.ID,
			Published: true,
		})
	}

	full, err := svc.List(ArticleFilter{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(full) != 4 {
		t.Fatalf("expected 4 articles, got %d", len(full))
	}

	limited, err := svc.List(ArticleFilter{Limit: 2})
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(limited))
	}
	for i := range limited {
		if limited[i].ID != full[i].ID {
			t.Fatalf("limited list is not a prefix: position %d has id %d, want %d", i, limited[i].ID, full[i].ID)
		}
	}
}

func TestArticleListExcludesUnpublished(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	author := seedAuthor(t, gdb)
	svc := NewArticleService(gdb)

	createArticle(t, svc, ArticleInput{Title: "Draft", Slug: "draft", Excerpt: "e", Content: "c", AuthorID: author.ID})
	createArticle(t, svc, ArticleInput{Title: "Live", Slug: "live", Excerpt: "e", Content: "c", AuthorID: author.ID, Published: true})

	list, err := svc.List(ArticleFilter{})
	if err != nil {
		t.Fatalf("list articles: %v", err)
	}
	if len(list) != 1 || list[0].Slug != "live" {
		t.Fatalf("expected only the published article, got %d entries", len(list))
	}

	if _, err := svc.GetBySlug("draft"); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound for draft, got %v", err)
	}
}

func TestArticleGetBySlugNotFound(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewArticleService(gdb)
	if _, err := svc.GetBySlug("missing"); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestArticleCreateDuplicateSlug(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	author := seedAuthor(t, gdb)
	svc := NewArticleService(gdb)

	createArticle(t, svc, ArticleInput{Title: "First", Slug: "same-slug", Excerpt: "e", Content: "c", AuthorID: author.ID, Published: true})

	if _, err := svc.Create(ArticleInput{Title: "Second", Slug: "same-slug", Excerpt: "e", Content: "c", AuthorID: author.ID}); !errors.Is(err, ErrArticleSlugUsed) {
		t.Fatalf("expected ErrArticleSlugUsed, got %v", err)
	}
}

func TestArticleUpdateMergesPartialFields(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	author := seedAuthor(t, gdb)
	svc := NewArticleService(gdb)

	article := createArticle(t, svc, ArticleInput{Title: "Before", Slug: "before", Excerpt: "keep", Content: "keep", AuthorID: author.ID, Published: true})

	newTitle := "After"
	updated, err := svc.Update(article.ID, ArticleUpdate{Title: &newTitle})
	if err != nil {
		t.Fatalf("update article: %v", err)
	}

	if updated.Title != "After" {
		t.Fatalf("expected title updated, got %q", updated.Title)
	}
	if updated.Excerpt != "keep" || updated.Content != "keep" {
		t.Fatalf("expected untouched fields preserved, got excerpt=%q content=%q", updated.Excerpt, updated.Content)
	}
	if !updated.UpdatedAt.After(article.CreatedAt) && !updated.UpdatedAt.Equal(article.CreatedAt) {
		t.Fatalf("expected updated_at re-stamped")
	}
}

func TestArticleUpdateNotFound(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewArticleService(gdb)
	title := "x"
	if _, err := svc.Update(999, ArticleUpdate{Title: &title}); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestArticleDeleteRemovesFromList(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	author := seedAuthor(t, gdb)
	svc := NewArticleService(gdb)

	article := createArticle(t, svc, ArticleInput{Title: "Doomed", Slug: "doomed", Excerpt: "e", Content: "c", AuthorID: author.ID, Published: true})

	if err := svc.Delete(article.ID); err != nil {
		t.Fatalf("delete article: %v", err)
	}

	if _, err := svc.GetBySlug("doomed"); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("expected deleted article to be gone, got %v", err)
	}

	if err := svc.Delete(article.ID); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound on second delete, got %v", err)
	}
}

func TestArticleAddTagIsIdempotent(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	author := seedAuthor(t, gdb)
	svc := NewArticleService(gdb)
	tags := NewTagService(gdb)

	article := createArticle(t, svc, ArticleInput{Title: "Tagged", Slug: "tagged", Excerpt: "e", Content: "c", AuthorID: author.ID, Published: true})
	tag, err := tags.Create("Go", "go")
	if err != nil {
		t.Fatalf("create tag: %v", err)
	}

	if err := svc.AddTag(article.ID, tag.ID); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.AddTag(article.ID, tag.ID); err != nil {
		t.Fatalf("second add: %v", err)
	}

	resolved, err := svc.Tags(article.ID)
	if err != nil {
		t.Fatalf("resolve tags: %v", err)
	}
	if len(resolved) != 1 {
		t.Fatalf("expected one tag association, got %d", len(resolved))
	}
}

func TestArticleTagsDropDanglingReferences(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	author := seedAuthor(t, gdb)
	svc := NewArticleService(gdb)
	tags := NewTagService(gdb)

	article := createArticle(t, svc, ArticleInput{Title: "Tagged", Slug: "tagged", Excerpt: "e", Content: "c", AuthorID: author.ID, Published: true})
	tag, err := tags.Create("Gone", "gone")
	if err != nil {
		t.Fatalf("create tag: %v", err)
	}
	if err := svc.AddTag(article.ID, tag.ID); err != nil {
		t.Fatalf("add tag: %v", err)
	}

	if err := gdb.Delete(&db.Tag{}, tag.ID).Error; err != nil {
		t.Fatalf("delete tag: %v", err)
	}

	resolved, err := svc.Tags(article.ID)
	if err != nil {
		t.Fatalf("resolve tags: %v", err)
	}
	if len(resolved) != 0 {
		t.Fatalf("expected dangling tag dropped, got %d", len(resolved))
	}
}
