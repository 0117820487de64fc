package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/canvaspress/internal/db"
)

func intPtr(v int) *int {
	return &v
}

func createPodcast(t *testing.T, svc *PodcastService, input PodcastInput) *db.Podcast {
	t.Helper()

	podcast, err := svc.Create(input)
	if err != nil {
		t.Fatalf("create podcast %q: %v", input.Slug, err)
	}
	return podcast
}

func TestPodcastListOrdersByEpisodeNumberDescending(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	author := seedAuthor(t, gdb)
	svc := NewPodcastService(gdb)

	createPodcast(t, svc, PodcastInput{Title: "Old", Slug: "old", Description: "d", AudioURL: "/a.mp3", EpisodeNumber: intPtr(7), AuthorID: author.ID, Published: true})
	createPodcast(t, svc, PodcastInput{Title: "New", Slug: "new", Description: "d", AudioURL: "/b.mp3", EpisodeNumber: intPtr(12), AuthorID: author.ID, Published: true})

	list, err := svc.List(PodcastFilter{})
	if err != nil {
		t.Fatalf("list podcasts: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 podcasts, got %d", len(list))
	}
	if list[0].Slug != "new" || list[1].Slug != "old" {
		t.Fatalf("unexpected order: %q, %q", list[0].Slug, list[1].Slug)
	}
}

func TestPodcastListSortsMissingEpisodeNumberLast(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	author := seedAuthor(t, gdb)
	svc := NewPodcastService(gdb)

	// 没有集数的单集永远排在有集数的之后
	createPodcast(t, svc, PodcastInput{Title: "Unnumbered", Slug: "unnumbered", Description: "d", AudioURL: "/a.mp3", AuthorID: author.ID, Published: true})
	createPodcast(t, svc, PodcastInput{Title: "Episode 1", Slug: "episode-1", Description: "d", AudioURL: "/b.mp3", EpisodeNumber: intPtr(1), AuthorID: author.ID, Published: true})

	list, err := svc.List(PodcastFilter{})
	if err != nil {
		t.Fatalf("list podcasts: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 podcasts, got %d", len(list))
	}
	if list[0].Slug != "episode-1" || list[1].Slug != "unnumbered" {
		t.Fatalf("expected unnumbered episode last, got %q, %q", list[0].Slug, list[1].Slug)
	}
}

func TestPodcastListLimitAndCategoryFilter(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	author := seedAuthor(t, gdb)
	categories := NewCategoryService(gdb)
	svc := NewPodcastService(gdb)

	category, err := categories.Create("Podcasting", "podcasting")
	if err != nil {
		t.Fatalf("create category: %v", err)
	}

	for i := 1; i <= 3; i++ {
		createPodcast(t, svc, PodcastInput{
			Title:         fmt.Sprintf("Episode %d", i),
			Slug:          fmt.Sprintf("episode-%d", i),
			Description:   "d",
			AudioURL:      "/a.mp3",
			EpisodeNumber: intPtr(i),
			AuthorID:      author.ID,
			CategoryID:    &category.ID,
			Published:     true,
		})
	}
	createPodcast(t, svc, PodcastInput{Title: "Other", Slug: "other", Description: "d", AudioURL: "/b.mp3", EpisodeNumber: intPtr(9), AuthorID: author.ID, Published: true})

	list, err := svc.List(PodcastFilter{CategoryID: &category.ID, Limit: 2})
	if err != nil {
		t.Fatalf("list podcasts: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 podcasts, got %d", len(list))
	}
	if list[0].Slug != "episode-3" || list[1].Slug != "episode-2" {
		t.Fatalf("unexpected order: %q, %q", list[0].Slug, list[1].Slug)
	}
}

func TestPodcastGetBySlugIgnoresUnpublished(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	author := seedAuthor(t, gdb)
	svc := NewPodcastService(gdb)

	createPodcast(t, svc, PodcastInput{Title: "Draft", Slug: "draft", Description: "d", AudioURL: "/a.mp3", AuthorID: author.ID})

	if _, err := svc.GetBySlug("draft"); !errors.Is(err, ErrPodcastNotFound) {
		t.Fatalf("expected ErrPodcastNotFound, got %v", err)
	}
}

func TestPodcastUpdateNotFound(t *testing.T) {
	gdb, cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewPodcastService(gdb)
	title := "x"
	if _, err := svc.Update(42, PodcastUpdate{Title: &title}); !errors.Is(err, ErrPodcastNotFound) {
		t.Fatalf("expected ErrPodcastNotFound, got %v", err)
	}
}
