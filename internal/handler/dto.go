package handler

import (
	"time"

	"github.com/canvaspress/internal/db"
)

// 响应 DTO 在此集中定义，每个实体只有一种对外形状，
// 所有路由复用同一构造函数。

type authorResponse struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Bio         string `json:"bio,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

type categoryResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ArticleCount int64  `json:"articleCount"`
}

type tagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type articleResponse struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Slug        string            `json:"slug"`
	Excerpt     string            `json:"excerpt"`
	Content     string            `json:"content"`
	ContentHTML string            `json:"contentHtml,omitempty"`
	ImageURL    string            `json:"imageUrl,omitempty"`
	Featured    bool              `json:"featured"`
	Published   bool              `json:"published"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	Author      *authorResponse   `json:"author"`
	Category    *categoryResponse `json:"category"`
	Tags        []tagResponse     `json:"tags"`
}

type podcastResponse struct {
	ID            uint              `json:"id"`
	Title         string            `json:"title"`
	Slug          string            `json:"slug"`
	Description   string            `json:"description"`
	ImageURL      string            `json:"imageUrl,omitempty"`
	AudioURL      string            `json:"audioUrl,omitempty"`
	Duration      int               `json:"duration"`
	EpisodeNumber *int              `json:"episodeNumber"`
	Published     bool              `json:"published"`
	CreatedAt     time.Time         `json:"createdAt"`
	Author        *authorResponse   `json:"author"`
	Category      *categoryResponse `json:"category"`
	Tags          []tagResponse     `json:"tags"`
}

type subscriberResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func newAuthorResponse(user db.User) *authorResponse {
	if user.ID == 0 {
		return nil
	}
	return &authorResponse{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Bio:         user.Bio,
		AvatarURL:   user.AvatarURL,
	}
}

func newCategoryResponse(category *db.Category) *categoryResponse {
	if category == nil || category.ID == 0 {
		return nil
	}
	return &categoryResponse{
		ID:           category.ID,
		Name:         category.Name,
		Slug:         category.Slug,
		ArticleCount: category.ArticleCount,
	}
}

func newTagResponses(tags []db.Tag) []tagResponse {
	result := make([]tagResponse, 0, len(tags))
	for _, tag := range tags {
		result = append(result, tagResponse{ID: tag.ID, Name: tag.Name, Slug: tag.Slug})
	}
	return result
}

func newArticleResponse(article db.Article) articleResponse {
	return articleResponse{
		ID:        article.ID,
		Title:     article.Title,
		Slug:      article.Slug,
		Excerpt:   article.Excerpt,
		Content:   article.Content,
		ImageURL:  article.ImageURL,
		Featured:  article.Featured,
		Published: article.Published,
		CreatedAt: article.CreatedAt,
		UpdatedAt: article.UpdatedAt,
		Author:    newAuthorResponse(article.Author),
		Category:  newCategoryResponse(article.Category),
		Tags:      newTagResponses(article.Tags),
	}
}

func newArticleResponses(articles []db.Article) []articleResponse {
	result := make([]articleResponse, 0, len(articles))
	for _, article := range articles {
		result = append(result, newArticleResponse(article))
	}
	return result
}

func newPodcastResponse(podcast db.Podcast) podcastResponse {
	return podcastResponse{
		ID:            podcast.ID,
		Title:         podcast.Title,
		Slug:          podcast.Slug,
		Description:   podcast.Description,
		ImageURL:      podcast.ImageURL,
		AudioURL:      podcast.AudioURL,
		Duration:      podcast.Duration,
		EpisodeNumber: podcast.EpisodeNumber,
		Published:     podcast.Published,
		CreatedAt:     podcast.CreatedAt,
		Author:        newAuthorResponse(podcast.Author),
		Category:      newCategoryResponse(podcast.Category),
		Tags:          newTagResponses(podcast.Tags),
	}
}

func newPodcastResponses(podcasts []db.Podcast) []podcastResponse {
	result := make([]podcastResponse, 0, len(podcasts))
	for _, podcast := range podcasts {
		result = append(result, newPodcastResponse(podcast))
	}
	return result
}

func newSubscriberResponses(subscribers []db.Subscriber) []subscriberResponse {
	result := make([]subscriberResponse, 0, len(subscribers))
	for _, subscriber := range subscribers {
		result = append(result, subscriberResponse{
			ID:        subscriber.ID,
			Email:     subscriber.Email,
			CreatedAt: subscriber.CreatedAt,
		})
	}
	return result
}
