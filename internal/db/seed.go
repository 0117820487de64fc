package db

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed 在空库上填充演示数据：一位作者、五个分类、八个标签、
// 四篇已发布文章与两集播客。库中已有用户时跳过。
func Seed(gdb *gorm.DB) error {
	var userCount int64
	if err := gdb.Model(&User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	author := User{
		Username:    "admin",
		Password:    string(hashed),
		DisplayName: "David Chen",
		Bio:         "Content Strategist & Podcaster sharing actionable tips, strategies, and insights for content creators looking to build sustainable online businesses.",
		AvatarURL:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e",
	}
	if err := gdb.Create(&author).Error; err != nil {
		return err
	}

	categories := []Category{
		{Name: "Content Strategy", Slug: "content-strategy"},
		{Name: "Podcasting", Slug: "podcasting"},
		{Name: "Social Media", Slug: "social-media"},
		{Name: "SEO", Slug: "seo"},
		{Name: "Video Creation", Slug: "video-creation"},
	}
	if err := gdb.Create(&categories).Error; err != nil {
		return err
	}

	tags := []Tag{
		{Name: "Content Marketing", Slug: "content-marketing"},
		{Name: "Blogging Tips", Slug: "blogging-tips"},
		{Name: "SEO", Slug: "seo"},
		{Name: "Podcast Growth", Slug: "podcast-growth"},
		{Name: "Email Marketing", Slug: "email-marketing"},
		{Name: "Monetization", Slug: "monetization"},
		{Name: "Productivity Tips", Slug: "productivity-tips"},
		{Name: "Social Media", Slug: "social-media"},
	}
	if err := gdb.Create(&tags).Error; err != nil {
		return err
	}

	articles := []Article{
		{
			Title:      "How to Create Engaging Content That Converts",
			Slug:       "how-to-create-engaging-content-that-converts",
			Excerpt:    "In today's content-saturated digital landscape, creating material that not only captures attention but also drives action is more challenging — and more essential — than ever.",
			Content:    "In today's content-saturated digital landscape, creating material that not only captures attention but also drives action is more challenging — and more essential — than ever. This comprehensive guide explores proven strategies for developing content that resonates with your audience and motivates them to take the next step.",
			ImageURL:   "https://images.unsplash.com/photo-1499750310107-5fef28a66643",
			AuthorID:   author.ID,
			CategoryID: &categories[0].ID,
			Featured:   true,
			Published:  true,
		},
		{
			Title:      "10 Proven Strategies for Growing Your Online Audience",
			Slug:       "proven-strategies-growing-online-audience",
			Excerpt:    "Building an engaged online audience isn't just about posting consistently — it's about creating a strategic approach that connects with your target viewers and readers.",
			Content:    "Building an engaged online audience isn't just about posting consistently — it's about creating a strategic approach that connects with your target viewers and readers. Discover the methods that industry leaders use to expand their digital reach.",
			ImageURL:   "https://images.unsplash.com/photo-1519389950473-47ba0277781c",
			AuthorID:   author.ID,
			CategoryID: &categories[0].ID,
			Published:  true,
		},
		{
			Title:      "Starting a Successful Podcast: Equipment and Planning Guide",
			Slug:       "starting-successful-podcast-equipment-planning-guide",
			Excerpt:    "Launching a podcast doesn't require fancy equipment or a sound engineering degree, but knowing the essentials will help you create professional-quality episodes from the start.",
			Content:    "Launching a podcast doesn't require fancy equipment or a sound engineering degree, but knowing the essentials will help you create professional-quality episodes from the start. This guide breaks down exactly what you need.",
			ImageURL:   "https://images.unsplash.com/photo-1501504905252-473c47e087f8",
			AuthorID:   author.ID,
			CategoryID: &categories[1].ID,
			Published:  true,
		},
		{
			Title:      "The Complete Social Media Content Calendar Template",
			Slug:       "complete-social-media-content-calendar-template",
			Excerpt:    "Consistency is key in social media marketing, but planning weeks of content in advance can feel overwhelming.",
			Content:    "Consistency is key in social media marketing, but planning weeks of content in advance can feel overwhelming. This ready-to-use template helps you organize your posts across platforms while maintaining your brand voice.",
			ImageURL:   "https://images.unsplash.com/photo-1606857521015-7f9fcf423740",
			AuthorID:   author.ID,
			CategoryID: &categories[2].ID,
			Published:  true,
		},
	}
	for i := range articles {
		// 每篇文章关联 2-3 个标签
		articles[i].Tags = tagWindow(tags, i, i+3)
		if err := gdb.Create(&articles[i]).Error; err != nil {
			return err
		}
	}

	episode42 := 42
	episode41 := 41
	podcasts := []Podcast{
		{
			Title:         "The Future of Content Creation with AI Tools",
			Slug:          "future-content-creation-ai-tools",
			Description:   "In this episode, we explore how artificial intelligence is reshaping the content creation landscape, from writing assistants to image generation. Industry experts weigh in on ethical considerations and how creators can leverage these tools effectively.",
			ImageURL:      "https://images.unsplash.com/photo-1478737270239-2f02b77fc618",
			AudioURL:      "/podcasts/episode-42.mp3",
			Duration:      2700,
			EpisodeNumber: &episode42,
			AuthorID:      author.ID,
			CategoryID:    &categories[0].ID,
			Published:     true,
		},
		{
			Title:         "Monetization Strategies for Independent Creators",
			Slug:          "monetization-strategies-independent-creators",
			Description:   "From subscription models to digital products, this episode breaks down diverse revenue streams for bloggers, podcasters, and content creators looking to build sustainable businesses around their passion projects.",
			ImageURL:      "https://images.unsplash.com/photo-1559523161-0fc0d8b38a7a",
			AudioURL:      "/podcasts/episode-41.mp3",
			Duration:      2280,
			EpisodeNumber: &episode41,
			AuthorID:      author.ID,
			CategoryID:    &categories[1].ID,
			Published:     true,
		},
	}
	for i := range podcasts {
		podcasts[i].Tags = tagWindow(tags, i+2, i+5)
		if err := gdb.Create(&podcasts[i]).Error; err != nil {
			return err
		}
	}

	settings := []Setting{
		{Key: SettingKeySiteTitle, Value: "Creator's Canvas"},
		{Key: SettingKeySiteDescription, Value: "A simple, elegant platform for content creators, bloggers, and podcasters to publish their work without the technical hassle"},
		{Key: SettingKeySiteLogo, Value: "/logo.svg"},
		{Key: SettingKeyPrimaryColor, Value: "#3B82F6"},
		{Key: SettingKeyAccentColor, Value: "#F59E0B"},
		{Key: SettingKeyFontHeading, Value: "Inter"},
		{Key: SettingKeyFontBody, Value: "Merriweather"},
	}
	return gdb.Create(&settings).Error
}

func tagWindow(tags []Tag, start, end int) []Tag {
	if start > len(tags) {
		start = len(tags)
	}
	if end > len(tags) {
		end = len(tags)
	}
	return tags[start:end]
}
