// file: internals/features/updates/model/news_article_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "bhanjyang_backend/internals/helpers"
)

/* =========================================================
   ENUM: ArticleStatus
   ========================================================= */

type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "DF"
	ArticleStatusPublished ArticleStatus = "PB"
)

func (s ArticleStatus) Valid() bool {
	switch s {
	case ArticleStatusDraft, ArticleStatusPublished:
		return true
	default:
		return false
	}
}

/* =========================================================
   MODEL: news_articles
   ========================================================= */

type NewsArticleModel struct {
	NewsArticleID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:news_article_id" json:"news_article_id"`

	NewsArticleTitle string `gorm:"type:varchar(200);not null;column:news_article_title" json:"news_article_title"`
	NewsArticleSlug  string `gorm:"type:varchar(250);not null;uniqueIndex;column:news_article_slug" json:"news_article_slug"`

	// Category is delete-protected while articles reference it
	NewsArticleCategoryID uuid.UUID `gorm:"type:uuid;not null;column:news_article_category_id" json:"news_article_category_id"`

	// Author identity lives outside this service; a display label is enough here
	NewsArticleAuthor string `gorm:"type:varchar(100);not null;column:news_article_author" json:"news_article_author"`

	NewsArticleImageURL *string `gorm:"type:text;column:news_article_image_url" json:"news_article_image_url,omitempty"`
	NewsArticleContent  string  `gorm:"type:text;not null;column:news_article_content" json:"news_article_content"`

	NewsArticleStatus        ArticleStatus `gorm:"type:varchar(2);not null;default:'DF';column:news_article_status" json:"news_article_status"`
	NewsArticlePublishedDate time.Time     `gorm:"type:timestamptz;not null;default:now();column:news_article_published_date" json:"news_article_published_date"`

	// Derived on every save from content
	NewsArticleReadTime int `gorm:"type:integer;not null;default:0;column:news_article_read_time" json:"news_article_read_time"`

	NewsArticleCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:news_article_created_at" json:"news_article_created_at"`
	NewsArticleUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:news_article_updated_at" json:"news_article_updated_at"`

	Category *CategoryModel `gorm:"foreignKey:NewsArticleCategoryID;references:CategoryID;constraint:OnDelete:RESTRICT" json:"category,omitempty"`
}

func (NewsArticleModel) TableName() string { return "news_articles" }

// BeforeSave computes the derived fields. The slug is set once from the title
// and then frozen (stable permalinks); read_time is recomputed on every save.
func (m *NewsArticleModel) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(m.NewsArticleSlug) == "" {
		m.NewsArticleSlug = helper.Slugify(m.NewsArticleTitle, 250)
	}
	m.NewsArticleReadTime = helper.EstimateReadTime(m.NewsArticleContent)
	return nil
}
