// file: internals/features/updates/dto/news_article_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "bhanjyang_backend/internals/features/updates/model"
)

/* =========================================================
   Helpers
========================================================= */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func parseRFC3339Ptr(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(*s))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

/* =========================================================
   CREATE
========================================================= */

type CreateNewsArticleRequest struct {
	NewsArticleTitle      string    `json:"news_article_title" validate:"required,max=200"`
	NewsArticleSlug       string    `json:"news_article_slug" validate:"omitempty,max=250"`
	NewsArticleCategoryID uuid.UUID `json:"news_article_category_id" validate:"required"`
	NewsArticleAuthor     string    `json:"news_article_author" validate:"required,max=100"`
	NewsArticleImageURL   *string   `json:"news_article_image_url" validate:"omitempty"`
	NewsArticleContent    string    `json:"news_article_content" validate:"required"`

	// Display/sort field; not validated against "now"
	NewsArticlePublishedDate *string `json:"news_article_published_date" validate:"omitempty"` // RFC3339
}

func (r *CreateNewsArticleRequest) ToModel() (*model.NewsArticleModel, error) {
	pub, err := parseRFC3339Ptr(r.NewsArticlePublishedDate)
	if err != nil {
		return nil, err
	}

	m := &model.NewsArticleModel{
		NewsArticleTitle:      strings.TrimSpace(r.NewsArticleTitle),
		NewsArticleSlug:       strings.TrimSpace(r.NewsArticleSlug),
		NewsArticleCategoryID: r.NewsArticleCategoryID,
		NewsArticleAuthor:     strings.TrimSpace(r.NewsArticleAuthor),
		NewsArticleImageURL:   trimPtr(r.NewsArticleImageURL),
		NewsArticleContent:    r.NewsArticleContent,
		NewsArticleStatus:     model.ArticleStatusDraft, // every article starts as a draft
	}
	if pub != nil {
		m.NewsArticlePublishedDate = *pub
	} else {
		m.NewsArticlePublishedDate = time.Now()
	}
	return m, nil
}

/* =========================================================
   PATCH
========================================================= */

type PatchNewsArticleRequest struct {
	NewsArticleTitle         *string    `json:"news_article_title" validate:"omitempty,max=200"`
	NewsArticleCategoryID    *uuid.UUID `json:"news_article_category_id" validate:"omitempty"`
	NewsArticleAuthor        *string    `json:"news_article_author" validate:"omitempty,max=100"`
	NewsArticleImageURL      *string    `json:"news_article_image_url" validate:"omitempty"`
	NewsArticleContent       *string    `json:"news_article_content" validate:"omitempty"`
	NewsArticleStatus        *string    `json:"news_article_status" validate:"omitempty,oneof=DF PB"`
	NewsArticlePublishedDate *string    `json:"news_article_published_date" validate:"omitempty"` // RFC3339
}

// Apply mutates the loaded row. The slug is deliberately not touchable:
// changing a title after first save never changes an existing permalink.
func (r *PatchNewsArticleRequest) Apply(m *model.NewsArticleModel) error {
	if r.NewsArticleTitle != nil {
		m.NewsArticleTitle = strings.TrimSpace(*r.NewsArticleTitle)
	}
	if r.NewsArticleCategoryID != nil {
		m.NewsArticleCategoryID = *r.NewsArticleCategoryID
	}
	if r.NewsArticleAuthor != nil {
		m.NewsArticleAuthor = strings.TrimSpace(*r.NewsArticleAuthor)
	}
	if r.NewsArticleImageURL != nil {
		m.NewsArticleImageURL = trimPtr(r.NewsArticleImageURL)
	}
	if r.NewsArticleContent != nil {
		m.NewsArticleContent = *r.NewsArticleContent
	}
	if r.NewsArticleStatus != nil {
		m.NewsArticleStatus = model.ArticleStatus(*r.NewsArticleStatus)
	}
	if pub, err := parseRFC3339Ptr(r.NewsArticlePublishedDate); err != nil {
		return err
	} else if pub != nil {
		m.NewsArticlePublishedDate = *pub
	}
	return nil
}

/* =========================================================
   RESPONSE
========================================================= */

type NewsArticleResponse struct {
	NewsArticleID            uuid.UUID `json:"news_article_id"`
	NewsArticleTitle         string    `json:"news_article_title"`
	NewsArticleSlug          string    `json:"news_article_slug"`
	NewsArticleCategoryID    uuid.UUID `json:"news_article_category_id"`
	NewsArticleCategoryName  string    `json:"news_article_category_name,omitempty"`
	NewsArticleCategorySlug  string    `json:"news_article_category_slug,omitempty"`
	NewsArticleAuthor        string    `json:"news_article_author"`
	NewsArticleImageURL      *string   `json:"news_article_image_url,omitempty"`
	NewsArticleContent       string    `json:"news_article_content"`
	NewsArticleStatus        string    `json:"news_article_status"`
	NewsArticlePublishedDate time.Time `json:"news_article_published_date"`
	NewsArticleReadTime      int       `json:"news_article_read_time"`
}

func FromModelNewsArticle(m *model.NewsArticleModel) NewsArticleResponse {
	resp := NewsArticleResponse{
		NewsArticleID:            m.NewsArticleID,
		NewsArticleTitle:         m.NewsArticleTitle,
		NewsArticleSlug:          m.NewsArticleSlug,
		NewsArticleCategoryID:    m.NewsArticleCategoryID,
		NewsArticleAuthor:        m.NewsArticleAuthor,
		NewsArticleImageURL:      m.NewsArticleImageURL,
		NewsArticleContent:       m.NewsArticleContent,
		NewsArticleStatus:        string(m.NewsArticleStatus),
		NewsArticlePublishedDate: m.NewsArticlePublishedDate,
		NewsArticleReadTime:      m.NewsArticleReadTime,
	}
	if m.Category != nil {
		resp.NewsArticleCategoryName = m.Category.CategoryName
		resp.NewsArticleCategorySlug = m.Category.CategorySlug
	}
	return resp
}

func FromModelNewsArticles(rows []model.NewsArticleModel) []NewsArticleResponse {
	out := make([]NewsArticleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModelNewsArticle(&rows[i]))
	}
	return out
}
