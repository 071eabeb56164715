// file: internals/features/updates/controller/news_user_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bhanjyang_backend/internals/features/updates/dto"
	model "bhanjyang_backend/internals/features/updates/model"
	helper "bhanjyang_backend/internals/helpers"
)

// publishedOnly is the visibility predicate for every public read path.
// Status is the only gate; a future published_date is still visible.
func publishedOnly(db *gorm.DB) *gorm.DB {
	return db.Where("news_article_status = ?", model.ArticleStatusPublished)
}

// GET /updates - homepage context: latest news, upcoming events, categories
func (ctl *UpdatesController) Home(c *fiber.Ctx) error {
	var articles []model.NewsArticleModel
	if err := publishedOnly(ctl.DB.WithContext(c.Context()).Model(&model.NewsArticleModel{})).
		Preload("Category").
		Order("news_article_published_date DESC").
		Limit(homeNewsLimit).
		Find(&articles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load news")
	}

	var events []model.EventModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("event_date >= ?", time.Now()).
		Order("event_date ASC").
		Limit(homeEventLimit).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}

	var categories []model.CategoryModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("category_name ASC").
		Find(&categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load categories")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"news_articles":   dto.FromModelNewsArticles(articles),
		"upcoming_events": dto.FromModelEvents(events),
		"categories":      dto.FromModelCategories(categories),
	})
}

// GET /updates/news - all published articles, paginated
func (ctl *UpdatesController) ListAllNews(c *fiber.Ctx) error {
	return ctl.listPublished(c, nil, "All News Articles")
}

// GET /updates/news/category/:category_slug - category-scoped, paginated
func (ctl *UpdatesController) ListNewsByCategory(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("category_slug"))

	var cat model.CategoryModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&cat, "category_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load category")
	}

	return ctl.listPublished(c, &cat, `News in "`+cat.CategoryName+`"`)
}

// listPublished is the shared paginated list over published articles,
// optionally scoped to one category. Out-of-range pages clamp.
func (ctl *UpdatesController) listPublished(c *fiber.Ctx, cat *model.CategoryModel, title string) error {
	q := publishedOnly(ctl.DB.WithContext(c.Context()).Model(&model.NewsArticleModel{}))
	if cat != nil {
		q = q.Where("news_article_category_id = ?", cat.CategoryID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count news")
	}

	page := helper.ClampPage(helper.ResolvePage(c), helper.TotalPages(total, newsPerPage))

	var rows []model.NewsArticleModel
	if err := q.Preload("Category").
		Order("news_article_published_date DESC").
		Limit(newsPerPage).
		Offset((page - 1) * newsPerPage).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load news")
	}

	body := fiber.Map{"page_title": title}
	if cat != nil {
		body["category"] = dto.FromModelCategory(cat)
	}
	body["articles"] = dto.FromModelNewsArticles(rows)

	return helper.JsonList(c, "ok", body, helper.BuildPaginationFromPage(total, page, newsPerPage))
}

// GET /updates/news/:slug - published detail with up to 2 related articles.
// Drafts are never resolvable here.
func (ctl *UpdatesController) GetNewsBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))

	var row model.NewsArticleModel
	if err := publishedOnly(ctl.DB.WithContext(c.Context())).
		Preload("Category").
		First(&row, "news_article_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Article not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load article")
	}

	var related []model.NewsArticleModel
	if err := publishedOnly(ctl.DB.WithContext(c.Context()).Model(&model.NewsArticleModel{})).
		Where("news_article_category_id = ? AND news_article_id <> ?", row.NewsArticleCategoryID, row.NewsArticleID).
		Limit(relatedLimit).
		Find(&related).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load related articles")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"article":          dto.FromModelNewsArticle(&row),
		"related_articles": dto.FromModelNewsArticles(related),
	})
}
