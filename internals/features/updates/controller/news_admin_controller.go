// file: internals/features/updates/controller/news_admin_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "bhanjyang_backend/internals/features/updates/dto"
	model "bhanjyang_backend/internals/features/updates/model"
	helper "bhanjyang_backend/internals/helpers"
)

/* ==============================
   Admin: news articles
============================== */

// POST /news - create (always a draft)
func (ctl *UpdatesController) CreateArticle(c *fiber.Ctx) error {
	var req dto.CreateNewsArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Slug uniqueness is enforced by the store; collisions are rejected as-is
	// rather than auto-suffixed.
	if err := ctl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug already in use")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown category")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Article created", dto.FromModelNewsArticle(m))
}

// GET /news - admin list, drafts included. Optional ?status=DF|PB filter.
func (ctl *UpdatesController) ListArticles(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&model.NewsArticleModel{})

	if s := strings.TrimSpace(c.Query("status")); s != "" {
		st := model.ArticleStatus(strings.ToUpper(s))
		if !st.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status must be DF or PB")
		}
		q = q.Where("news_article_status = ?", st)
	}
	if cid := strings.TrimSpace(c.Query("category_id")); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "category_id is not a valid UUID")
		}
		q = q.Where("news_article_category_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count articles")
	}

	page := helper.ClampPage(helper.ResolvePage(c), helper.TotalPages(total, newsPerPage))

	var rows []model.NewsArticleModel
	if err := q.Preload("Category").
		Order("news_article_published_date DESC").
		Limit(newsPerPage).
		Offset((page - 1) * newsPerPage).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load articles")
	}

	return helper.JsonList(c, "ok", dto.FromModelNewsArticles(rows),
		helper.BuildPaginationFromPage(total, page, newsPerPage))
}

// GET /news/:id
func (ctl *UpdatesController) GetArticleByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.NewsArticleModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Category").
		First(&row, "news_article_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Article not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.FromModelNewsArticle(&row))
}

// PATCH /news/:id - partial update; also the only way to move DF↔PB
func (ctl *UpdatesController) PatchArticle(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.NewsArticleModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&row, "news_article_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Article not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var body dto.PatchNewsArticleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	if err := body.Apply(&row); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Save (not Updates) so BeforeSave recomputes read_time from the new content
	if err := ctl.DB.WithContext(c.Context()).Save(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Slug already in use")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown category")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Article updated", dto.FromModelNewsArticle(&row))
}

// DELETE /news/:id
func (ctl *UpdatesController) DeleteArticle(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctl.DB.WithContext(c.Context()).Delete(&model.NewsArticleModel{}, "news_article_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Article not found")
	}
	return helper.JsonDeleted(c, "Article deleted", fiber.Map{"news_article_id": id})
}
