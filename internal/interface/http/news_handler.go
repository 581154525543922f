package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-newsroom/internal/application"
	"github.com/oksasatya/go-newsroom/internal/domain/entity"
	"github.com/oksasatya/go-newsroom/internal/interface/middleware"
	"github.com/oksasatya/go-newsroom/pkg/helpers"
	"github.com/oksasatya/go-newsroom/pkg/response"
)

type NewsHandler struct {
	News     *application.NewsService
	Users    *application.UserService
	Notifier *Notifier
	Logger   logrus.FieldLogger
}

func NewNewsHandler(news *application.NewsService, users *application.UserService, notifier *Notifier, logger logrus.FieldLogger) *NewsHandler {
	return &NewsHandler{News: news, Users: users, Notifier: notifier, Logger: logger}
}

type createNewsRequest struct {
	Title    string `json:"title" binding:"required,min=3"`
	Body     string `json:"body" binding:"required,min=20"`
	Category string `json:"category" binding:"required,category"`
}

func (r *createNewsRequest) normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Body = strings.TrimSpace(r.Body)
	r.Category = strings.TrimSpace(r.Category)
}

type updateNewsRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=3"`
	Body     *string `json:"body" binding:"omitempty,min=20"`
	Category *string `json:"category" binding:"omitempty,category"`
}

func (r *updateNewsRequest) normalize() {
	trimPtr(r.Title)
	trimPtr(r.Body)
	trimPtr(r.Category)
}

func (r *updateNewsRequest) patch() application.NewsPatch {
	p := application.NewsPatch{Title: r.Title, Body: r.Body}
	if r.Category != nil {
		cat := entity.Category(*r.Category)
		p.Category = &cat
	}
	return p
}

type commentRequest struct {
	Body string `json:"body" binding:"required,min=1"`
}

func (r *commentRequest) normalize() {
	r.Body = strings.TrimSpace(r.Body)
}

// List returns news newest first, optionally filtered by ?category=.
func (h *NewsHandler) List(c *gin.Context) {
	category := entity.Category(strings.TrimSpace(c.Query("category")))
	if category != "" && category != entity.CategoryAll && !category.Valid() {
		response.Fail(c, http.StatusBadRequest, "unknown category", nil)
		return
	}
	items, err := h.News.ListNews(c.Request.Context(), category)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.List(c, items, "ok")
}

func (h *NewsHandler) Search(c *gin.Context) {
	items, err := h.News.SearchNews(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.List(c, items, "ok")
}

func (h *NewsHandler) Create(c *gin.Context) {
	var req createNewsRequest
	if !bind(c, &req) {
		return
	}
	claims := middleware.ClaimsFrom(c)
	n, err := h.News.CreateNews(c.Request.Context(), application.NewsInput{
		Title:    req.Title,
		Body:     req.Body,
		Category: entity.Category(req.Category),
	}, claims.UserID, claims.Name)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusCreated, n, "news created")
}

func (h *NewsHandler) Get(c *gin.Context) {
	n, err := h.News.GetNews(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, n, "ok")
}

func (h *NewsHandler) Update(c *gin.Context) {
	var req updateNewsRequest
	if !bind(c, &req) {
		return
	}
	n, err := h.News.UpdateNews(c.Request.Context(), c.Param("id"), req.patch(), middleware.ClaimsFrom(c).UserID)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, n, "news updated")
}

// Delete removes an item. Authors may delete their own items; admins may delete any.
func (h *NewsHandler) Delete(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	id := c.Param("id")
	var err error
	if claims.IsAdmin() {
		err = h.News.ForceDeleteNews(c.Request.Context(), id)
	} else {
		err = h.News.DeleteNews(c.Request.Context(), id, claims.UserID)
	}
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, gin.H{"id": id, "deleted": true}, "news deleted")
}

func (h *NewsHandler) AddComment(c *gin.Context) {
	var req commentRequest
	if !bind(c, &req) {
		return
	}
	claims := middleware.ClaimsFrom(c)
	n, err := h.News.AddComment(c.Request.Context(), c.Param("id"), req.Body, claims.UserID, claims.Name)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.notifyAuthor(c, n)
	response.OK(c, http.StatusOK, n, "comment added")
}

func (h *NewsHandler) notifyAuthor(c *gin.Context, n *entity.NewsItem) {
	if h.Notifier == nil || h.Notifier.Pub == nil || len(n.Comments) == 0 {
		return
	}
	author, err := h.Users.GetUser(c.Request.Context(), n.AuthorID)
	if err != nil {
		helpers.LogWarn(h.Logger, "comment notice: author lookup failed", err, logrus.Fields{"news_id": n.ID})
		return
	}
	h.Notifier.NewComment(c.Request.Context(), author, n, n.Comments[len(n.Comments)-1])
}
