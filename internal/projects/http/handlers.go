package http

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tidewater-lab/site-backend/internal/projects/domain"
	"github.com/tidewater-lab/site-backend/internal/projects/images"
	"github.com/tidewater-lab/site-backend/internal/projects/service"
)

func (h *Handler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.List())
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	in := service.CreateInput{
		Title:        c.PostForm("title"),
		Summary:      c.PostForm("summary"),
		Date:         c.PostForm("date"),
		Results:      c.PostForm("results"),
		Purpose:      c.PostForm("purpose"),
		OutcomesText: c.PostForm("outcomes"),
		Files:        formFiles(c),
	}

	p, err := h.svc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) update(c *gin.Context) {
	in := service.UpdateInput{
		Title:        formField(c, "title"),
		Summary:      formField(c, "summary"),
		Date:         formField(c, "date"),
		Results:      formField(c, "results"),
		Purpose:      formField(c, "purpose"),
		OutcomesText: formField(c, "outcomes"),
		RemoveImages: images.ParseRemoveList(c.PostForm("removeImages")),
		MakePrimary:  c.PostForm("makePrimary"),
		Files:        formFiles(c),
	}

	p, err := h.svc.Update(c.Param("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	p, err := h.svc.Delete(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": p})
}

func (h *Handler) detailPage(c *gin.Context) {
	p, err := h.svc.Get(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Project not found")
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := h.pages.Render(c.Writer, p); err != nil {
		_ = c.Error(err)
	}
}

// formField reports a field only when it was actually present in the form,
// so partial updates never clobber absent fields.
func formField(c *gin.Context, key string) *string {
	if values, ok := c.GetPostFormArray(key); ok && len(values) > 0 {
		return &values[0]
	}
	return nil
}

// formFiles collects the uploaded batch under the "images" field. A request
// without a multipart body simply has no files.
func formFiles(c *gin.Context) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File["images"]
}
