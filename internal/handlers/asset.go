package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"rentdesk/internal/models"
	"rentdesk/internal/service"
	"rentdesk/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AssetHandler struct {
	Store     *store.Store
	Assets    *service.AssetService
	UploadDir string
}

func NewAssetHandler(st *store.Store, svc *service.AssetService, uploadDir string) *AssetHandler {
	return &AssetHandler{Store: st, Assets: svc, UploadDir: uploadDir}
}

func (h *AssetHandler) List(c *gin.Context) {
	filter := store.AssetFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   models.AssetStatus(c.Query("status")),
	}

	assets, err := h.Store.ListAssets(c.Request.Context(), filter)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load assets")
		return
	}
	categories, err := h.Store.AssetCategories(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load categories")
		return
	}

	render(c, http.StatusOK, "assets_list.html", gin.H{
		"assets":     assets,
		"categories": categories,
		"search":     filter.Search,
		"category":   filter.Category,
		"status":     string(filter.Status),
	})
}

func (h *AssetHandler) View(c *gin.Context) {
	asset, err := h.Store.FindAsset(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.String(httpStatus(err), "Asset not found")
		return
	}
	render(c, http.StatusOK, "asset_detail.html", gin.H{"asset": asset})
}

func (h *AssetHandler) ShowNew(c *gin.Context) {
	render(c, http.StatusOK, "asset_form.html", gin.H{"error": ""})
}

func (h *AssetHandler) Create(c *gin.Context) {
	in, err := h.bindAssetForm(c)
	if err != nil {
		render(c, http.StatusBadRequest, "asset_form.html", gin.H{"error": err.Error()})
		return
	}

	if _, err := h.Assets.CreateAsset(c.Request.Context(), in); err != nil {
		render(c, httpStatus(err), "asset_form.html", gin.H{"error": err.Error()})
		return
	}
	c.Redirect(http.StatusFound, "/assets")
}

func (h *AssetHandler) ShowEdit(c *gin.Context) {
	asset, err := h.Store.FindAsset(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.String(httpStatus(err), "Asset not found")
		return
	}
	render(c, http.StatusOK, "asset_form.html", gin.H{"asset": asset, "error": ""})
}

func (h *AssetHandler) Update(c *gin.Context) {
	id := c.Param("id")

	in, err := h.bindAssetForm(c)
	if err != nil {
		render(c, http.StatusBadRequest, "asset_form.html", gin.H{"error": err.Error()})
		return
	}
	in.Status = models.AssetStatus(strings.TrimSpace(c.PostForm("status")))

	if _, err := h.Assets.UpdateAsset(c.Request.Context(), id, in); err != nil {
		asset, _ := h.Store.FindAsset(c.Request.Context(), id)
		render(c, httpStatus(err), "asset_form.html", gin.H{"asset": asset, "error": err.Error()})
		return
	}
	c.Redirect(http.StatusFound, "/assets")
}

func (h *AssetHandler) Delete(c *gin.Context) {
	if err := h.Assets.DeleteAsset(c.Request.Context(), c.Param("id")); err != nil {
		c.String(httpStatus(err), err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/assets")
}

// bindAssetForm reads the shared create/edit form fields. The image upload
// is optional; when present it is stored under the upload dir with a
// uuid-prefixed name and only the path travels further.
func (h *AssetHandler) bindAssetForm(c *gin.Context) (service.AssetInput, error) {
	in := service.AssetInput{
		Name:        c.PostForm("name"),
		Code:        c.PostForm("code"),
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
	}

	qtyStr := strings.TrimSpace(c.PostForm("quantity"))
	if qtyStr != "" {
		qty, err := strconv.Atoi(qtyStr)
		if err != nil {
			return in, fmt.Errorf("quantity must be a number: %w", service.ErrValidation)
		}
		in.Quantity = qty
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		name := uuid.NewString() + "_" + filepath.Base(file.Filename)
		dst := filepath.Join(h.UploadDir, name)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			return in, err
		}
		in.ImagePath = dst
	}

	return in, nil
}
