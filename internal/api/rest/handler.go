package rest

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strconv"

	"github.com/VladPetriv/listings_api/internal/models"
	"github.com/VladPetriv/listings_api/internal/service"
	"github.com/VladPetriv/listings_api/pkg/errs"
	"github.com/VladPetriv/listings_api/pkg/logger"
	"github.com/valyala/fasthttp"
)

var (
	errInvalidItemID   = errs.New("item id must be an integer")
	errInvalidUpload   = errs.New("invalid image upload")
	errMissingPathName = errs.New("image name is required")
)

type handler struct {
	services service.Services
	logger   *logger.Logger
	frontURL string
}

func (h *handler) root(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, messageResponse{Message: "Hello, world!"})
}

func (h *handler) listItems(ctx *fasthttp.RequestCtx) {
	items, err := h.services.Item.ListItems(ctx)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	response := itemsResponse{
		Items: make([]itemResponse, 0, len(items)),
	}
	for _, item := range items {
		response.Items = append(response.Items, toItemResponse(item))
	}

	writeJSON(ctx, fasthttp.StatusOK, response)
}

func (h *handler) getItem(ctx *fasthttp.RequestCtx) {
	rawID, _ := ctx.UserValue("id").(string)

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.writeError(ctx, errInvalidItemID)
		return
	}

	item, err := h.services.Item.GetItem(ctx, id)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, toItemResponse(*item))
}

func (h *handler) createItem(ctx *fasthttp.RequestCtx) {
	image, err := uploadedImage(ctx)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	item, err := h.services.Item.CreateItem(ctx, service.CreateItemOptions{
		Name:     string(ctx.FormValue("name")),
		Category: string(ctx.FormValue("category")),
		Image:    image,
	})
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, messageResponse{
		Message: fmt.Sprintf("Item received: %s, Category: %s", item.Name, item.Category),
	})
}

func (h *handler) getImage(ctx *fasthttp.RequestCtx) {
	name, _ := ctx.UserValue("name").(string)
	if name == "" {
		h.writeError(ctx, errMissingPathName)
		return
	}

	image, err := h.services.Image.GetImage(ctx, name)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType(mime.TypeByExtension(filepath.Ext(image.Name)))
	ctx.SetBody(image.Data)
}

// uploadedImage returns the optional "image" file of a multipart form.
// Urlencoded submissions carry no image.
func uploadedImage(ctx *fasthttp.RequestCtx) (*service.UploadedImage, error) {
	header, err := ctx.FormFile("image")
	if err != nil {
		if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
			return nil, nil
		}
		return nil, errInvalidUpload
	}
	if header == nil {
		return nil, nil
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded image: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read uploaded image: %w", err)
	}

	return &service.UploadedImage{
		Filename: header.Filename,
		Data:     data,
	}, nil
}

func toItemResponse(item models.Item) itemResponse {
	return itemResponse{
		ID:       item.ID,
		Name:     item.Name,
		Category: item.Category,
		Image:    item.Image,
	}
}
