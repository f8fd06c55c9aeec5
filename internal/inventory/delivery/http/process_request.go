package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"inventory-service/internal/inventory"
)

const photoField = "photo"

// bindBody binds JSON, urlencoded or multipart bodies into obj.
// An empty body leaves obj untouched.
func bindBody(c *gin.Context, obj any) error {
	err := c.ShouldBindWith(obj, binding.Default(c.Request.Method, c.ContentType()))
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return errBadRequest
	}
	return nil
}

// processRegisterReq binds the register form and opens the optional photo.
// The returned closer must be called once the request is handled.
func (h *handler) processRegisterReq(c *gin.Context) (registerReq, func(), error) {
	var req registerReq
	if err := bindBody(c, &req); err != nil {
		return req, noop, err
	}

	upload, closer, err := h.openUpload(c)
	if err != nil {
		return req, noop, err
	}
	req.Photo = upload
	return req, closer, nil
}

// processUpdateReq binds the partial update body and the id URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, ok := parseID(c.Param("id"))
	if !ok {
		return req, errNotFound
	}
	if err := bindBody(c, &req); err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}

// processUpdatePhotoReq reads the id URI param and opens the uploaded photo, if any.
func (h *handler) processUpdatePhotoReq(c *gin.Context) (inventory.UpdatePhotoInput, func(), error) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		return inventory.UpdatePhotoInput{}, noop, errNotFound
	}

	upload, closer, err := h.openUpload(c)
	if err != nil {
		return inventory.UpdatePhotoInput{}, noop, err
	}
	return inventory.UpdatePhotoInput{ID: id, Photo: upload}, closer, nil
}

// processSearchReq binds the search form. A missing or non-integer id is a miss.
func (h *handler) processSearchReq(c *gin.Context) (inventory.SearchInput, error) {
	var req searchReq
	if err := bindBody(c, &req); err != nil {
		return inventory.SearchInput{}, err
	}
	input, ok := req.toInput()
	if !ok {
		return inventory.SearchInput{}, errNotFound
	}
	return input, nil
}

func (h *handler) processHelloReq(c *gin.Context) (helloReq, error) {
	var req helloReq
	if err := bindBody(c, &req); err != nil {
		return req, err
	}
	if req.Name == "" {
		req.Name = "World"
	}
	return req, nil
}

// openUpload returns the "photo" part of a multipart request, or nil when
// the request carries no such file.
func (h *handler) openUpload(c *gin.Context) (*inventory.Upload, func(), error) {
	if !strings.HasPrefix(c.ContentType(), binding.MIMEMultipartPOSTForm) {
		return nil, noop, nil
	}

	fh, err := c.FormFile(photoField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, errBadRequest
	}

	f, err := fh.Open()
	if err != nil {
		h.l.Errorf(c.Request.Context(), "openUpload: %v", err)
		return nil, noop, err
	}
	return &inventory.Upload{Filename: fh.Filename, Content: f}, closeFile(f), nil
}

func closeFile(f multipart.File) func() {
	return func() { f.Close() }
}

func noop() {}
