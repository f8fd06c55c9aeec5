package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "inventory-service/pkg/errors"
	"inventory-service/pkg/response"
)

// Register godoc
// @Summary     Register a new item
// @Description Creates an inventory item. The photo is optional.
// @Tags        Inventory
// @Accept      multipart/form-data,application/x-www-form-urlencoded,json
// @Produce     plain
// @Param       inventory_name formData string true  "Item name"
// @Param       description    formData string false "Item description"
// @Param       photo          formData file   false "Item photo"
// @Success     201 {string} string "Created"
// @Failure     400 {string} string "Bad Request: Inventory name is required"
// @Failure     500 {string} string "Internal Server Error"
// @Router      /register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, closer, err := h.processRegisterReq(c)
	defer closer()
	if err != nil {
		h.fail(c, err)
		return
	}

	if _, err := h.uc.Register(ctx, req.toInput()); err != nil {
		h.fail(c, err)
		return
	}

	response.Text(c, http.StatusCreated, "Created")
}

// List godoc
// @Summary     List items
// @Description Returns every item with its photo link.
// @Tags        Inventory
// @Produce     json
// @Success     200 {array}  itemResp
// @Failure     500 {string} string "Internal Server Error"
// @Router      /inventory [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single item by its ID.
// @Tags        Inventory
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} itemResp
// @Failure     404 {string} string "Not Found"
// @Failure     500 {string} string "Internal Server Error"
// @Router      /inventory/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c.Param("id"))
	if !ok {
		h.fail(c, errNotFound)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.OK(c, newItemResp(output))
}

// Photo godoc
// @Summary     Get item photo
// @Tags        Inventory
// @Produce     jpeg
// @Param       id path int true "Item ID"
// @Success     200 {file}   file
// @Failure     404 {string} string "Not Found"
// @Router      /inventory/{id}/photo [GET]
func (h *handler) Photo(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c.Param("id"))
	if !ok {
		h.fail(c, errNotFound)
		return
	}

	output, err := h.uc.Photo(ctx, id)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Binary(c, response.ContentTypeJPEG, output.Content)
}

// UpdateFields godoc
// @Summary     Update an item
// @Description Changes name and/or description. Omitted fields keep their value.
// @Tags        Inventory
// @Accept      json,application/x-www-form-urlencoded
// @Produce     plain
// @Param       id             path     int    true  "Item ID"
// @Param       inventory_name formData string false "New name"
// @Param       description    formData string false "New description"
// @Success     200 {string} string "Updated"
// @Failure     400 {string} string "Bad Request: No fields to update"
// @Failure     404 {string} string "Not Found"
// @Router      /inventory/{id} [PUT]
func (h *handler) UpdateFields(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	if _, err := h.uc.UpdateFields(ctx, req.toInput()); err != nil {
		h.fail(c, err)
		return
	}

	response.Text(c, http.StatusOK, "Updated")
}

// UpdatePhoto godoc
// @Summary     Replace item photo
// @Tags        Inventory
// @Accept      multipart/form-data
// @Produce     plain
// @Param       id    path     int  true "Item ID"
// @Param       photo formData file true "New photo"
// @Success     200 {string} string "Photo updated"
// @Failure     400 {string} string "No photo uploaded"
// @Failure     404 {string} string "Not Found"
// @Router      /inventory/{id}/photo [PUT]
func (h *handler) UpdatePhoto(c *gin.Context) {
	ctx := c.Request.Context()

	input, closer, err := h.processUpdatePhotoReq(c)
	defer closer()
	if err != nil {
		h.fail(c, err)
		return
	}

	if _, err := h.uc.UpdatePhoto(ctx, input); err != nil {
		h.fail(c, err)
		return
	}

	response.Text(c, http.StatusOK, "Photo updated")
}

// Delete godoc
// @Summary     Delete an item
// @Tags        Inventory
// @Produce     plain
// @Param       id path int true "Item ID"
// @Success     200 {string} string "Deleted"
// @Failure     404 {string} string "Not Found"
// @Router      /inventory/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c.Param("id"))
	if !ok {
		h.fail(c, errNotFound)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.fail(c, err)
		return
	}

	response.Text(c, http.StatusOK, "Deleted")
}

// Search godoc
// @Summary     Search an item by id
// @Description With includePhoto checked the photo link is appended to the description.
// @Tags        Search
// @Accept      application/x-www-form-urlencoded,json
// @Produce     json
// @Param       id           formData int    true  "Item ID"
// @Param       includePhoto formData string false "'on' adds the photo link"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Message "Not Found"
// @Router      /search [POST]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processSearchReq(c)
	if err != nil {
		response.ErrorJSON(c, h.mapError(err))
		return
	}

	output, err := h.uc.Search(ctx, input)
	if err != nil {
		h.logUnmapped(c, err)
		response.ErrorJSON(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output))
}

// Hello godoc
// @Summary     Greet
// @Tags        Misc
// @Accept      json,application/x-www-form-urlencoded
// @Produce     plain
// @Param       name formData string false "Name to greet"
// @Success     200 {string} string "Hello World via POST!"
// @Router      /hello [POST]
func (h *handler) Hello(c *gin.Context) {
	req, err := h.processHelloReq(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Text(c, http.StatusOK, fmt.Sprintf("Hello %s via POST!", req.Name))
}

// fail writes a plain-text error response for err.
func (h *handler) fail(c *gin.Context, err error) {
	h.logUnmapped(c, err)
	response.Error(c, h.mapError(err))
}

// logUnmapped logs errors that end up as a 500.
func (h *handler) logUnmapped(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(h.mapError(err), &httpErr) {
		return
	}
	h.l.Errorf(c.Request.Context(), "http %s %s: %v", c.Request.Method, c.FullPath(), err)
}
