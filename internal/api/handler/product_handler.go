package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storekit/storefront-api/internal/api/metrics"
	"github.com/storekit/storefront-api/internal/core/ports"
)

// ProductHandler serves the token-authenticated product API.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /api/products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        q         query     string  false  "Search term (title or description)"
// @Param        category  query     string  false  "Exact category filter"
// @Param        sort      query     string  false  "Sort column (title, price, created_at, category)"
// @Param        dir       query     string  false  "Sort direction (asc or desc)"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Page size, capped at 100"
// @Success      200       {object}  productListResponse
// @Failure      401       {object}  map[string]string
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	filter := ports.ListProductsFilter{
		Search:   c.QueryParam("q"),
		Category: c.QueryParam("category"),
		Sort:     c.QueryParam("sort"),
		Dir:      c.QueryParam("dir"),
		Page:     page,
		Limit:    limit,
	}

	products, total, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	perPage := ports.ClampLimit(limit)
	currentPage := ports.ClampPage(page)
	lastPage := (total + int64(perPage) - 1) / int64(perPage)

	return c.JSON(http.StatusOK, productListResponse{
		Data: products,
		Meta: productListMeta{
			Total:       total,
			PerPage:     perPage,
			CurrentPage: currentPage,
			LastPage:    lastPage,
		},
	})
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	product, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /api/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product fields"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	input := ports.CreateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}
	if req.Price != nil {
		input.Price = *req.Price
	}

	id, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createdResponse{ID: id, Message: "Product created"})
}

// Update handles PUT /api/products/:id.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	changed, err := h.service.Update(c.Request().Context(), id, ports.UpdateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}

	msg := "No changes applied"
	if changed {
		msg = "Product updated"
	}
	return c.JSON(http.StatusOK, messageResponse{Message: msg})
}

// Delete handles DELETE /api/products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Product deleted"})
}
