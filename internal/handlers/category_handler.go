package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// CreateCategory handles category creation
// @Summary Create category
// @Description Create a new spending category for the authenticated user
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse "Category created"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 409 {object} errors.ErrorResponse "Duplicate name - CATEGORY_002"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.CreateCategory(userID, &req)
	if err != nil {
		return h.mapCategoryError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// GetCategories lists the authenticated user's categories
// @Summary List categories
// @Description Retrieve all of the authenticated user's categories ordered by name
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.CategoryResponse "Categories"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /categories [get]
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	categories, err := h.categoryService.GetCategories(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}

// GetCategory retrieves a single category
// @Summary Get category
// @Description Retrieve one of the authenticated user's categories by ID
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse "Category"
// @Failure 404 {object} errors.ErrorResponse "Not found - CATEGORY_001"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, apierrors.CategoryNotFound)
	}

	category, err := h.categoryService.GetCategory(id, userID)
	if err != nil {
		return h.mapCategoryError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// UpdateCategory applies a partial update to a category
// @Summary Update category
// @Description Update name, description or color of one of the authenticated user's categories
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} dto.CategoryResponse "Updated category"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 404 {object} errors.ErrorResponse "Not found - CATEGORY_001"
// @Failure 409 {object} errors.ErrorResponse "Duplicate name - CATEGORY_002"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, apierrors.CategoryNotFound)
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.UpdateCategory(id, userID, &req)
	if err != nil {
		return h.mapCategoryError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// DeleteCategory removes a category
// @Summary Delete category
// @Description Delete one of the authenticated user's categories. Fails if any transaction still references it.
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} SuccessResponse "Category deleted"
// @Failure 404 {object} errors.ErrorResponse "Not found - CATEGORY_001"
// @Failure 409 {object} errors.ErrorResponse "Category in use - CATEGORY_003"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001"
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, apierrors.CategoryNotFound)
	}

	if err := h.categoryService.DeleteCategory(id, userID); err != nil {
		return h.mapCategoryError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Category deleted successfully",
	})
}

// mapCategoryError translates service and repository sentinels into the
// standardized error responses
func (h *CategoryHandler) mapCategoryError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repositories.ErrCategoryNotFound):
		return SendError(c, apierrors.CategoryNotFound)
	case errors.Is(err, repositories.ErrCategoryInUse):
		return SendError(c, apierrors.CategoryInUse)
	case errors.Is(err, services.ErrDuplicateCategoryName):
		return SendError(c, apierrors.CategoryDuplicateName)
	case isValidationError(err):
		return sendValidationError(c, err)
	default:
		return SendSystemError(c, err)
	}
}
