package handlers

import (
	"net/http"

	request "detailshop/internal/adapter/http/dto/request"
	response "detailshop/internal/adapter/http/dto/response"
	"detailshop/internal/domain/auth"
	"detailshop/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OrganizationHandler struct {
	usecase usecase.IOrganizationUseCase
}

func NewOrganizationHandler(uc usecase.IOrganizationUseCase) *OrganizationHandler {
	return &OrganizationHandler{usecase: uc}
}

// Create godoc
// @Summary  Create an organization (admin)
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    body  body  request.OrganizationCreateRequest  true  "Organization"
// @Success  201  {object}  response.OrganizationResponse
// @Failure  409  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /organizations [post]
func (h *OrganizationHandler) Create(c *gin.Context) {
	var payload request.OrganizationCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	ctx := c.Request.Context()
	org, err := h.usecase.Create(ctx, auth.FromContext(ctx), payload.ToCommand())
	if err != nil {
		abortWithError(c, "organization", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrganization(org))
}

// BookingHandler serves the public booking page of an organization.
type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// Catalog godoc
// @Summary  Public booking catalog
// @Tags     booking
// @Produce  json
// @Param    slug  path  string  true  "Organization slug"
// @Success  200  {object}  response.BookingCatalogResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /public/organizations/{slug} [get]
func (h *BookingHandler) Catalog(c *gin.Context) {
	catalog, err := h.usecase.Catalog(c.Request.Context(), c.Param("slug"))
	if err != nil {
		abortWithError(c, "booking", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBookingCatalog(catalog))
}

// Estimate godoc
// @Summary  Public estimate preview
// @Tags     booking
// @Accept   json
// @Produce  json
// @Param    slug  path  string                   true  "Organization slug"
// @Param    body  body  request.EstimateRequest  true  "Selection"
// @Success  200  {object}  response.EstimateResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /public/organizations/{slug}/estimate [post]
func (h *BookingHandler) Estimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	serviceIDs, modifierIDs := payload.Selection()
	estimate, err := h.usecase.Estimate(c.Request.Context(), c.Param("slug"), serviceIDs, modifierIDs)
	if err != nil {
		abortWithError(c, "booking", err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// Book godoc
// @Summary  Book an assessment
// @Tags     booking
// @Accept   json
// @Produce  json
// @Param    slug  path  string                           true  "Organization slug"
// @Param    body  body  request.AssessmentCreateRequest  true  "Assessment"
// @Success  201  {object}  response.AssessmentResponse
// @Failure  401  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /public/organizations/{slug}/assessments [post]
func (h *BookingHandler) Book(c *gin.Context) {
	var payload request.AssessmentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	ctx := c.Request.Context()
	created, err := h.usecase.Book(ctx, auth.FromContext(ctx), c.Param("slug"), payload.ToCommand(""))
	if err != nil {
		abortWithError(c, "booking", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromAssessment(created))
}
