package handlers

import (
	"net/http"

	request "detailshop/internal/adapter/http/dto/request"
	response "detailshop/internal/adapter/http/dto/response"
	"detailshop/internal/domain/auth"
	"detailshop/internal/usecase"
	"detailshop/pkg"

	"github.com/gin-gonic/gin"
)

var errMissingPrice = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "unit_price is required", http.StatusBadRequest)

// CatalogHandler manages an organization's services and modifiers.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// CreateService godoc
// @Summary  Create a service
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    org_id  path  string                        true  "Organization ID"
// @Param    body    body  request.ServiceCreateRequest  true  "Service"
// @Success  201  {object}  response.ServiceResponse
// @Security Bearer
// @Router   /organizations/{org_id}/services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var payload request.ServiceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	if !payload.HasPrice() {
		abortWith(c, errMissingPrice)
		return
	}
	ctx := c.Request.Context()
	svc, err := h.usecase.CreateService(ctx, auth.FromContext(ctx), payload.ToCommand(c.Param("org_id")))
	if err != nil {
		abortWithError(c, "catalog", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromService(svc))
}

// ListServices godoc
// @Summary  List services
// @Tags     catalog
// @Produce  json
// @Param    org_id  path  string  true  "Organization ID"
// @Success  200  {array}  response.ServiceResponse
// @Security Bearer
// @Router   /organizations/{org_id}/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := h.usecase.ListServices(ctx, auth.FromContext(ctx), c.Param("org_id"))
	if err != nil {
		abortWithError(c, "catalog", err)
		return
	}
	c.JSON(http.StatusOK, response.FromServices(list))
}

// CreateModifier godoc
// @Summary  Create a modifier
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    org_id  path  string                         true  "Organization ID"
// @Param    body    body  request.ModifierCreateRequest  true  "Modifier"
// @Success  201  {object}  response.ModifierResponse
// @Security Bearer
// @Router   /organizations/{org_id}/modifiers [post]
func (h *CatalogHandler) CreateModifier(c *gin.Context) {
	var payload request.ModifierCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	if !payload.HasPrice() {
		abortWith(c, errMissingPrice)
		return
	}
	ctx := c.Request.Context()
	mod, err := h.usecase.CreateModifier(ctx, auth.FromContext(ctx), payload.ToCommand(c.Param("org_id")))
	if err != nil {
		abortWithError(c, "catalog", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromModifier(mod))
}

// ListModifiers godoc
// @Summary  List modifiers
// @Tags     catalog
// @Produce  json
// @Param    org_id  path  string  true  "Organization ID"
// @Success  200  {array}  response.ModifierResponse
// @Security Bearer
// @Router   /organizations/{org_id}/modifiers [get]
func (h *CatalogHandler) ListModifiers(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := h.usecase.ListModifiers(ctx, auth.FromContext(ctx), c.Param("org_id"))
	if err != nil {
		abortWithError(c, "catalog", err)
		return
	}
	c.JSON(http.StatusOK, response.FromModifiers(list))
}
