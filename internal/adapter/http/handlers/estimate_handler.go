package handlers

import (
	"net/http"

	request "detailshop/internal/adapter/http/dto/request"
	response "detailshop/internal/adapter/http/dto/response"
	"detailshop/internal/domain/auth"
	"detailshop/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstimateHandler prices a selection of services and modifiers for the
// dashboard. Public booking previews go through BookingHandler.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
	admin   auth.AdminPolicy
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, admin auth.AdminPolicy) *EstimateHandler {
	return &EstimateHandler{usecase: uc, admin: admin}
}

// Calculate godoc
// @Summary      Calculate an estimate
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        org_id  path  string                   true  "Organization ID"
// @Param        body    body  request.EstimateRequest  true  "Selection"
// @Success      200  {object}  response.EstimateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /organizations/{org_id}/estimates [post]
func (h *EstimateHandler) Calculate(c *gin.Context) {
	orgID := c.Param("org_id")
	ac := auth.FromContext(c.Request.Context())
	if !ac.IsAuthenticated() {
		abortWith(c, errUnauthenticated)
		return
	}
	if !ac.CanAccessOrg(orgID) && !h.admin.IsAdmin(ac) {
		abortWith(c, errForbidden)
		return
	}

	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	serviceIDs, modifierIDs := payload.Selection()

	estimate := h.usecase.Calculate(c.Request.Context(), orgID, serviceIDs, modifierIDs)
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}
