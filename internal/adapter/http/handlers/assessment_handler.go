package handlers

import (
	"log/slog"
	"net/http"
	"time"

	request "detailshop/internal/adapter/http/dto/request"
	response "detailshop/internal/adapter/http/dto/response"
	"detailshop/internal/domain/auth"
	"detailshop/internal/usecase"
	"detailshop/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRange = pkg.NewDomainErrorSimple("INVALID_RANGE", "start and end must both be RFC 3339 timestamps", http.StatusBadRequest)

type AssessmentHandler struct {
	usecase usecase.IAssessmentUseCase
}

func NewAssessmentHandler(uc usecase.IAssessmentUseCase) *AssessmentHandler {
	return &AssessmentHandler{usecase: uc}
}

// Create godoc
// @Summary      Create an assessment
// @Description  Resolves the client strictly (explicit id, then email, name and phone, then name) and snapshots the estimate.
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Param        org_id  path  string                           true  "Organization ID"
// @Param        body    body  request.AssessmentCreateRequest  true  "Assessment"
// @Success      201  {object}  response.AssessmentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /organizations/{org_id}/assessments [post]
func (h *AssessmentHandler) Create(c *gin.Context) {
	var payload request.AssessmentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	ctx := c.Request.Context()
	created, err := h.usecase.Create(ctx, auth.FromContext(ctx), payload.ToCommand(c.Param("org_id")))
	if err != nil {
		abortWithError(c, "assessment", err)
		return
	}
	slog.InfoContext(ctx, "[assessment][handler] created", "assessment_id", created.ID, "org_id", created.OrgID)
	c.JSON(http.StatusCreated, response.FromAssessment(created))
}

// List godoc
// @Summary      List assessments of an organization
// @Description  Newest first. With start and end, returns the calendar view of assessments scheduled in [start, end].
// @Tags         assessments
// @Produce      json
// @Param        org_id  path   string  true   "Organization ID"
// @Param        start   query  string  false  "RFC 3339 start"
// @Param        end     query  string  false  "RFC 3339 end"
// @Success      200  {array}  response.AssessmentResponse
// @Security     Bearer
// @Router       /organizations/{org_id}/assessments [get]
func (h *AssessmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	ac := auth.FromContext(ctx)
	orgID := c.Param("org_id")

	rawStart, rawEnd := c.Query("start"), c.Query("end")
	if rawStart == "" && rawEnd == "" {
		list, err := h.usecase.ListByOrg(ctx, ac, orgID)
		if err != nil {
			abortWithError(c, "assessment", err)
			return
		}
		c.JSON(http.StatusOK, response.FromAssessments(list))
		return
	}

	start, errStart := time.Parse(time.RFC3339, rawStart)
	end, errEnd := time.Parse(time.RFC3339, rawEnd)
	if errStart != nil || errEnd != nil {
		abortWith(c, errInvalidRange)
		return
	}
	list, err := h.usecase.ListInRange(ctx, ac, orgID, start, end)
	if err != nil {
		abortWithError(c, "assessment", err)
		return
	}
	c.JSON(http.StatusOK, response.FromAssessments(list))
}

// ListAll godoc
// @Summary  List every organization's assessments (admin)
// @Tags     admin
// @Produce  json
// @Success  200  {array}  response.AssessmentResponse
// @Failure  403  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /admin/assessments [get]
func (h *AssessmentHandler) ListAll(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := h.usecase.ListAll(ctx, auth.FromContext(ctx))
	if err != nil {
		abortWithError(c, "assessment", err)
		return
	}
	c.JSON(http.StatusOK, response.FromAssessments(list))
}

// Get godoc
// @Summary  Get an assessment
// @Tags     assessments
// @Produce  json
// @Param    assessment_id  path  string  true  "Assessment ID"
// @Success  200  {object}  response.AssessmentResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /assessments/{assessment_id} [get]
func (h *AssessmentHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	a, err := h.usecase.Get(ctx, auth.FromContext(ctx), c.Param("assessment_id"))
	if err != nil {
		abortWithError(c, "assessment", err)
		return
	}
	c.JSON(http.StatusOK, response.FromAssessment(a))
}

// UpdateStatus godoc
// @Summary  Change an assessment's status
// @Tags     assessments
// @Accept   json
// @Produce  json
// @Param    assessment_id  path  string                           true  "Assessment ID"
// @Param    body           body  request.AssessmentStatusRequest  true  "pending, reviewed, complete or cancelled"
// @Success  200  {object}  response.AssessmentResponse
// @Failure  400  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /assessments/{assessment_id}/status [patch]
func (h *AssessmentHandler) UpdateStatus(c *gin.Context) {
	var payload request.AssessmentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	ctx := c.Request.Context()
	a, err := h.usecase.UpdateStatus(ctx, auth.FromContext(ctx), c.Param("assessment_id"), payload.Status)
	if err != nil {
		abortWithError(c, "assessment", err)
		return
	}
	c.JSON(http.StatusOK, response.FromAssessment(a))
}

// Delete godoc
// @Summary  Delete an assessment
// @Tags     assessments
// @Param    assessment_id  path  string  true  "Assessment ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /assessments/{assessment_id} [delete]
func (h *AssessmentHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.usecase.Delete(ctx, auth.FromContext(ctx), c.Param("assessment_id")); err != nil {
		abortWithError(c, "assessment", err)
		return
	}
	c.Status(http.StatusNoContent)
}
