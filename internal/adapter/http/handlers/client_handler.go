package handlers

import (
	"net/http"
	"strings"

	request "detailshop/internal/adapter/http/dto/request"
	response "detailshop/internal/adapter/http/dto/response"
	"detailshop/internal/domain/auth"
	"detailshop/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// Create godoc
// @Summary  Create a client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    org_id  path  string                       true  "Organization ID"
// @Param    body    body  request.ClientCreateRequest  true  "Client"
// @Success  201  {object}  response.ClientResponse
// @Security Bearer
// @Router   /organizations/{org_id}/clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var payload request.ClientCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	ctx := c.Request.Context()
	created, err := h.usecase.Create(ctx, auth.FromContext(ctx), payload.ToCommand(c.Param("org_id")))
	if err != nil {
		abortWithError(c, "client", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(created))
}

// List godoc
// @Summary  List or search clients
// @Tags     clients
// @Produce  json
// @Param    org_id  path   string  true   "Organization ID"
// @Param    q       query  string  false  "Name prefix (at most 10 matches)"
// @Success  200  {array}  response.ClientResponse
// @Security Bearer
// @Router   /organizations/{org_id}/clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	ac := auth.FromContext(ctx)
	orgID := c.Param("org_id")

	if q, ok := c.GetQuery("q"); ok && strings.TrimSpace(q) != "" {
		found, err := h.usecase.SearchByName(ctx, ac, orgID, q)
		if err != nil {
			abortWithError(c, "client", err)
			return
		}
		c.JSON(http.StatusOK, response.FromClients(found))
		return
	}

	list, err := h.usecase.ListByOrg(ctx, ac, orgID)
	if err != nil {
		abortWithError(c, "client", err)
		return
	}
	c.JSON(http.StatusOK, response.FromClients(list))
}

// Get godoc
// @Summary  Get a client
// @Tags     clients
// @Produce  json
// @Param    org_id     path  string  true  "Organization ID"
// @Param    client_id  path  string  true  "Client ID"
// @Success  200  {object}  response.ClientResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /organizations/{org_id}/clients/{client_id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	client, err := h.usecase.GetByID(ctx, auth.FromContext(ctx), c.Param("client_id"))
	if err != nil {
		abortWithError(c, "client", err)
		return
	}
	if client.OrgID != c.Param("org_id") {
		abortWithError(c, "client", usecase.ErrClientNotFound)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}
