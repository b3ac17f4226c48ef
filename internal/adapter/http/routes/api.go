package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	PathPublic        = "/public/organizations/:slug"
	PathOrganizations = "/organizations"
	PathOrganization  = "/organizations/:org_id"
	PathAssessment    = "/assessments/:assessment_id"
	PathAdmin         = "/admin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

// addPublicRoutes serves the booking page. Catalog and estimate previews are
// anonymous; booking itself needs a signed-in customer.
func addPublicRoutes(rg *gin.RouterGroup, h Handlers) {
	public := rg.Group(PathPublic)
	{
		public.GET("", h.Booking.Catalog)
		public.POST("/estimate", h.Booking.Estimate)
		public.POST("/assessments", h.Booking.Book)
	}
}

func addOrganizationRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.POST(PathOrganizations, h.Organizations.Create)

	org := rg.Group(PathOrganization)
	{
		org.POST("/estimates", h.Estimates.Calculate)

		org.POST("/clients", h.Clients.Create)
		org.GET("/clients", h.Clients.List)
		org.GET("/clients/:client_id", h.Clients.Get)

		org.POST("/services", h.Catalog.CreateService)
		org.GET("/services", h.Catalog.ListServices)
		org.POST("/modifiers", h.Catalog.CreateModifier)
		org.GET("/modifiers", h.Catalog.ListModifiers)

		org.POST("/assessments", h.Assessments.Create)
		org.GET("/assessments", h.Assessments.List)
	}
}

func addAssessmentRoutes(rg *gin.RouterGroup, h Handlers) {
	assessment := rg.Group(PathAssessment)
	{
		assessment.GET("", h.Assessments.Get)
		assessment.PATCH("/status", h.Assessments.UpdateStatus)
		assessment.DELETE("", h.Assessments.Delete)

		assessment.POST("/payments", h.Payments.Create)
		assessment.GET("/payments", h.Payments.List)
		assessment.GET("/payments/latest", h.Payments.Latest)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h Handlers) {
	admin := rg.Group(PathAdmin)
	{
		admin.GET("/assessments", h.Assessments.ListAll)
	}
}
