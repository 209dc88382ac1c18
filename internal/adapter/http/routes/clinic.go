package routes

import (
	"meditrack_pro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDashboard = "/dashboard"
	PathPatients  = "/patients"
	PathRecords   = "/records"
	PathCharges   = "/charges"
	PathCalendar  = "/calendar"
	PathAssistant = "/assistant"
	PathCaptures  = "/captures"
)

type clinicHandlers struct {
	dashboard *handlers.DashboardHandler
	patients  *handlers.PatientHandler
	records   *handlers.BillingRecordHandler
	charges   *handlers.ChargeHandler
	calendar  *handlers.CalendarHandler
	assistant *handlers.AssistantHandler
	captures  *handlers.CaptureHandler
}

func addClinicRoutes(rg *gin.RouterGroup, h clinicHandlers) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/stats", h.dashboard.GetStats)
		dashboard.GET("/ai-summary", h.dashboard.GetAISummary)
	}

	patients := rg.Group(PathPatients)
	{
		patients.GET("", h.patients.List)
		patients.GET("/export", h.patients.Export)
		patients.GET("/:id", h.patients.GetByID)
		patients.GET("/:id/analysis", h.patients.Analyze)
		patients.GET("/:id/follow-up", h.patients.SuggestFollowUp)
		patients.GET("/:id/share", h.patients.ShareText)
	}

	records := rg.Group(PathRecords)
	{
		records.GET("", h.records.List)
		records.GET("/summary", h.records.Summary)
		records.GET("/export", h.records.Export)
		records.POST("/:id/certificate", h.records.Certificate)
		// Cobrança do saldo em aberto via Mercado Pago.
		records.POST("/:id/charges", h.charges.ChargeOutstanding)
		records.GET("/:id/charges", h.charges.ListByRecord)
	}

	rg.GET(PathCharges+"/:id", h.charges.GetByID)
	rg.GET(PathCalendar, h.calendar.Month)
	rg.POST(PathAssistant+"/chat", h.assistant.Chat)

	captures := rg.Group(PathCaptures)
	{
		captures.POST("", h.captures.Create)
		captures.GET("", h.captures.List)
	}
}
