package router

import (
	"github.com/gin-gonic/gin"

	"github.com/sitestock/backend/internal/interfaces/http/handler"
)

// Handlers collects every HTTP handler the router mounts.
type Handlers struct {
	System   *handler.SystemHandler
	Vendor   *handler.VendorHandler
	Movement *handler.MovementHandler
	Workflow *handler.WorkflowHandler
	BOQ      *handler.BOQHandler
	Master   *handler.MasterHandler
	Stock    *handler.StockHandler
	Report   *handler.ReportHandler
}

// Setup mounts all routes on the engine. The health probe sits outside the
// versioned API group so load balancers can hit it unauthenticated.
func Setup(engine *gin.Engine, h Handlers) {
	if err := handler.RegisterValidations(); err != nil {
		panic(err)
	}

	engine.GET("/health", h.System.Health)

	api := engine.Group("/api/v1")

	vendors := api.Group("/vendors")
	{
		vendors.GET("", h.Vendor.List)
		vendors.POST("", h.Vendor.Create)
		vendors.DELETE("/:name", h.Vendor.Delete)
	}

	api.GET("/inward", h.Movement.ListInward)
	api.POST("/inward", h.Movement.CreateInward)
	api.GET("/outward", h.Movement.ListOutward)
	api.POST("/outward", h.Movement.CreateOutward)
	api.GET("/returns", h.Movement.ListReturns)
	api.POST("/returns", h.Movement.CreateReturn)
	api.GET("/damage", h.Movement.ListDamage)
	api.POST("/damage", h.Movement.CreateDamage)

	indents := api.Group("/indents")
	{
		indents.GET("", h.Workflow.ListIndents)
		indents.POST("", h.Workflow.CreateIndent)
		indents.PATCH("/:number/status", h.Workflow.UpdateIndentStatus)
	}

	transfers := api.Group("/transfers")
	{
		transfers.GET("", h.Workflow.ListTransfers)
		transfers.POST("", h.Workflow.CreateTransfer)
		transfers.PATCH("/:number/status", h.Workflow.UpdateTransferStatus)
	}

	scrap := api.Group("/scrap")
	{
		scrap.GET("", h.Workflow.ListScrap)
		scrap.POST("", h.Workflow.CreateScrap)
		scrap.PATCH("/:number/status", h.Workflow.UpdateScrapStatus)
	}

	api.GET("/boq", h.BOQ.List)
	api.POST("/boq", h.BOQ.Create)

	masters := api.Group("/masters")
	{
		masters.GET("/materials", h.Master.ListMaterials)
		masters.POST("/materials", h.Master.CreateMaterial)
		masters.GET("/grades", h.Master.ListGrades)
		masters.POST("/grades", h.Master.CreateGrade)
		masters.POST("/seed", h.Master.Seed)
	}

	stock := api.Group("/stock")
	{
		stock.GET("/summary", h.Stock.Summary)
		stock.GET("/alerts", h.Stock.Alerts)
		stock.GET("/expiry", h.Stock.Expiry)
		stock.GET("/limits", h.Stock.ListLimits)
		stock.PUT("/limits", h.Stock.PutLimit)
		stock.GET("/reconciliation", h.Stock.ListReconciliation)
		stock.POST("/reconciliation", h.Stock.SubmitReconciliation)
		stock.POST("/snapshot", h.Stock.RefreshSnapshot)
		stock.GET("/closing", h.Stock.ListClosing)
		stock.POST("/closing", h.Stock.SaveClosing)
	}

	reports := api.Group("/reports")
	{
		reports.GET("/daily", h.Report.Daily)
		reports.GET("/monthly", h.Report.Monthly)
		reports.GET("/vendors", h.Report.Vendors)
		reports.GET("/materials", h.Report.Materials)
	}

	api.GET("/dashboard", h.Report.Dashboard)

	api.POST("/system/cache/clear", h.System.ClearCache)
}
