package router

import (
	"github.com/autenticco/backend/internal/domain/identity"
	"github.com/autenticco/backend/internal/interfaces/http/handler"
	"github.com/autenticco/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers are the API handlers mounted by RegisterAPI
type Handlers struct {
	Auth      *handler.AuthHandler
	Cars      *handler.CarHandler
	Finance   *handler.FinanceHandler
	Marketing *handler.MarketingHandler
	Reports   *handler.ReportHandler
	Print     *handler.PrintHandler
	Identity  *handler.IdentityHandler
}

// Guards are the per-route middleware. Authenticate is required; the others
// may be nil.
type Guards struct {
	Authenticate gin.HandlerFunc
	// PublicForms throttles anonymous submissions and login attempts
	PublicForms gin.HandlerFunc
	// Upload replaces the global body limit on image uploads
	Upload gin.HandlerFunc
}

func (g Guards) with(h ...gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(h))
	for _, fn := range h {
		if fn != nil {
			out = append(out, fn)
		}
	}
	return out
}

func read(resource string) gin.HandlerFunc {
	return middleware.RequirePermission(resource + ":" + identity.ActionRead)
}

// RegisterAPI mounts the storefront, auth and back-office routes on r
func RegisterAPI(r *Router, h Handlers, g Guards) {
	public := NewDomainGroup("public", "/public")
	public.GET("/cars", h.Cars.ListPublic)
	public.GET("/cars/:slug", h.Cars.GetPublic)
	public.GET("/testimonials", h.Marketing.ListPublishedTestimonials)
	public.POST("/leads", append(g.with(g.PublicForms), h.Marketing.SubmitLead)...)
	public.POST("/testimonials", append(g.with(g.PublicForms), h.Marketing.SubmitTestimonial)...)

	authGroup := NewDomainGroup("auth", "/auth")
	authGroup.POST("/login", append(g.with(g.PublicForms), h.Auth.Login)...)
	authGroup.POST("/refresh", h.Auth.Refresh)
	authGroup.POST("/logout", g.Authenticate, h.Auth.Logout)
	authGroup.GET("/me", g.Authenticate, h.Auth.Me)

	cars := NewDomainGroup("cars", "/cars").Use(g.Authenticate)
	stock := cars.Group("stock", "").Use(middleware.RequireResource(identity.ResourceCars))
	stock.GET("", h.Cars.List)
	stock.POST("", h.Cars.Create)
	stock.GET("/:id", h.Cars.Get)
	stock.PUT("/:id", h.Cars.Update)
	stock.POST("/:id/sold", h.Cars.MarkSold)
	stock.POST("/:id/delivered", h.Cars.MarkDelivered)
	stock.PATCH("/:id/availability", h.Cars.SetAvailability)
	stock.POST("/:id/images", append(g.with(g.Upload), h.Cars.UploadImage)...)

	// printing only reads the car
	prints := cars.Group("print", "/:id/print").Use(read(identity.ResourceCars))
	prints.GET("/checklist", h.Print.Checklist)
	prints.POST("/quote", h.Print.Quote)

	// the profit preview computes without saving
	carFinance := cars.Group("car-finance", "/:id/finance")
	carFinance.GET("", read(identity.ResourceFinance), h.Finance.GetCarFinance)
	carFinance.POST("/preview", read(identity.ResourceFinance), h.Finance.PreviewProfit)
	carFinance.PUT("", middleware.RequireResource(identity.ResourceFinance), h.Finance.SaveFinance)

	finance := NewDomainGroup("finance", "").
		Use(g.Authenticate, middleware.RequireResource(identity.ResourceFinance))
	finance.GET("/publications", h.Finance.ListPublications)
	finance.POST("/publications", h.Finance.CreatePublication)
	finance.DELETE("/publications/:id", h.Finance.DeletePublication)
	finance.GET("/expenses", h.Finance.ListExpenses)
	finance.POST("/expenses", h.Finance.CreateExpense)
	finance.DELETE("/expenses/:id", h.Finance.DeleteExpense)
	finance.GET("/sales", h.Finance.ListSales)
	finance.POST("/sales", h.Finance.RegisterSale)

	reports := NewDomainGroup("reports", "/reports").
		Use(g.Authenticate, middleware.RequireResource(identity.ResourceReports))
	reports.GET("/dashboard", h.Reports.Dashboard)
	reports.GET("/dashboard/export", h.Reports.Export)
	reports.GET("/monthly-sales", h.Reports.MonthlySales)

	platforms := NewDomainGroup("platforms", "/platforms").
		Use(g.Authenticate, middleware.RequireResource(identity.ResourcePlatforms))
	platforms.GET("", h.Marketing.ListPlatforms)
	platforms.POST("", h.Marketing.CreatePlatform)
	platforms.PUT("/:id", h.Marketing.UpdatePlatform)
	platforms.DELETE("/:id", h.Marketing.DeletePlatform)

	leads := NewDomainGroup("leads", "/leads").
		Use(g.Authenticate, middleware.RequireResource(identity.ResourceLeads))
	leads.GET("", h.Marketing.ListLeads)
	leads.PATCH("/:id/status", h.Marketing.UpdateLeadStatus)

	testimonials := NewDomainGroup("testimonials", "/testimonials").
		Use(g.Authenticate, middleware.RequireResource(identity.ResourceTestimonials))
	testimonials.GET("", h.Marketing.ListTestimonials)
	testimonials.POST("/:id/publish", h.Marketing.PublishTestimonial)
	testimonials.POST("/:id/unpublish", h.Marketing.UnpublishTestimonial)
	testimonials.DELETE("/:id", h.Marketing.DeleteTestimonial)

	users := NewDomainGroup("users", "/users").
		Use(g.Authenticate, middleware.RequireResource(identity.ResourceUsers))
	users.GET("", h.Identity.ListUsers)
	users.POST("", h.Identity.CreateUser)
	users.PUT("/:id/role", h.Identity.SetUserRole)
	users.POST("/:id/activate", h.Identity.ActivateUser)
	users.POST("/:id/deactivate", h.Identity.DeactivateUser)

	roles := NewDomainGroup("roles", "/roles").
		Use(g.Authenticate, middleware.RequireResource(identity.ResourceRoles))
	roles.GET("", h.Identity.ListRoles)
	roles.GET("/permissions", h.Identity.ListPermissions)
	roles.POST("", h.Identity.CreateRole)
	roles.PUT("/:id", h.Identity.UpdateRole)
	roles.DELETE("/:id", h.Identity.DeleteRole)

	r.Register(public, authGroup, cars, finance, reports, platforms, leads, testimonials, users, roles)
}
