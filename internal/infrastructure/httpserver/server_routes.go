package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api/v1")

	// Public auth surface; brute-force sensitive endpoints carry their own
	// tighter policies on top of the global default.
	auth := api.Group("/auth")
	auth.POST("/register", s.register, s.middleware.RateLimit.Limit("register", s.rateLimitCfg.Register))
	auth.POST("/login", s.login, s.middleware.RateLimit.Limit("login", s.rateLimitCfg.Login))
	auth.POST("/refresh", s.refreshToken)
	auth.POST("/forgot-password", s.forgotPassword, s.middleware.RateLimit.Limit("forgot_password", s.rateLimitCfg.ForgotPassword))

	// Public catalog
	properties := api.Group("/properties")
	properties.GET("", s.listProperties)
	properties.GET("/featured", s.getFeaturedProperties)
	properties.GET("/stats", s.getPropertyStats)
	properties.GET("/slug/:slug", s.getPropertyBySlug)
	properties.GET("/:id", s.getProperty)

	// Public lead capture
	api.POST("/leads", s.createLead, s.middleware.RateLimit.Limit("lead_submission", s.rateLimitCfg.LeadSubmission))

	// Maps proxy keeps the Google API key server-side
	api.GET("/maps/geocode", s.geocode)
	api.GET("/maps/embed", s.mapEmbed)

	// Authenticated surface
	protected := api.Group("")
	protected.Use(s.middleware.JWT.RequireJWT())

	protected.POST("/auth/logout", s.logout)

	me := protected.Group("/me")
	me.GET("", s.getOwnProfile)
	me.PUT("", s.updateOwnProfile)
	me.POST("/password", s.changePassword)

	staff := protected.Group("", s.middleware.JWT.RequireStaff())

	staff.POST("/properties", s.createProperty)
	staff.PUT("/properties/:id", s.updateProperty)
	staff.PATCH("/properties/:id/availability", s.setPropertyAvailability)
	staff.DELETE("/properties/:id", s.deleteProperty)

	staff.GET("/leads", s.listLeads)
	staff.GET("/leads/stats", s.getLeadStats)
	staff.GET("/leads/funnel", s.getLeadFunnel)
	staff.GET("/leads/:id", s.getLead)
	staff.PUT("/leads/:id", s.updateLead)
	staff.PATCH("/leads/:id/status", s.updateLeadStatus)

	staff.POST("/bookings", s.createBooking)
	staff.GET("/bookings", s.listBookings)
	staff.GET("/bookings/:id", s.getBooking)
	staff.PUT("/bookings/:id", s.updateBooking)
	staff.POST("/bookings/:id/cancel", s.cancelBooking)
	staff.GET("/properties/:id/bookings", s.listPropertyBookings)

	staff.GET("/analytics/dashboard", s.getDashboard)
	staff.GET("/analytics/prices", s.getPriceDistribution)
	staff.GET("/analytics/availability", s.getAvailabilityRate)

	staff.GET("/reports/types", s.listReportTypes)
	staff.POST("/reports", s.generateReport)
	staff.POST("/reports/ask", s.askQuestion)
}
