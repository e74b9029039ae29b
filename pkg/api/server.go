package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skystack/console/pkg/api/handlers"
	"github.com/skystack/console/pkg/auth"
	"github.com/skystack/console/pkg/catalog"
	"github.com/skystack/console/pkg/config"
	"github.com/skystack/console/pkg/database"
	"github.com/skystack/console/pkg/database/repositories"
	"github.com/skystack/console/pkg/tasks"
)

// Server represents the API server
type Server struct {
	config     *config.Config
	db         *database.DB
	jwtManager *auth.JWTManager
	router     *gin.Engine
	httpServer *http.Server

	sessionHandlers  *handlers.SessionHandlers
	catalogHandlers  *handlers.CatalogHandlers
	quoteHandlers    *handlers.QuoteHandlers
	resourceHandlers *handlers.ResourceHandlers
	domainHandlers   *handlers.DomainHandlers
	firewallHandlers *handlers.FirewallHandlers
	vpcHandlers      *handlers.VPCHandlers
}

// NewServer creates a new API server instance
func NewServer(cfg *config.Config, db *database.DB, authSvc *auth.Service, jwtManager *auth.JWTManager, cat *catalog.Catalog, runner *tasks.Runner) *Server {
	server := &Server{
		config:     cfg,
		db:         db,
		jwtManager: jwtManager,

		sessionHandlers: handlers.NewSessionHandlers(authSvc),
		catalogHandlers: handlers.NewCatalogHandlers(cat),
		quoteHandlers:   handlers.NewQuoteHandlers(cat),
		resourceHandlers: handlers.NewResourceHandlers(
			repositories.NewResourceRepository(db.DB),
			cat,
			runner,
			cfg.Simulate.ProvisionDelay,
			cfg.Simulate.UpgradeDelay,
		),
		domainHandlers:   handlers.NewDomainHandlers(repositories.NewDomainRepository(db.DB)),
		firewallHandlers: handlers.NewFirewallHandlers(repositories.NewFirewallRepository(db.DB)),
		vpcHandlers:      handlers.NewVPCHandlers(repositories.NewVPCRepository(db.DB), cat),
	}

	// Configure gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	s.router = gin.New()

	// Global middleware
	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
	s.router.Use(s.corsMiddleware())
	s.router.Use(s.errorHandlerMiddleware())

	// Health endpoints
	s.router.GET("/health", s.healthHandler)
	s.router.GET("/ready", s.readinessHandler)

	v1 := s.router.Group("/api/v1")
	{
		// Public endpoints (no authentication required)
		v1.POST("/sessions", s.sessionHandlers.CreateSession)
		v1.GET("/catalog", s.catalogHandlers.GetCatalog)

		// Protected endpoints (authentication required)
		protected := v1.Group("/")
		protected.Use(auth.JWTMiddleware(s.jwtManager))
		{
			protected.POST("/quotes", s.quoteHandlers.CreateQuote)

			protected.POST("/resources", s.resourceHandlers.CreateResource)
			protected.GET("/resources", s.resourceHandlers.ListResources)
			protected.GET("/resources/:resource_id", s.resourceHandlers.GetResource)
			protected.POST("/resources/:resource_id/upgrade", s.resourceHandlers.UpgradeResource)
			protected.POST("/resources/:resource_id/resize", s.resourceHandlers.ResizeResource)
			protected.DELETE("/resources/:resource_id", s.resourceHandlers.DeleteResource)

			protected.POST("/domains", s.domainHandlers.CreateDomain)
			protected.GET("/domains", s.domainHandlers.ListDomains)
			protected.GET("/domains/:domain_id", s.domainHandlers.GetDomain)
			protected.DELETE("/domains/:domain_id", s.domainHandlers.DeleteDomain)
			protected.POST("/domains/:domain_id/records", s.domainHandlers.CreateRecord)
			protected.GET("/domains/:domain_id/records", s.domainHandlers.ListRecords)
			protected.PATCH("/dns-records/:record_id", s.domainHandlers.UpdateRecord)
			protected.DELETE("/dns-records/:record_id", s.domainHandlers.DeleteRecord)

			protected.POST("/firewall-groups", s.firewallHandlers.CreateGroup)
			protected.GET("/firewall-groups", s.firewallHandlers.ListGroups)
			protected.GET("/firewall-groups/:group_id", s.firewallHandlers.GetGroup)
			protected.DELETE("/firewall-groups/:group_id", s.firewallHandlers.DeleteGroup)
			protected.POST("/firewall-groups/:group_id/rules", s.firewallHandlers.CreateRule)
			protected.GET("/firewall-groups/:group_id/rules", s.firewallHandlers.ListRules)
			protected.PATCH("/firewall-rules/:rule_id", s.firewallHandlers.UpdateRule)
			protected.DELETE("/firewall-rules/:rule_id", s.firewallHandlers.DeleteRule)

			protected.POST("/vpcs", s.vpcHandlers.CreateVPC)
			protected.GET("/vpcs", s.vpcHandlers.ListVPCs)
			protected.GET("/vpcs/:vpc_id", s.vpcHandlers.GetVPC)
			protected.DELETE("/vpcs/:vpc_id", s.vpcHandlers.DeleteVPC)
			protected.POST("/vpcs/:vpc_id/routes", s.vpcHandlers.CreateRoute)
			protected.GET("/vpcs/:vpc_id/routes", s.vpcHandlers.ListRoutes)
			protected.PATCH("/vpc-routes/:route_id", s.vpcHandlers.UpdateRoute)
			protected.DELETE("/vpc-routes/:route_id", s.vpcHandlers.DeleteRoute)
		}
	}
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	sqlDB, err := s.db.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	address := fmt.Sprintf(":%d", s.config.API.Port)
	log.Printf("Starting API server on %s", address)

	s.httpServer = &http.Server{
		Addr:         address,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if s.config.API.TLSCert != "" && s.config.API.TLSKey != "" {
		// Verify TLS certificate and key files exist and are readable
		if _, err := os.Stat(s.config.API.TLSCert); err != nil {
			log.Printf("TLS certificate file not found or unreadable: %v", err)
			return fmt.Errorf("TLS certificate file error: %w", err)
		}
		if _, err := os.Stat(s.config.API.TLSKey); err != nil {
			log.Printf("TLS key file not found or unreadable: %v", err)
			return fmt.Errorf("TLS key file error: %w", err)
		}

		log.Println("Starting HTTPS server")
		return s.httpServer.ListenAndServeTLS(s.config.API.TLSCert, s.config.API.TLSKey)
	}

	log.Println("Starting HTTP server")
	return s.httpServer.ListenAndServe()
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	log.Println("Shutting down API server...")
	return s.httpServer.Shutdown(ctx)
}

// GetRouter returns the gin router (useful for testing)
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
