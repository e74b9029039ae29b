package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/skystack/console/pkg/catalog"
	"github.com/skystack/console/pkg/database/models"
	"github.com/skystack/console/pkg/database/repositories"
	"github.com/skystack/console/pkg/tasks"
)

const testDelay = 10 * time.Millisecond

type testEnv struct {
	router       *gin.Engine
	resourceRepo *repositories.ResourceRepository
	domainRepo   *repositories.DomainRepository
	runner       *tasks.Runner
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Resource{},
		&models.Domain{},
		&models.DNSRecord{},
		&models.FirewallGroup{},
		&models.FirewallRule{},
		&models.VPCNetwork{},
		&models.VPCRoute{},
	))

	cat := catalog.Default()
	resourceRepo := repositories.NewResourceRepository(db)
	domainRepo := repositories.NewDomainRepository(db)
	runner := tasks.NewRunner()

	resourceHandlers := NewResourceHandlers(resourceRepo, cat, runner, testDelay, testDelay)
	domainHandlers := NewDomainHandlers(domainRepo)
	quoteHandlers := NewQuoteHandlers(cat)

	router := gin.New()
	router.POST("/quotes", quoteHandlers.CreateQuote)
	router.POST("/resources", resourceHandlers.CreateResource)
	router.GET("/resources", resourceHandlers.ListResources)
	router.GET("/resources/:resource_id", resourceHandlers.GetResource)
	router.POST("/resources/:resource_id/upgrade", resourceHandlers.UpgradeResource)
	router.POST("/resources/:resource_id/resize", resourceHandlers.ResizeResource)
	router.DELETE("/resources/:resource_id", resourceHandlers.DeleteResource)
	router.POST("/domains", domainHandlers.CreateDomain)
	router.GET("/domains/:domain_id", domainHandlers.GetDomain)
	router.DELETE("/domains/:domain_id", domainHandlers.DeleteDomain)
	router.POST("/domains/:domain_id/records", domainHandlers.CreateRecord)

	return &testEnv{
		router:       router,
		resourceRepo: resourceRepo,
		domainRepo:   domainRepo,
		runner:       runner,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func instancePayload() map[string]interface{} {
	return map[string]interface{}{
		"kind":         "instance",
		"name":         "web-1",
		"category":     "all",
		"plan_id":      "voc-c-1c-2gb-50s",
		"image_tab":    "os",
		"image_id":     "ubuntu-24-04",
		"quantity":     1,
		"location_ids": []string{"ewr"},
		"features":     map[string]bool{"backups": true},
	}
}
