package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/storedeskapps/barcode-register/internal/audit"
	"github.com/storedeskapps/barcode-register/internal/config"
	"github.com/storedeskapps/barcode-register/internal/handlers"
	"github.com/storedeskapps/barcode-register/internal/imagestore"
	infraRepo "github.com/storedeskapps/barcode-register/internal/infra/repository"
	"github.com/storedeskapps/barcode-register/internal/middleware"
	ucScanning "github.com/storedeskapps/barcode-register/internal/usecase/scanning"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scanningRepo := infraRepo.NewScanningGormRepository(db)

	images := newImageStore(r, cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	submitScanUC := ucScanning.NewSubmitScan(scanningRepo, images, auditDispatcher)
	deleteScanUC := ucScanning.NewDeleteScan(scanningRepo, images, auditDispatcher)
	deleteCustomerUC := ucScanning.NewDeleteCustomer(scanningRepo, images, auditDispatcher)

	submitRecordUC := ucScanning.NewSubmitRecord(scanningRepo, images, auditDispatcher)
	deleteRecordUC := ucScanning.NewDeleteRecord(scanningRepo, images, auditDispatcher)

	listCustomersUC := ucScanning.NewListCustomers(scanningRepo)
	listScansUC := ucScanning.NewListScans(scanningRepo)
	listRecordsUC := ucScanning.NewListRecords(scanningRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	scanHandler := handlers.NewScanHandler(submitScanUC, deleteScanUC)
	recordHandler := handlers.NewRecordHandler(submitRecordUC, deleteRecordUC, listRecordsUC)
	customerHandler := handlers.NewCustomerHandler(listCustomersUC, listScansUC, deleteCustomerUC)
	webHandler := handlers.NewWebHandler(listCustomersUC, listScansUC, images)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// ROTAS WEB (HTML)
	// ======================================================
	r.GET("/", webHandler.Home)
	r.GET("/scans/:customerId", webHandler.ScansFragment)

	r.POST("/scan", scanHandler.Submit)
	r.GET("/delete-scan/:id", scanHandler.Delete)

	r.POST("/add", recordHandler.Add)
	r.GET("/delete/:id", recordHandler.Delete)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/customers", customerHandler.List)
		api.GET("/customers/:id/scans", customerHandler.ListScans)
		api.DELETE("/customers/:id", customerHandler.Delete)

		api.GET("/records", recordHandler.List)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}

func newImageStore(r *gin.Engine, cfg *config.Config) imagestore.Store {
	if cfg.ImageStore == "s3" {
		return imagestore.NewS3(cfg)
	}

	disk, err := imagestore.NewDisk(cfg.ImageDir)
	if err != nil {
		log.Fatalf("failed to prepare image directory: %v", err)
	}

	r.Static("/images", disk.Dir())
	return disk
}
