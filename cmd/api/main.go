package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/storedeskapps/barcode-register/internal/config"
	dbpkg "github.com/storedeskapps/barcode-register/internal/db"
	"github.com/storedeskapps/barcode-register/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	defer dbpkg.Close(db)

	r := gin.Default()

	r.LoadHTMLGlob("web/templates/*.html")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
