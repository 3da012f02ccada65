// cmd/invoice/main.go
package main

import (
	"log"

	"invoice-service/internal/api/handlers"
	"invoice-service/internal/api/responses"
	"invoice-service/internal/config"
	"invoice-service/internal/core/generator"

	"github.com/gin-gonic/gin"
)

func main() {
	responses.InitLogger()

	cfg := config.Load()
	invoiceService := generator.NewService()
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, cfg)

	router := gin.Default()

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/invoices/master", invoiceHandler.HandleMasterExport)
		apiV1.POST("/invoices/commercial", invoiceHandler.HandleCommercialExport)
		apiV1.POST("/invoices/complete", invoiceHandler.HandleCompleteExport)
		apiV1.POST("/invoices/summary", invoiceHandler.HandleSummary)
		apiV1.GET("/defaults", invoiceHandler.HandleDefaults)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP", "service": "invoice-service"})
	})

	log.Printf("Invoice service listening on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start invoice service: ", err)
	}
}
