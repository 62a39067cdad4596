package main

import (
	"log"

	"colcacchio-dashboard/config"
	httpapi "colcacchio-dashboard/internal/api/http"
	"colcacchio-dashboard/internal/service"
	"colcacchio-dashboard/internal/storage"
)

func main() {
	cfg := config.Load()

	source := storage.NewFileSource(cfg.ExtractPath, cfg.StoresPath)
	dashboard := service.NewDashboardService(source)

	// Build the dataset eagerly so a bad extract fails at startup instead
	// of on the first request.
	data, err := dashboard.Data()
	if err != nil {
		log.Fatal("Failed to load dashboard data:", err)
	}
	log.Printf("Loaded %d stores from %s", len(data.Stores), cfg.ExtractPath)

	handler := httpapi.NewHandler(dashboard, service.DefaultQRGenerator{})
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+cfg.Port, router)
}
