package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type healthResponse struct {
	Status            string    `json:"status"`
	StorageConfigured bool      `json:"storage_configured"`
	Timestamp         time.Time `json:"timestamp"`
}

func handleHealth(storageConfigured bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, healthResponse{
			Status:            "healthy",
			StorageConfigured: storageConfigured,
			Timestamp:         time.Now().UTC(),
		})
	}
}
