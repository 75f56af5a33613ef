package service

import (
	"github.com/MKhiriev/fleet-tracker/internal/adapter"
	"github.com/MKhiriev/fleet-tracker/internal/logger"
	"github.com/MKhiriev/fleet-tracker/internal/store"
)

type ClientServices struct {
	AuthService   ClientAuthService
	ReportService ClientReportService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:   NewClientAuthService(serverAdapter, logger),
		ReportService: NewClientReportService(serverAdapter, storages.ReportRepository, logger),
	}
}
