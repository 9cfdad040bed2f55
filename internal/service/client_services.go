package service

import (
	"github.com/MKhiriev/go-entry-keeper/internal/adapter"
	"github.com/MKhiriev/go-entry-keeper/internal/logger"
)

type ClientServices struct {
	Fetcher ClientEntryFetcher
	Session ClientEntrySession
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	fetcher := NewClientEntryFetcher(serverAdapter, logger)

	return &ClientServices{
		Fetcher: fetcher,
		Session: NewClientEntrySession(fetcher, serverAdapter, logger),
	}
}
