package tui

import "github.com/MKhiriev/go-entry-keeper/models"

type pageLoadedMsg struct {
	err error
}

type entrySavedMsg struct {
	err error
}

type entryDeletedMsg struct {
	err error
}

type entryFetchedMsg struct {
	entry models.Entry
	err   error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
