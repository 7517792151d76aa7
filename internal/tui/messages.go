package tui

import "github.com/MKhiriev/render-status/models"

type snapshotMsg struct {
	snapshot models.Snapshot
}

type clearStatusMsg struct{}
