package ui

import (
	"errors"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"

	"github.com/ytget/graphdemo/internal/chart"
	"github.com/ytget/graphdemo/internal/style"
)

var (
	// ErrNilHost is returned when Initialize gets no host container
	ErrNilHost = errors.New("chart host container is nil")
	// ErrAlreadyInitialized is returned when the host already holds a chart
	ErrAlreadyInitialized = errors.New("chart already initialized in host")
)

// RenderedChart is the handle returned by Initialize
type RenderedChart struct {
	ID      string
	Scene   *chart.Scene
	Surface *Surface
	Tooltip *TooltipOverlay
	Tracker *chart.Tracker

	host *fyne.Container
}

// Initialize builds the chart described by cfg and appends exactly one
// drawing surface and one tooltip overlay to host. A nil sheet selects the
// embedded stylesheet. A host that already holds a surface is rejected.
func Initialize(host *fyne.Container, cfg chart.Config, sheet *style.Sheet) (*RenderedChart, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	for _, obj := range host.Objects {
		if _, ok := obj.(*Surface); ok {
			log.Printf("Chart initialization rejected: host already holds a surface")
			return nil, ErrAlreadyInitialized
		}
	}
	if sheet == nil {
		sheet = style.Default()
	}

	scene, err := chart.Build(cfg)
	if err != nil {
		return nil, fmt.Errorf("build chart: %w", err)
	}

	tracker := chart.NewTracker(scene)
	surface := NewSurface(scene, sheet, tracker)
	surface.Move(fyne.NewPos(0, 0))
	surface.Resize(surface.MinSize())

	tooltip := NewTooltipOverlay(sheet)
	tracker.OnChange(tooltip.Apply)

	host.Add(surface)
	host.Add(tooltip)

	rc := &RenderedChart{
		ID:      generateChartID(),
		Scene:   scene,
		Surface: surface,
		Tooltip: tooltip,
		Tracker: tracker,
		host:    host,
	}
	log.Printf("Chart %s initialized: %.0fx%.0f, %d lines bound to tooltip", rc.ID, scene.Width, scene.Height, tracker.Targets())
	return rc, nil
}

// Teardown removes the surface and the overlay from the host so that it
// can be initialized again. Calling it twice is a no-op.
func (rc *RenderedChart) Teardown() {
	if rc.host == nil {
		return
	}
	rc.Tracker.Exit()
	rc.host.Remove(rc.Surface)
	rc.host.Remove(rc.Tooltip)
	rc.host = nil
	log.Printf("Chart %s torn down", rc.ID)
}

// generateChartID returns a UUID v7, falling back to a timestamp
func generateChartID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("chart_%d", time.Now().UnixNano())
	}
	return id.String()
}
