// Package ui contains the Fyne-based desktop user interface for the application.
// It mounts the chart widget into a host container, mirrors the chart scene as
// canvas objects, drives the hover tooltip and exposes export and settings
// through the main menu. All UI strings are localized via Localization.
package ui
