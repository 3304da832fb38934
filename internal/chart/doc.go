// Package chart builds the demonstration line chart as a renderer-agnostic
// element tree (Scene) and tracks pointer interaction for its tooltip. The ui
// package mirrors the scene into Fyne canvas objects and the export package
// draws it through go-chart renderers.
package chart
