package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/graphdemo/internal/config"
	"github.com/ytget/graphdemo/internal/platform"
	"github.com/ytget/graphdemo/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.graphdemo"
	AppName = "Graph Demo"

	WindowWidth  = 620
	WindowHeight = 460
)

func main() {
	fmt.Printf("Graph Demo v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetExportDirectory()); err != nil {
		fmt.Printf("failed to ensure export dir: %v\n", err)
	}

	ui.NewRootUI(myWindow, myApp)

	myWindow.ShowAndRun()
}
