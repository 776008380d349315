package main

import (
	"fmt"
	"os"

	"github.com/ytget/quickplay/internal/app"
	"github.com/ytget/quickplay/internal/config"
	"github.com/ytget/quickplay/internal/hotkey"
	"github.com/ytget/quickplay/internal/logging"
	"github.com/ytget/quickplay/internal/player"
	"github.com/ytget/quickplay/internal/selection"
	"github.com/ytget/quickplay/internal/tray"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppName = "QuickPlay"

func main() {
	settings := config.NewSettings()
	logging.Setup(settings.LogLevel())

	fmt.Printf("%s v%s starting...\n", AppName, version)
	fmt.Println("Ctrl+Space or Ctrl+Enter previews the video selected in your file manager.")
	fmt.Println("Up/Down switch files, Escape or Ctrl+Space closes the preview.")

	// Initialize services
	launcher := player.NewLauncher(settings)
	probe := selection.New(settings)
	listener := hotkey.NewListener()

	a := app.New(launcher, probe, listener)
	a.SetTray(tray.New(version, a.TogglePreview, a.RevealCurrent, a.Quit))

	if _, err := launcher.Locate(); err != nil {
		for _, line := range player.InstallHints() {
			fmt.Println(line)
		}
	}

	if err := a.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s failed to start: %v\n", AppName, err)
		os.Exit(1)
	}
}
