package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/mattn/go-isatty"

	"soclicker/internal/config"
	_ "soclicker/internal/game" // Import game package to register the Start implementation
	"soclicker/internal/log"
	"soclicker/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	// Set up global panic handler first
	defer func() {
		if r := recover(); r != nil {
			log.Error("GLOBAL PANIC recovered", "error", r, "stack", string(debug.Stack()))
			fmt.Fprintf(os.Stderr, "soclicker crashed. See the debug log for details.\n")
			code = 1
		}
	}()

	// Optional config path as the only argument
	configPath := config.DefaultFile
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return 1
	}

	if err := log.SetFileOutput(cfg.LogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not configure debug logging to file: %v\n", err)
	}
	defer log.Close()
	log.Info("soclicker starting", "version", version, "commit", commit, "save", cfg.SavePath)

	// Check if we have a proper TTY
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println("soclicker")
		fmt.Println("This application requires a terminal/TTY to run properly.")
		return 1
	}

	app := tui.NewApplication(cfg)

	// Termination signals take the normal exit path so the final save runs
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signalChan)
	go func() {
		sig, ok := <-signalChan
		if !ok {
			return
		}
		log.Info("signal received, shutting down", "signal", sig.String())
		app.Stop()
	}()

	if err := app.Run(); err != nil {
		log.Error("application error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		return 1
	}
	log.Info("soclicker stopped")
	return 0
}
