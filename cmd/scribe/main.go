package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hubastard/scribe/engine/core"
	glbackend "github.com/hubastard/scribe/engine/gfx/gl"
	"github.com/hubastard/scribe/engine/platform"
)

func main() {
	configPath := flag.String("config", "scribe.toml", "TOML config file; missing means defaults")
	file := flag.String("file", "", "file to open (overrides editor.file)")
	flag.Parse()

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *file != "" {
		cfg.Editor.File = *file
	}

	log, err := core.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	var win *platform.GLFWWindow
	newWindow := func(cfg core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(cfg, log, nil)
		if err != nil {
			return nil, err
		}
		win = w
		return w, nil
	}
	newRenderer := func(win core.Window, _ core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, log)
	}

	err = core.Run(&App{}, cfg, log, newWindow, newRenderer)
	if win != nil {
		win.Destroy()
	}
	if err != nil {
		log.Fatal("run", zap.Error(err))
	}
}
