// Command glxsnap renders one frame of a demo scene on the CPU and writes
// it as WebP, PNG or TGA.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"glxform/internal/config"
	"glxform/internal/demo"
	"glxform/internal/softgl"
)

// frameStep is the update interval used to advance a scene to -time.
const frameStep = 1.0 / 60

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	demoName := flag.String("demo", "", "Scene to render: "+strings.Join(demo.Names(), ", "))
	output := flag.String("out", "", "Output image (.webp, .png, .tga; default: <demo>.webp)")
	at := flag.Float64("time", -1, "Scene time in seconds, 0 for the initial pose (default: 1)")
	width := flag.Int("width", 0, "Image width (default: 800)")
	height := flag.Int("height", 0, "Image height (default: 600)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	wire := flag.Bool("wire", false, "Draw wireframe")
	list := flag.Bool("list", false, "List scenes and exit")
	flag.Parse()

	if *list {
		for _, n := range demo.Names() {
			fmt.Println(n)
		}
		return
	}

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	flags := config.Flags{
		Width:       *width,
		Height:      *height,
		Demo:        *demoName,
		Output:      *output,
		Supersample: *supersample,
		Wireframe:   *wire,
	}
	if *at >= 0 {
		flags.Time = at
	}
	cfg.Resolve(flags)

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	format, err := softgl.FormatFromPath(cfg.Output)
	if err != nil {
		return err
	}

	scene, err := demo.Lookup(cfg.Demo)
	if err != nil {
		return err
	}

	w, h := cfg.Width*cfg.Supersample, cfg.Height*cfg.Supersample
	if err := scene.Resize(w, h); err != nil {
		return err
	}
	end := 0.0
	if cfg.Time != nil {
		end = *cfg.Time
	}
	for t := 0.0; t < end; t += frameStep {
		dt := min(frameStep, end-t)
		if err := scene.Update(t+dt, dt); err != nil {
			log.Printf("%s: %v", scene.Name(), err)
		}
	}

	canvas := softgl.NewCanvas(w, h)
	canvas.Clear(color.RGBA{26, 26, 26, 255})
	st := softgl.RenderScene(canvas, scene, softgl.Options{Wireframe: cfg.Wireframe})
	log.Printf("%s: %s (%d drawn, %d clipped)", scene.Name(), scene.Info(), st.Drawn, st.Clipped)

	img := softgl.Downsample(canvas.Img, cfg.Width, cfg.Height)

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := softgl.Encode(f, img, format); err != nil {
		return err
	}
	return f.Close()
}
