// Command virtgpu-demo renders a procedural mesh through the virtual
// GPU with the Phong method and writes the result as a PNG.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/virtgpu/virtgpu/gpu"
	"github.com/virtgpu/virtgpu/internal/config"
	"github.com/virtgpu/virtgpu/internal/procmesh"
	"github.com/virtgpu/virtgpu/linear"
	"github.com/virtgpu/virtgpu/method/phong"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath, outPath string
	var width, height uint32

	cmd := &cobra.Command{
		Use:   "virtgpu-demo",
		Short: "Render a procedural mesh with the virtual GPU and write a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				cfg, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("width") {
				cfg.Width = width
			}
			if cmd.Flags().Changed("height") {
				cfg.Height = height
			}
			return run(cfg, outPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML configuration file")
	cmd.Flags().StringVar(&outPath, "out", "out.png", "output PNG path")
	cmd.Flags().Uint32Var(&width, "width", 0, "override the configured output width")
	cmd.Flags().Uint32Var(&height, "height", 0, "override the configured output height")
	return cmd
}

func run(cfg config.Config, outPath string) error {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	g := gpu.New()
	g.SetLogger(log)
	g.CreateFramebuffer(cfg.Width, cfg.Height)
	g.Clear(0.1, 0.1, 0.12, 1)

	mesh := procmesh.Icosphere(2)
	m := phong.New(g, mesh.Vertices, mesh.Indices)
	defer m.Close()

	var proj linear.M4
	aspect := float32(cfg.Width) / float32(cfg.Height)
	proj.Perspective(0.9, aspect, 0.1, 100)

	camera := linear.V3{cfg.Camera.X, cfg.Camera.Y, cfg.Camera.Z}
	origin := linear.V3{0, 0, 0}
	up := linear.V3{0, 1, 0}
	var view linear.M4
	view.LookAt(&camera, &origin, &up)

	light := linear.V3{cfg.Light.X, cfg.Light.Y, cfg.Light.Z}

	log.Info().Uint32("width", cfg.Width).Uint32("height", cfg.Height).Msg("rendering")
	if err := m.Draw(proj, view, light, camera); err != nil {
		return fmt.Errorf("draw: %w", err)
	}

	img := toImage(g)
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", outPath, err)
	}
	log.Info().Str("path", outPath).Msg("wrote image")
	return nil
}

// toImage copies the GPU's RGBA8 color plane, which is stored bottom
// row first, into a top-row-first image.RGBA.
func toImage(g *gpu.GPU) *image.RGBA {
	w, h := int(g.FramebufferWidth()), int(g.FramebufferHeight())
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	src := g.FramebufferColor()
	for y := 0; y < h; y++ {
		srcRow := src[(h-1-y)*w*4 : (h-y)*w*4]
		for x := 0; x < w; x++ {
			i := x * 4
			img.SetRGBA(x, y, color.RGBA{srcRow[i], srcRow[i+1], srcRow[i+2], srcRow[i+3]})
		}
	}
	return img
}
