package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli"

	"github.com/skovert/go-pathrender/pkg/config"
	"github.com/skovert/go-pathrender/pkg/renderer"
	"github.com/skovert/go-pathrender/pkg/scene"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	app := cli.NewApp()
	app.Name = "go-pathrender"
	app.Usage = "render scenes using monte carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to a ppm image",
			Description: `
Render one of the built-in scenes with the configured camera. Settings may
come from a yaml config file (--config); explicit flags override file values.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene",
					Value: "default",
					Usage: "scene to render: 'default' or 'two-spheres'",
				},
				cli.StringFlag{
					Name:  "config",
					Usage: "yaml config file with camera and render settings",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width in pixels",
				},
				cli.Float64Flag{
					Name:  "aspect",
					Usage: "aspect ratio (width / height)",
				},
				cli.Float64Flag{
					Name:  "vfov",
					Usage: "vertical field of view in degrees",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "max-bounces",
					Usage: "maximum ray bounce depth",
				},
				cli.IntFlag{
					Name:  "threads",
					Usage: "number of render workers",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "base seed for the per-worker random generators",
				},
				cli.StringFlag{
					Name:  "out",
					Usage: "output file path",
				},
			},
			Action: renderScene,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("render failed")
	}
}

// zerologPrintf adapts the zerolog global logger to the renderer's Logger
type zerologPrintf struct{}

func (zerologPrintf) Printf(format string, args ...interface{}) {
	log.Info().Msgf(format, args...)
}

func renderScene(ctx *cli.Context) error {
	if ctx.GlobalBool("v") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cameraConfig := renderer.CameraConfig{}
	if path := ctx.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		cameraConfig = cfg.CameraConfig()
		if ctx.String("scene") == "default" && cfg.Scene != "" {
			if err := ctx.Set("scene", cfg.Scene); err != nil {
				return err
			}
		}
	}
	cameraConfig = renderer.MergeCameraConfig(cameraConfig, flagOverrides(ctx))

	world, err := createScene(ctx.String("scene"))
	if err != nil {
		return err
	}

	camera := renderer.NewCamera(cameraConfig)
	camera.SetLogger(zerologPrintf{})

	width, height := camera.ImageSize()
	log.Info().
		Str("scene", ctx.String("scene")).
		Int("width", width).
		Int("height", height).
		Int("spp", camera.Config().SamplesPerPixel).
		Int("workers", camera.Config().NumWorkers).
		Msg("starting render")

	if err := camera.Render(world); err != nil {
		return err
	}

	log.Info().Str("output", camera.Config().Output).Msg("image written")
	return nil
}

// flagOverrides collects explicit flag values into a camera config override
func flagOverrides(ctx *cli.Context) renderer.CameraConfig {
	return renderer.CameraConfig{
		Width:           ctx.Int("width"),
		AspectRatio:     ctx.Float64("aspect"),
		VFov:            ctx.Float64("vfov"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("max-bounces"),
		NumWorkers:      ctx.Int("threads"),
		Seed:            ctx.Int64("seed"),
		Output:          ctx.String("out"),
	}
}

// createScene builds a scene by name
func createScene(name string) (*scene.Scene, error) {
	switch name {
	case "default":
		return scene.NewDefaultScene(), nil
	case "two-spheres":
		return scene.NewTwoSphereScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene %q (available: default, two-spheres)", name)
	}
}
