// Command tileland is the terminal viewer: it creates new saves and plays
// existing ones, rendering a chunked voxel world as ANSI truecolor text.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tileland/internal/config"
	"tileland/internal/controller"
	"tileland/internal/coords"
	"tileland/internal/genpool"
	"tileland/internal/logging"
	"tileland/internal/persist"
	"tileland/internal/render"
	"tileland/internal/world"
	"tileland/internal/worldgen"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	log := logging.NewStdLogger()

	switch os.Args[1] {
	case "new":
		runNew(log, os.Args[2:])
	case "play":
		runPlay(log, os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  tileland new  -dir <save-dir> -name <save> [-seed N]")
	fmt.Fprintln(os.Stderr, "  tileland play -dir <save-dir> -name <save>")
}

func runNew(log logging.Logger, args []string) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	dir := fs.String("dir", ".", "directory to create the save in")
	name := fs.String("name", "world", "save name")
	seed := fs.Int64("seed", time.Now().Unix(), "world generator seed")
	fs.Parse(args)

	settings := config.DefaultSettings()
	settings.Noise.Seed = *seed
	gen := worldgen.FromSettings(settings.Noise)
	w := world.New(gen)

	// Eagerly materialize the spawn chunk so a fresh save isn't empty.
	w.GetOrLoadChunk(coords.ChunkCoord{})

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Error("tileland new: could not create save directory", "dir", *dir, "err", err)
		os.Exit(1)
	}

	meta := persist.Metadata{
		Seed:        *seed,
		Frequency:   settings.Noise.Frequency,
		NoiseType:   settings.Noise.BaseNoise,
		FractalType: settings.Noise.Fractal,
		Octaves:     int32(settings.Noise.Octaves),
		Lacunarity:  settings.Noise.Lacunarity,
		Gain:        settings.Noise.Gain,
	}
	if err := persist.SaveMap(w, meta, *dir, *name, false, log); err != nil {
		log.Error("tileland new: save failed", "err", err)
		os.Exit(1)
	}
	fmt.Printf("created save %q in %s\n", *name, filepath.Join(*dir))
}

func runPlay(log logging.Logger, args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	dir := fs.String("dir", ".", "directory the save lives in")
	name := fs.String("name", "world", "save name")
	fs.Parse(args)

	settings := config.DefaultSettings()
	gen := worldgen.FromSettings(settings.Noise)

	w, meta, err := persist.LoadMap(*dir, *name, gen)
	if err != nil {
		log.Error("tileland play: load failed", "err", err)
		os.Exit(1)
	}
	w.SetTerrainGenerator(worldgen.FromSettings(config.NoiseSettings{
		Seed:       meta.Seed,
		Frequency:  meta.Frequency,
		BaseNoise:  meta.NoiseType,
		Fractal:    meta.FractalType,
		Octaves:    int(meta.Octaves),
		Lacunarity: meta.Lacunarity,
		Gain:       meta.Gain,
	}))

	pool := genpool.New(w, 0, log)
	loop := render.NewLoop(w, os.Stdout, settings.GetTargetTPS())
	input, err := newTTYInput()
	if err != nil {
		log.Error("tileland play: could not open terminal input", "err", err)
		os.Exit(1)
	}
	defer input.Close()

	ctrl := controller.New(w, pool, loop, input, settings, log)
	ctrl.Run()

	if err := persist.SaveMap(w, meta, *dir, *name, false, log); err != nil {
		log.Error("tileland play: save on exit failed", "err", err)
		os.Exit(1)
	}
}
