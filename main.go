package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/przemekrun/assets"
	"github.com/milk9111/przemekrun/audio"
	"github.com/milk9111/przemekrun/prefabs"
	"github.com/milk9111/przemekrun/session"
)

func main() {
	variantName := flag.String("variant", "keyboard", "game variant: keyboard or touch")
	assetsDir := flag.String("assets", "", "directory holding img/ and sound/; empty uses built-in art and sound")
	seed := flag.Int64("seed", 0, "laser placement seed; 0 seeds from the clock")
	debug := flag.Bool("debug", false, "enable debug overlay and hot reload of prefabs")
	spawnScript := flag.String("spawn-script", "", "tengo script under prefabs/scripts that places lasers")
	prefabDir := flag.String("prefabs", prefabs.DiskDir, "directory whose specs override the built-in prefabs")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	prefabs.DiskDir = *prefabDir

	variant, err := prefabs.LoadVariant(*variantName)
	if err != nil {
		log.Fatal(err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	engine := audio.Load(*assetsDir, variant)
	sound := StartSound(engine)

	sess, err := session.New(session.Options{
		Variant:     variant,
		Rand:        rand.New(rand.NewSource(*seed)),
		SpawnScript: *spawnScript,
		Sink:        engine,
	})
	if err != nil {
		log.Fatal(err)
	}

	var watcher *prefabs.Watcher
	if *debug {
		watcher, err = prefabs.NewWatcher()
		if err != nil {
			log.Printf("prefab hot reload disabled: %v", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	loader := assets.NewLoader(*assetsDir)

	game, err := NewGame(sess, loader, sound, watcher, *debug)
	if err != nil {
		log.Fatal(err)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(windowSize(variant.Field.Width, variant.Field.Height))
	ebiten.SetWindowTitle("Przemek Run")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// windowSize fits the field into 80% of the monitor, never scaling up.
func windowSize(fieldW, fieldH float64) (int, int) {
	mw, mh := ebiten.Monitor().Size()
	scale := 1.0
	if mw > 0 && mh > 0 {
		scale = min(1, 0.8*float64(mw)/fieldW, 0.8*float64(mh)/fieldH)
	}
	return int(fieldW * scale), int(fieldH * scale)
}
