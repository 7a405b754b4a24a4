package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/przemekrun/audio"
	"github.com/milk9111/przemekrun/prefabs"
	"github.com/milk9111/przemekrun/session"
	"github.com/milk9111/przemekrun/tty"
)

func main() {
	variantName := flag.String("variant", "keyboard", "game variant: keyboard or touch")
	assetsDir := flag.String("assets", "", "directory holding sound/; empty uses built-in sound")
	seed := flag.Int64("seed", 0, "laser placement seed; 0 seeds from the clock")
	spawnScript := flag.String("spawn-script", "", "tengo script under prefabs/scripts that places lasers")
	prefabDir := flag.String("prefabs", prefabs.DiskDir, "directory whose specs override the built-in prefabs")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "", "write logs to this file; the terminal is busy drawing")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	prefabs.DiskDir = *prefabDir

	variant, err := prefabs.LoadVariant(*variantName)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	opts := session.Options{
		Variant:     variant,
		Rand:        rand.New(rand.NewSource(*seed)),
		SpawnScript: *spawnScript,
	}
	if !*mute {
		engine := audio.Load(*assetsDir, variant)
		if err := audio.StartSpeaker(engine); err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer audio.StopSpeaker()
			opts.Sink = engine
		}
	}

	sess, err := session.New(opts)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = tty.Run(ctx, screen, sess)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("terminal loop: %v", err)
	}
}
