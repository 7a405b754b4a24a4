// Package assets loads the game's sprites. Images are read from an optional
// directory on disk in the background; any sprite that is missing or fails to
// decode is drawn procedurally instead.
package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Sprite names shared with the entity prefabs.
const (
	SpritePlayer    = "player"
	SpriteHeart     = "health"
	SpriteLaserGood = "laser_good"
	SpriteLaserBad  = "laser_bad"
)

var SpriteNames = []string{SpritePlayer, SpriteHeart, SpriteLaserGood, SpriteLaserBad}

const maxParallelDecodes = 4

// Loader decodes sprites concurrently. Ready flips once every requested
// sprite has either loaded or fallen back.
type Loader struct {
	dir string

	mu     sync.RWMutex
	images map[string]image.Image
	source map[string]string

	done chan struct{}
}

// NewLoader starts loading names from dir/img/<name>.png. An empty dir skips
// the disk and uses procedural sprites only.
func NewLoader(dir string, names ...string) *Loader {
	if len(names) == 0 {
		names = SpriteNames
	}
	l := &Loader{
		dir:    dir,
		images: make(map[string]image.Image, len(names)),
		source: make(map[string]string, len(names)),
		done:   make(chan struct{}),
	}

	go func() {
		var g errgroup.Group
		g.SetLimit(maxParallelDecodes)
		for _, name := range names {
			g.Go(func() error {
				l.load(name)
				return nil
			})
		}
		_ = g.Wait()
		close(l.done)
	}()

	return l
}

func (l *Loader) load(name string) {
	if l.dir != "" {
		img, err := LoadImage(filepath.Join(l.dir, "img", name+".png"))
		if err == nil {
			l.store(name, img, "disk")
			return
		}
		if !os.IsNotExist(err) {
			log.Printf("assets: %s: %v, using procedural sprite", name, err)
		}
	}
	l.store(name, Procedural(name), "procedural")
}

func (l *Loader) store(name string, img image.Image, source string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.images[name] = img
	l.source[name] = source
}

// Ready reports whether loading has finished. It never blocks.
func (l *Loader) Ready() bool {
	select {
	case <-l.done:
		return true
	default:
		return false
	}
}

// Wait blocks until loading has finished.
func (l *Loader) Wait() {
	<-l.done
}

// Image returns a loaded sprite.
func (l *Loader) Image(name string) (image.Image, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	img, ok := l.images[name]
	return img, ok
}

// Source reports where a sprite came from: "disk" or "procedural".
func (l *Loader) Source(name string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.source[name]
}

// LoadImage decodes an image file from disk.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", cleanAssetPath(path), err)
	}
	return img, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
		return s[idx+len("/assets/"):]
	}
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return filepath.Base(path)
}
