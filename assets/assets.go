package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // register the PNG decoder
	"io/fs"
	"log"
	"sync"
	"sync/atomic"

	cfg "github.com/automoto/starsong/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageLoader loads sprite images in the background. Each image has its own
// loaded flag; an image that is missing or fails to decode is replaced by a
// generated one and still counts as loaded.
type ImageLoader struct {
	fsys fs.FS

	mu      sync.Mutex
	sources [cfg.ImageCount]image.Image
	loaded  [cfg.ImageCount]atomic.Bool
	wg      sync.WaitGroup
	started atomic.Bool

	// Converted on the game loop, never touched by loader goroutines.
	images [cfg.ImageCount]*ebiten.Image
}

// NewImageLoader creates a loader reading files from fsys. A nil fsys
// generates every image.
func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{fsys: fsys}
}

// Start begins loading every image. Calling it more than once is a no-op.
func (l *ImageLoader) Start() {
	if !l.started.CompareAndSwap(false, true) {
		return
	}
	for id := cfg.ImageID(0); id < cfg.ImageCount; id++ {
		l.wg.Add(1)
		go func() {
			defer l.wg.Done()
			l.load(id)
		}()
	}
}

// Wait blocks until every started load has finished.
func (l *ImageLoader) Wait() {
	l.wg.Wait()
}

func (l *ImageLoader) load(id cfg.ImageID) {
	img, err := l.decode(id)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("assets: %v, using generated image", err)
		}
		img = Generate(id)
	}

	l.mu.Lock()
	l.sources[id] = img
	l.mu.Unlock()
	l.loaded[id].Store(true)
}

func (l *ImageLoader) decode(id cfg.ImageID) (image.Image, error) {
	if l.fsys == nil {
		return nil, fs.ErrNotExist
	}
	name, ok := cfg.Assets.Files[id]
	if !ok {
		return nil, fmt.Errorf("no file for image %d: %w", id, fs.ErrNotExist)
	}

	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// Loaded reports whether the image is ready to draw.
func (l *ImageLoader) Loaded(id cfg.ImageID) bool {
	if id < 0 || id >= cfg.ImageCount {
		return false
	}
	return l.loaded[id].Load()
}

// Source returns the decoded image, or nil while it is still loading.
func (l *ImageLoader) Source(id cfg.ImageID) image.Image {
	if !l.Loaded(id) {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sources[id]
}

// Image returns the drawable image, or nil while it is still loading.
// Must be called from the game loop.
func (l *ImageLoader) Image(id cfg.ImageID) *ebiten.Image {
	if img := l.images[id]; img != nil {
		return img
	}
	src := l.Source(id)
	if src == nil {
		return nil
	}
	l.images[id] = ebiten.NewImageFromImage(src)
	return l.images[id]
}
