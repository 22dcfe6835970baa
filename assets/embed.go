package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate is the audio context sample rate.
const SampleRate = 44100

// Frame widths of the sprite strips.
const (
	PlayerFrameW   = 16
	EnemyFrameW    = 16
	GateFrameW     = 16
	DarknessFrameW = 960
	DarknessFrameH = 540
)

//go:embed *.png *.wav
var assetsFS embed.FS

var (
	imagesMu sync.Mutex
	images   = make(map[string]*ebiten.Image)
)

// Image returns the embedded image at path, decoding it on first use. A
// missing embedded image is a build defect and stops the process.
func Image(path string) *ebiten.Image {
	clean := cleanAssetPath(path)

	imagesMu.Lock()
	defer imagesMu.Unlock()
	if img, ok := images[clean]; ok {
		return img
	}
	img, err := LoadImage(clean)
	if err != nil {
		log.Fatalf("assets: load %s: %v", clean, err)
	}
	images[clean] = img
	return img
}

// LoadImage loads an embedded asset by assets-relative path.
func LoadImage(path string) (*ebiten.Image, error) {
	img, err := DecodeImage(path)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// DecodeImage decodes an embedded image without uploading it to the GPU.
func DecodeImage(path string) (image.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %q: %w", path, err)
	}
	return img, nil
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	return assetsFS.ReadFile(clean)
}

// AudioContext returns the process audio context, creating it on first use.
func AudioContext() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(SampleRate)
}

// LoadAudioPlayer loads an embedded audio asset and creates an audio player.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	ctx := AudioContext()
	clean := strings.ToLower(cleanAssetPath(path))
	reader := bytes.NewReader(b)

	if strings.HasSuffix(clean, ".wav") {
		stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), reader)
		if err != nil {
			return nil, fmt.Errorf("assets: decode wav %q: %w", path, err)
		}
		return ctx.NewPlayer(stream)
	}

	// Fallback for already-decoded PCM assets in Ebiten's native format.
	return ctx.NewPlayerFromBytes(b), nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
		return s[idx+len("/assets/"):]
	}
	return strings.TrimPrefix(s, "assets/")
}
