package engine

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/hungry-pixel/internal/core"
)

// ErrFontNotFound is returned when text is requested in a font key that was
// never loaded. It signals a programmer error, not a runtime condition.
var ErrFontNotFound = errors.New("font not found")

// GlyphSet is the set of glyphs pre-measured into every atlas.
const GlyphSet = "/\\|_-+=<>()[]:;.,'\"!?#%&*@ " +
	"abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// FontSpec names a font size to load under a logical key.
type FontSpec struct {
	Key  string `yaml:"key"`
	Size int    `yaml:"size"`
}

// Texture is rendered text, sized to its content.
type Texture struct {
	Font string
	Size int // point size of the font it was rendered with
	Text string
	Tint core.Color
	w, h int
}

// Width returns the texture width in logical pixels.
func (t *Texture) Width() int { return t.w }

// Height returns the texture height in logical pixels.
func (t *Texture) Height() int { return t.h }

// Query returns the texture dimensions.
func (t *Texture) Query() (w, h int) { return t.w, t.h }

// FontAtlas holds the measured glyphs of one loaded font size.
type FontAtlas struct {
	size     int
	advances map[rune]int
	maxW     int
	maxH     int
	colorMod core.Color
}

// Advance returns the horizontal advance of r, falling back to the widest
// glyph for runes outside the glyph set.
func (a *FontAtlas) Advance(r rune) int {
	if adv, ok := a.advances[r]; ok {
		return adv
	}
	return a.maxW
}

// LineHeight returns the tallest glyph height.
func (a *FontAtlas) LineHeight() int { return a.maxH }

// FontCache stores one atlas per logical font key.
type FontCache struct {
	glyphs Glyphs
	cache  map[string]*FontAtlas
}

// NewFontCache creates an empty cache measuring glyphs with g.
func NewFontCache(g Glyphs) *FontCache {
	return &FontCache{
		glyphs: g,
		cache:  make(map[string]*FontAtlas),
	}
}

// Load measures the glyph set at the given size and stores it under key,
// replacing any atlas previously loaded there.
func (fc *FontCache) Load(key string, size int) error {
	if size <= 0 {
		return fmt.Errorf("font %q: invalid size %d", key, size)
	}

	atlas, err := fc.measure(key, size)
	if err != nil {
		return err
	}
	atlas.colorMod = core.ColorWhite
	fc.cache[key] = atlas
	return nil
}

// Remeasure measures every loaded atlas again, keeping its tint. Platforms
// whose glyph size follows the window call it after a resize. An atlas that
// fails to measure keeps its old metrics.
func (fc *FontCache) Remeasure() error {
	var errs []error
	for key, old := range fc.cache {
		atlas, err := fc.measure(key, old.size)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		atlas.colorMod = old.colorMod
		fc.cache[key] = atlas
	}
	return errors.Join(errs...)
}

func (fc *FontCache) measure(key string, size int) (*FontAtlas, error) {
	atlas := &FontAtlas{
		size:     size,
		advances: make(map[rune]int, len(GlyphSet)),
	}
	for _, r := range GlyphSet {
		adv, h := fc.glyphs.GlyphMetrics(size, r)
		atlas.advances[r] = adv
		atlas.maxW = max(atlas.maxW, adv)
		atlas.maxH = max(atlas.maxH, h)
	}
	if atlas.maxW == 0 || atlas.maxH == 0 {
		return nil, fmt.Errorf("font %q: glyph metrics are empty", key)
	}
	return atlas, nil
}

// Atlas returns the atlas stored under key.
func (fc *FontCache) Atlas(key string) (*FontAtlas, error) {
	atlas, ok := fc.cache[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, key)
	}
	return atlas, nil
}

// Len returns the number of loaded fonts.
func (fc *FontCache) Len() int { return len(fc.cache) }

// Measure returns the size text would have in the given font.
func (fc *FontCache) Measure(key, text string) (w, h int, err error) {
	atlas, err := fc.Atlas(key)
	if err != nil {
		return 0, 0, err
	}
	for _, r := range text {
		w += atlas.Advance(r)
	}
	return w, atlas.maxH, nil
}

// RenderTexture renders text into a texture sized to it. A non-nil tint
// replaces the atlas colour modulation for this texture only.
func (fc *FontCache) RenderTexture(key, text string, tint *core.Color) (*Texture, error) {
	atlas, err := fc.Atlas(key)
	if err != nil {
		return nil, err
	}
	w, h, _ := fc.Measure(key, text)

	color := atlas.colorMod
	if tint != nil {
		color = *tint
	}
	return &Texture{Font: key, Size: atlas.size, Text: text, Tint: color, w: w, h: h}, nil
}

// RenderText blits text glyph by glyph straight to the renderer at (x, y).
// A non-nil tint is pushed onto the atlas for the call and restored after.
func (fc *FontCache) RenderText(r Renderer, key, text string, tint *core.Color, x, y int) error {
	atlas, err := fc.Atlas(key)
	if err != nil {
		return err
	}

	saved := atlas.colorMod
	if tint != nil {
		atlas.colorMod = *tint
		defer func() { atlas.colorMod = saved }()
	}

	cur := x
	for _, ch := range text {
		adv := atlas.Advance(ch)
		glyph := &Texture{
			Font: key,
			Size: atlas.size,
			Text: string(ch),
			Tint: atlas.colorMod,
			w:    adv,
			h:    atlas.maxH,
		}
		r.Copy(glyph, core.NewRect(cur, y, adv, atlas.maxH))
		cur += adv
	}
	return nil
}

// SetColorMod changes the default tint of the font stored under key.
func (fc *FontCache) SetColorMod(key string, c core.Color) error {
	atlas, err := fc.Atlas(key)
	if err != nil {
		return err
	}
	atlas.colorMod = c
	return nil
}

// String implements fmt.Stringer for logs.
func (fc *FontCache) String() string {
	return fmt.Sprintf("FontCache{%d fonts}", len(fc.cache))
}
