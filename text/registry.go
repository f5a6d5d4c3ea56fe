package text

import "sync"

// faceCacheSize bounds the faces a FontRegistry keeps per (font, size) pair.
const faceCacheSize = 64

type faceKey struct {
	id   FontID
	size float64
}

// FontRegistry maps FontIDs to loaded fonts and measures text with their faces.
// It implements Measurer.
//
// FontRegistry is safe for concurrent use.
type FontRegistry struct {
	mu       sync.RWMutex
	sources  map[FontID]*FontSource
	faceOpts []FaceOption
	faces    *Cache[faceKey, Face]
}

// NewFontRegistry returns an empty registry. opts are applied to every face
// the registry creates.
func NewFontRegistry(opts ...FaceOption) *FontRegistry {
	return &FontRegistry{
		sources:  make(map[FontID]*FontSource),
		faceOpts: opts,
		faces:    NewCache[faceKey, Face](faceCacheSize),
	}
}

// Register binds id to src. Registering an id twice is an error.
func (r *FontRegistry) Register(id FontID, src *FontSource) error {
	if src == nil {
		return &FontIDError{ID: id, Err: ErrEmptyFontData}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sources[id]; ok {
		return &FontIDError{ID: id, Err: ErrFontIDInUse}
	}
	r.sources[id] = src
	return nil
}

// Source returns the font registered under id.
func (r *FontRegistry) Source(id FontID) (*FontSource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src, ok := r.sources[id]
	return src, ok
}

// Face returns a face of the font registered under id at size.
// Faces are cached.
func (r *FontRegistry) Face(id FontID, size float64) (Face, bool) {
	src, ok := r.Source(id)
	if !ok {
		return nil, false
	}
	face := r.faces.GetOrCreate(faceKey{id: id, size: size}, func() Face {
		return src.Face(size, r.faceOpts...)
	})
	return face, true
}

// Measure implements Measurer. The height is the face's line height.
// Text in an unknown font is measured with font 0; if font 0 is not
// registered either, the result is zero.
func (r *FontRegistry) Measure(s string, id FontID, size float64) Dimensions {
	face, ok := r.Face(id, size)
	if !ok {
		Logger().Debug("text: unknown font, falling back to font 0", "font", id)
		if face, ok = r.Face(0, size); !ok {
			return Dimensions{}
		}
	}
	return Dimensions{
		Width:  face.Advance(s),
		Height: face.Metrics().LineHeight(),
	}
}
