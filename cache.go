package outline

import "sync"

// ScanKey identifies one extremum scan: an outline, named by a caller-assigned
// identifier, and a direction. The cache never inspects outlines, so the caller is
// responsible for changing or invalidating the identifier when the outline changes.
type ScanKey struct {
	Outline uint64
	Dir     Direction
}

// ScanResult bundles the two products of an extremum scan.
type ScanResult struct {
	Extent  Range
	Strokes []Stroke
}

// ScanCache memoizes extremum scans. Scanning the four directions of every glyph in a
// large family touches the same outlines repeatedly; the cache makes repeat queries a
// map lookup. It is safe for concurrent use.
type ScanCache struct {
	mu sync.RWMutex
	m  map[ScanKey]ScanResult
}

func NewScanCache() *ScanCache {
	return &ScanCache{m: make(map[ScanKey]ScanResult)}
}

func (c *ScanCache) Get(k ScanKey) (ScanResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.m[k]
	return res, ok
}

func (c *ScanCache) Put(k ScanKey, res ScanResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[k] = res
}

// Scan returns the cached result for the key, computing and storing it on a miss.
// Errors are not cached.
func (c *ScanCache) Scan(id uint64, contours []Contour, dir Direction) (ScanResult, error) {
	k := ScanKey{Outline: id, Dir: dir}
	if res, ok := c.Get(k); ok {
		return res, nil
	}
	s, err := scan(contours, dir)
	if err != nil {
		return ScanResult{}, err
	}
	res := ScanResult{Extent: s.extent, Strokes: s.strokes}
	c.Put(k, res)
	return res, nil
}
