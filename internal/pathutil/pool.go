package pathutil

import "sync"

// Model indexers hold one builder per document walk. Smithy trait values
// and OpenAPI schemas rarely nest past a dozen keys.
const (
	initialDepth = 16
	poolMaxDepth = 128
)

var builders = sync.Pool{
	New: func() any {
		return &PathBuilder{segments: make([]string, 0, initialDepth)}
	},
}

// Get returns an empty PathBuilder from the pool.
func Get() *PathBuilder {
	p := builders.Get().(*PathBuilder)
	p.Reset()
	return p
}

// Put returns p to the pool. Builders grown past poolMaxDepth are dropped.
func Put(p *PathBuilder) {
	if p != nil && cap(p.segments) <= poolMaxDepth {
		builders.Put(p)
	}
}
