package value

import "sync"

// Allocator supplies the storage backing values. A Builder delegates all
// allocation to its Allocator so that the same parsing and printing code
// runs over different memory strategies.
type Allocator interface {
	NewValue() *Value
	MakeValues(capacity int) []*Value
	MakeKeys(capacity int) []Key
	// Free releases v and its descendants. Values must not be used
	// after they are freed.
	Free(v *Value)
}

// HeapAllocator leaves everything to the garbage collector.
type HeapAllocator struct{}

func (HeapAllocator) NewValue() *Value { return &Value{} }
func (HeapAllocator) MakeValues(n int) []*Value { return make([]*Value, 0, n) }
func (HeapAllocator) MakeKeys(n int) []Key { return make([]Key, 0, n) }
func (HeapAllocator) Free(*Value) {}

// PoolAllocator recycles freed values through a sync.Pool. It is safe
// for concurrent use.
type PoolAllocator struct {
	pool sync.Pool
}

func NewPoolAllocator() *PoolAllocator {
	return &PoolAllocator{
		pool: sync.Pool{New: func() any { return &Value{} }},
	}
}

func (p *PoolAllocator) NewValue() *Value {
	return p.pool.Get().(*Value)
}

func (p *PoolAllocator) MakeValues(n int) []*Value { return make([]*Value, 0, n) }
func (p *PoolAllocator) MakeKeys(n int) []Key { return make([]Key, 0, n) }

func (p *PoolAllocator) Free(v *Value) {
	if v == nil {
		return
	}
	for _, c := range v.Values {
		p.Free(c)
	}
	clear(v.Values)
	*v = Value{Values: v.Values[:0], Keys: v.Keys[:0]}
	p.pool.Put(v)
}

const arenaChunk = 256

// ArenaAllocator hands out values from fixed size slabs. Free is a no-op;
// Reset releases everything at once. It is not safe for concurrent use.
type ArenaAllocator struct {
	chunks [][]Value
	n      int
}

func NewArenaAllocator() *ArenaAllocator {
	return &ArenaAllocator{}
}

func (a *ArenaAllocator) NewValue() *Value {
	if len(a.chunks) == 0 || a.n == arenaChunk {
		a.chunks = append(a.chunks, make([]Value, arenaChunk))
		a.n = 0
	}
	v := &a.chunks[len(a.chunks)-1][a.n]
	a.n++
	return v
}

func (a *ArenaAllocator) MakeValues(n int) []*Value { return make([]*Value, 0, n) }
func (a *ArenaAllocator) MakeKeys(n int) []Key { return make([]Key, 0, n) }
func (a *ArenaAllocator) Free(*Value) {}

// Reset drops all slabs. Every value obtained from the arena becomes
// invalid.
func (a *ArenaAllocator) Reset() {
	a.chunks = nil
	a.n = 0
}

// Len returns the number of values allocated since the last Reset.
func (a *ArenaAllocator) Len() int {
	if len(a.chunks) == 0 {
		return 0
	}
	return (len(a.chunks)-1)*arenaChunk + a.n
}
