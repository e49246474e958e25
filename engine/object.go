package engine

// Class separates the two judgement paths an object can take.
type Class uint8

const (
	ClassCollectible Class = iota
	ClassObstacle
)

// Kind is an object subtype. Subtypes within a class share behavior but
// differ in reward (collectibles) or look (obstacles).
type Kind uint8

const (
	KindCoin Kind = iota
	KindStar
	KindBarrier
	KindCrate
)

// Class returns the judgement class for a kind.
func (k Kind) Class() Class {
	if k == KindBarrier || k == KindCrate {
		return ClassObstacle
	}
	return ClassCollectible
}

func (k Kind) String() string {
	switch k {
	case KindCoin:
		return "coin"
	case KindStar:
		return "star"
	case KindBarrier:
		return "barrier"
	case KindCrate:
		return "crate"
	}
	return "unknown"
}

// Object is one pooled entity on the track. Slots are owned by the engine
// and recycled; Slot identity persists across reuse. Resolved guards the
// at-most-once judgement: once set, the collision resolver never looks at
// the object again for its current activation.
type Object struct {
	Slot     int
	Kind     Kind
	Lane     int
	Depth    float64
	Size     float64
	Active   bool
	Resolved bool
}

// objectPool is fixed-capacity storage with a free-index stack so acquire
// and release are O(1). Slots are never removed, only deactivated.
type objectPool struct {
	objects []Object
	free    []int
}

func newObjectPool(cap int) *objectPool {
	if cap <= 0 {
		cap = 1
	}
	p := &objectPool{
		objects: make([]Object, cap),
		free:    make([]int, 0, cap),
	}
	for i := range p.objects {
		p.objects[i].Slot = i
	}
	p.reset()
	return p
}

// acquire returns an inactive slot, or nil when the pool is exhausted.
// Exhaustion is not an error; the caller just skips that spawn.
func (p *objectPool) acquire() *Object {
	if len(p.free) == 0 {
		return nil
	}
	idx := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	o := &p.objects[idx]
	o.Active = true
	o.Resolved = false
	o.Depth = 0
	return o
}

// release deactivates a slot and returns it to the free stack.
func (p *objectPool) release(o *Object) {
	if o == nil || !o.Active {
		return
	}
	o.Active = false
	p.free = append(p.free, o.Slot)
}

// reset deactivates everything and rebuilds the free stack.
func (p *objectPool) reset() {
	p.free = p.free[:0]
	// top of stack = slot 0, so the lowest slot is always reused first
	for i := len(p.objects) - 1; i >= 0; i-- {
		p.objects[i].Active = false
		p.objects[i].Resolved = false
		p.objects[i].Depth = 0
		p.free = append(p.free, i)
	}
}

// activeCount reports how many slots are live.
func (p *objectPool) activeCount() int {
	return len(p.objects) - len(p.free)
}
