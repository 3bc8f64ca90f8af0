package ode

import "sync"

// VectorPool recycles fixed-size vectors. Right-hand-side evaluations
// happen four times per RK4 step, so scratch buffers are worth
// reusing.
type VectorPool struct {
	pool sync.Pool
	size int
}

func NewVectorPool(size int) *VectorPool {
	return &VectorPool{
		size: size,
		pool: sync.Pool{
			New: func() interface{} {
				return make(Vector, size)
			},
		},
	}
}

func (p *VectorPool) Get() Vector {
	return p.pool.Get().(Vector)
}

// Put zeroes and returns a vector to the pool. Vectors of the wrong
// size are dropped.
func (p *VectorPool) Put(v Vector) {
	if len(v) == p.size {
		for i := range v {
			v[i] = 0
		}
		p.pool.Put(v)
	}
}

func (p *VectorPool) GetAndCopy(src Vector) Vector {
	dst := p.Get()
	copy(dst, src)
	return dst
}
