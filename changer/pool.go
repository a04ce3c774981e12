package changer

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Candidate assembly allocates many short-lived unit buffers. To avoid
// multiple allocation of small objects we will pool them.
type builderPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

type unitBuilder struct {
	units []string
}

var globalBuilderPool *builderPool

func init() {
	globalBuilderPool = &builderPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			b := &unitBuilder{units: make([]string, 0, 32)}
			return b, nil
		})
	globalBuilderPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBuilderPool.opool = pool.NewObjectPool(globalBuilderPool.ctx, factory, config)
}

// borrowBuilder returns a cleared unit buffer from the pool.
func borrowBuilder() *unitBuilder {
	o, _ := globalBuilderPool.opool.BorrowObject(globalBuilderPool.ctx)
	b := o.(*unitBuilder)
	b.units = b.units[:0]
	return b
}

// Puts the builder back into the pool. Callers must not retain the
// buffer; NewSequenceUnits copies, so handing units out that way is
// safe.
func releaseBuilder(b *unitBuilder) {
	_ = globalBuilderPool.opool.ReturnObject(globalBuilderPool.ctx, b)
}
