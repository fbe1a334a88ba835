package exec

import (
	"sync"

	"github.com/querylab/qbind/bind"
	"github.com/querylab/qbind/dialect"
)

// planCache memoizes template rewrites per dialect. A plan depends only on
// the template text and the dialect's placeholder form, never on bound
// values, so cached entries are valid forever.
type planCache struct {
	mu   sync.RWMutex
	data map[uint64]*bind.Plan
}

func newPlanCache() *planCache {
	return &planCache{data: make(map[uint64]*bind.Plan)}
}

func (c *planCache) get(t bind.Template, d dialect.Dialect) *bind.Plan {
	key := bind.Mix64(t.Fingerprint(), bind.Fingerprint(d.Name()))

	c.mu.RLock()
	plan, ok := c.data[key]
	c.mu.RUnlock()
	if ok {
		return plan
	}

	plan = bind.NewPlan(t, d)

	c.mu.Lock()
	c.data[key] = plan
	c.mu.Unlock()
	return plan
}
