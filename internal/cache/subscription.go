package cache

// subscription delivers invalidation notices for a key prefix
type subscription struct {
	prefix string
	ch     chan string
}

// Subscribe registers interest in invalidations of keys under prefix.
// The returned channel receives the invalidated prefix; slow consumers
// drop notices rather than block the invalidating mutation. cancel
// unregisters and closes the channel.
func (c *Cache) Subscribe(prefix string) (notices <-chan string, cancel func()) {
	sub := &subscription{prefix: prefix, ch: make(chan string, 8)}

	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = sub
	c.mu.Unlock()

	cancel = func() {
		c.mu.Lock()
		if _, ok := c.subs[id]; ok {
			delete(c.subs, id)
			close(sub.ch)
		}
		c.mu.Unlock()
	}
	return sub.ch, cancel
}

func (c *Cache) notify(prefixes []string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, sub := range c.subs {
		for _, prefix := range prefixes {
			if sub.prefix == prefix || matchesPrefix(prefix, sub.prefix) || matchesPrefix(sub.prefix, prefix) {
				select {
				case sub.ch <- prefix:
				default:
				}
				break
			}
		}
	}
}
