package grid

import "time"

func SetClockInterval(c *Clock, interval time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.interval = interval
}
