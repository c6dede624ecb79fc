/*
Package counter provides a concurrency-safe counter built on channels
rather than atomics, so that Count always observes every Add that was
issued before it.
*/
package counter

import "sync"

type Counter struct {
	addChan   chan int
	countChan chan int
	wg        sync.WaitGroup
}

func NewCounter() *Counter {
	c := &Counter{
		addChan:   make(chan int),
		countChan: make(chan int),
	}
	go c.receiveCounts()
	return c
}

func (c *Counter) receiveCounts() {
	var total int
	for {
		select {
		case add := <-c.addChan:
			total += add
			c.wg.Done()
		case c.countChan <- total:
			// Serves the current total on request
		}
	}
}

// Add adds a value to the counter. Safe from any goroutine.
func (c *Counter) Add(value int) {
	c.wg.Add(1)
	c.addChan <- value
}

// Count waits for in-flight Adds and returns the total.
func (c *Counter) Count() int {
	c.wg.Wait()
	return <-c.countChan
}
