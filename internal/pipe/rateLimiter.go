package pipe

import (
	"time"
)

// RateLimit forwards items from input at most ratePerSecond per second.
// A rate of zero or less means no limit.
func RateLimit[T any](input <-chan T, ratePerSecond int, bufferSize int) <-chan T {
	output := make(chan T, bufferSize)
	if ratePerSecond <= 0 {
		go func() {
			for item := range input {
				output <- item
			}
			close(output)
		}()
		return output
	}
	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(ratePerSecond))
		defer ticker.Stop()
		for item := range input {
			<-ticker.C
			output <- item
		}
		close(output)
	}()
	return output
}
