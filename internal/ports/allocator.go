package ports

import "github.com/bnema/sms-temp/internal/domain"

// Allocator provisions a line asynchronously. Work is scheduled on scheduler,
// which the caller may wrap. done is called exactly once unless the returned
// Timer is stopped first.
type Allocator interface {
	Allocate(scheduler Scheduler, region domain.Region, done func(domain.Allocation, error)) Timer
}
