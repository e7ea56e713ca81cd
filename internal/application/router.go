package application

import (
	"sync"

	"github.com/bnema/sms-temp/internal/domain"
)

type ViewRouter struct {
	mu      sync.Mutex
	current domain.View
}

func NewViewRouter() *ViewRouter {
	return &ViewRouter{current: domain.ViewHome}
}

func (r *ViewRouter) Current() domain.View {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.current
}

// Select switches tabs; unknown views fall back to home.
func (r *ViewRouter) Select(view domain.View) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch view {
	case domain.ViewHome, domain.ViewNumbers, domain.ViewInbox:
		r.current = view
	default:
		r.current = domain.ViewHome
	}
}

func (r *ViewRouter) Next() domain.View {
	return r.shift(1)
}

func (r *ViewRouter) Prev() domain.View {
	return r.shift(-1)
}

func (r *ViewRouter) shift(step int) domain.View {
	r.mu.Lock()
	defer r.mu.Unlock()

	views := domain.Views()
	idx := 0
	for i, v := range views {
		if v == r.current {
			idx = i
			break
		}
	}
	r.current = views[(idx+step+len(views))%len(views)]

	return r.current
}
