package system

import (
	"time"

	"github.com/bnema/sms-temp/internal/ports"
)

// Scheduler runs tasks on the wall clock via time.AfterFunc.
type Scheduler struct{}

var _ ports.Scheduler = Scheduler{}

func (Scheduler) AfterFunc(d time.Duration, f func()) ports.Timer {
	return time.AfterFunc(d, f)
}
