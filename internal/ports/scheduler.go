package ports

import "time"

// Timer is the handle of a scheduled task. Stop reports whether it prevented
// the task from running.
type Timer interface {
	Stop() bool
}

type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}
