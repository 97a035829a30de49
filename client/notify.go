package client

import "log"

// Notifier receives the user-facing message extracted from a failing
// response. It is fire-and-forget: implementations must not block and cannot
// influence error propagation.
type Notifier interface {
	Notify(message string)
}

type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

var defaultNotifier Notifier = NotifierFunc(func(message string) {
	log.Printf("[toast] %s", message)
})
