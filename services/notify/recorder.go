package notifysvc

import (
	"sync"

	"github.com/trezcool/scholarsync/core"
)

// Recorder collects the notifications raised while serving one request
// and forwards each of them to next, if any.
type Recorder struct {
	next core.Notifier

	mu   sync.Mutex
	list []core.Notification
}

var _ core.Notifier = (*Recorder)(nil)

func NewRecorder(next core.Notifier) *Recorder {
	return &Recorder{next: next}
}

func (r *Recorder) Notify(n core.Notification) {
	r.mu.Lock()
	r.list = append(r.list, n)
	r.mu.Unlock()

	if r.next != nil {
		r.next.Notify(n)
	}
}

// Notifications returns the recorded notifications in order.
func (r *Recorder) Notifications() []core.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]core.Notification, len(r.list))
	copy(res, r.list)
	return res
}

// Drain returns the recorded notifications and forgets them.
func (r *Recorder) Drain() []core.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := r.list
	r.list = nil
	return res
}
