package notifysvc

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/trezcool/scholarsync/core"
)

var (
	Shown = make([]core.Notification, 0)
	mu    sync.Mutex
)

// ConsoleNotifier prints notifications to a log, e.g. for the admin CLI.
type ConsoleNotifier struct {
	std           *log.Logger
	prefix        string
	disableOutput bool
}

var _ core.Notifier = (*ConsoleNotifier)(nil)

func NewConsoleNotifier(std *log.Logger, conf *core.Config) *ConsoleNotifier {
	return &ConsoleNotifier{std: std, prefix: "[" + conf.AppName + "] "}
}

// NewConsoleNotifierMock records notifications without printing them.
func NewConsoleNotifierMock(conf *core.Config) *ConsoleNotifier {
	return &ConsoleNotifier{prefix: "[" + conf.AppName + "] ", disableOutput: true}
}

func (n ConsoleNotifier) Notify(nt core.Notification) {
	mu.Lock()
	Shown = append(Shown, nt)
	mu.Unlock()

	if !n.disableOutput && n.std != nil {
		n.std.Println(n.format(nt))
	}
}

func (n ConsoleNotifier) format(nt core.Notification) string {
	b := new(strings.Builder)
	_, _ = fmt.Fprintf(b, "%s%s", n.prefix, nt.Title)
	if nt.Variant == core.VariantDestructive {
		_, _ = fmt.Fprint(b, " (error)")
	}
	_, _ = fmt.Fprintf(b, " @ %s", time.Now().Format(time.Kitchen))
	if nt.Description != "" {
		_, _ = fmt.Fprintf(b, "\n  %s", nt.Description)
	}
	return b.String()
}
