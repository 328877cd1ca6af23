// Package preview debounces regeneration of the derived preview
// document. Supersession is latest-wins: a newer snapshot simply
// replaces a pending one, there is no merging and no back-pressure.
package preview

import (
	"sync"
	"time"

	"github.com/go-git/go-billy/v5/util"

	"studio/internal/vfs"
)

// Builder composes a renderable document from a filesystem snapshot.
// It is consumed as a pure function and not specified further here.
type Builder func(files map[string]vfs.Entry) string

// DefaultBuilder materializes the snapshot as a standard filesystem and
// returns the project's index.html as the document, or an empty
// document when there is none.
func DefaultBuilder(files map[string]vfs.Entry) string {
	bfs, err := vfs.ToBilly(files)
	if err != nil {
		return ""
	}
	content, err := util.ReadFile(bfs, "index.html")
	if err != nil {
		return ""
	}
	return string(content)
}

// Debouncer coalesces snapshot triggers and delivers the built document
// after a quiet period.
type Debouncer struct {
	delay   time.Duration
	build   Builder
	deliver func(string)

	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]vfs.Entry
}

func NewDebouncer(delay time.Duration, build Builder, deliver func(string)) *Debouncer {
	return &Debouncer{delay: delay, build: build, deliver: deliver}
}

// Trigger schedules a rebuild for the given snapshot, replacing any
// snapshot still waiting.
func (d *Debouncer) Trigger(snapshot map[string]vfs.Entry) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = snapshot
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	snap := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	if snap != nil {
		d.deliver(d.build(snap))
	}
}

// Stop cancels any pending rebuild.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}
