//go:build profile

package profiler

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const Enabled = true

// Init must be called once before Start with the number of scope events to keep.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	ring.init(capacity)
}

// Start opens a scope; call the returned func to close it.
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := intern(name)
	start := time.Now().UnixNano()
	ring.push(event{AtNS: start, Frame: id, Open: true})
	return func() {
		ring.push(event{AtNS: max(time.Now().UnixNano(), start), Frame: id})
	}
}

// Dump writes the captured scopes to a speedscope file in the temp dir and
// tries to open it with the speedscope CLI.
func Dump(log *zap.Logger) (string, error) {
	evs := ring.snapshot()
	if len(evs) == 0 {
		return "", errNoEvents
	}

	path := filepath.Join(os.TempDir(), "scribe.profile.speedscope.json")
	if err := writeFile(path, evs); err != nil {
		return "", fmt.Errorf("profiler dump: %w", err)
	}

	cmd := exec.Command("speedscope", path)
	hideConsole(cmd)
	if err := cmd.Start(); err != nil {
		log.Warn("speedscope not started", zap.String("path", path), zap.Error(err))
	}
	return path, nil
}

func writeFile(path string, evs []event) error {
	muFrames.Lock()
	names := append([]string(nil), frames...)
	muFrames.Unlock()

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := writeSpeedscope(f, names, evs); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ---------- event ring ----------

type evRing struct {
	ready atomic.Bool
	cap   uint64
	write atomic.Uint64
	evs   []event
}

var ring evRing

func (r *evRing) init(capacity int) {
	r.cap = uint64(capacity)
	r.evs = make([]event, r.cap)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *evRing) push(e event) {
	i := r.write.Add(1) - 1
	r.evs[i%r.cap] = e
}

// snapshot keeps write order; the oldest events are overwritten first.
func (r *evRing) snapshot() []event {
	n := r.write.Load()
	start := uint64(0)
	if n > r.cap {
		start = n - r.cap
	}
	out := make([]event, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.cap])
	}
	return out
}

// ---------- scope names ----------

var (
	muFrames sync.Mutex
	frames   []string
	index    = map[string]int{}
)

func intern(name string) int {
	muFrames.Lock()
	defer muFrames.Unlock()
	if id, ok := index[name]; ok {
		return id
	}
	id := len(frames)
	index[name] = id
	frames = append(frames, name)
	return id
}
