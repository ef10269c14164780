package game

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"sync"
	"time"
)

// Profiler captures a CPU profile after a frame hitch (a delta the frame timer had to clamp)
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
}

// NewProfiler creates a profiler writing into dir; an empty dir disables it
func NewProfiler(dir string) *Profiler {
	return &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 3 * time.Second,
		profilesDir:     dir,
	}
}

// Enabled reports whether captures will be written
func (p *Profiler) Enabled() bool {
	return p != nil && p.profilesDir != ""
}

// NoticeHitch starts a background capture unless one ran recently
func (p *Profiler) NoticeHitch(raw float64, entities int) error {
	if !p.Enabled() {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", time.Since(p.lastCaptureTime))
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("hitch-%s-%.0fms-entities%d", time.Now().Format("20060102-150405"), raw*1000, entities)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()
		if err := p.captureCPUProfile(baseName); err != nil {
			log.Printf("Error capturing CPU profile: %v", err)
		}
	}()
	return nil
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("CPU profile saved to %s (HeapAlloc=%d KB, NumGC=%d)", profilePath, m.HeapAlloc/1024, m.NumGC)
	return nil
}
