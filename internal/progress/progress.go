package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Printer renders the planner's sequential console output: the overview
// announcement, one line per section, and a closing count line. There is no
// animation; the line order is part of the CLI contract and must stay
// stable when piped.
type Printer struct {
	writer    io.Writer
	total     int
	startTime time.Time
	mu        sync.Mutex
}

// NewPrinter creates a printer for a run with the given section total.
func NewPrinter(w io.Writer, total int) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		writer:    w,
		total:     total,
		startTime: time.Now(),
	}
}

// Overview announces the overview document write.
func (p *Printer) Overview(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.writer, "Wrote overview: %s\n", path)
}

// Section announces that a section is being generated. index is 1-based.
func (p *Printer) Section(index int, id, title string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.writer, "[%d/%d] Generating section: %s - %s\n", index, p.total, id, title)
}

// Finish prints the closing count line.
func (p *Printer) Finish(dir string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.writer, "Wrote %d detailed section files in %s\n", p.total, dir)
}

// Elapsed returns the time since the printer was created.
func (p *Printer) Elapsed() time.Duration {
	return time.Since(p.startTime)
}

// FormatDuration formats a duration for display
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%dm%ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
