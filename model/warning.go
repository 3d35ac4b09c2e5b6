package model

import (
	"fmt"
	"sync"
)

// Warning records a recoverable problem hit during extraction. Slide is the
// 1-based slide number, or 0 for presentation-level problems. Context names
// the part or element being processed when the problem occurred.
type Warning struct {
	Slide   int
	Context string
	Message string
}

func (w Warning) String() string {
	if w.Slide > 0 {
		return fmt.Sprintf("slide %d: %s: %s", w.Slide, w.Context, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Context, w.Message)
}

// WarningCollector accumulates warnings from concurrent workers. The zero
// value is ready to use.
type WarningCollector struct {
	mu       sync.Mutex
	warnings []Warning
}

// Add records a warning.
func (c *WarningCollector) Add(slide int, context, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.warnings = append(c.warnings, Warning{Slide: slide, Context: context, Message: message})
}

// Addf records a warning with a formatted message.
func (c *WarningCollector) Addf(slide int, context, format string, args ...interface{}) {
	c.Add(slide, context, fmt.Sprintf(format, args...))
}

// List returns a copy of the collected warnings in the order recorded.
func (c *WarningCollector) List() []Warning {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Warning, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Len reports how many warnings have been collected.
func (c *WarningCollector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.warnings)
}
