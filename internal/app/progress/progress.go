// Package progress reports how far a long precomputation has advanced.
package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"go.uber.org/zap"
)

// Reporter receives progress updates. Implementations must tolerate Finish
// without a prior Start.
type Reporter interface {
	Start(total int)
	Increment()
	Finish()
}

// Nop discards all updates.
type Nop struct{}

func (Nop) Start(int)  {}
func (Nop) Increment() {}
func (Nop) Finish()    {}

type Config struct {
	Enabled     bool
	Writer      io.Writer
	Description string
}

// BarReporter draws an mpb progress bar.
type BarReporter struct {
	config    Config
	container *mpb.Progress
	bar       *mpb.Bar
	mu        sync.Mutex
}

func NewBarReporter(config Config) *BarReporter {
	if config.Writer == nil {
		config.Writer = os.Stderr
	}
	if config.Description == "" {
		config.Description = "Computing"
	}
	return &BarReporter{config: config}
}

func (b *BarReporter) Start(total int) {
	if !b.config.Enabled {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	description := b.config.Description
	b.container = mpb.New(
		mpb.WithOutput(b.config.Writer),
		mpb.WithRefreshRate(120*time.Millisecond),
		mpb.WithWaitGroup(&sync.WaitGroup{}),
	)
	b.bar = b.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
			decor.OnComplete(
				decor.EwmaETA(decor.ET_STYLE_GO, 30, decor.WCSyncWidth), " ✓ ",
			),
		),
	)
}

func (b *BarReporter) Increment() {
	if b.bar != nil {
		b.bar.Increment()
	}
}

func (b *BarReporter) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.bar != nil {
		b.bar.SetTotal(b.bar.Current(), true)
	}
	if b.container != nil {
		b.container.Wait()
	}
	b.bar = nil
	b.container = nil
}

// LogReporter logs the completed percentage every Every items.
type LogReporter struct {
	logger *zap.Logger
	every  int
	total  int
	done   int
}

// NewLogReporter logs every 100 items when every <= 0.
func NewLogReporter(logger *zap.Logger, every int) *LogReporter {
	if every <= 0 {
		every = 100
	}
	return &LogReporter{logger: logger, every: every}
}

func (l *LogReporter) Start(total int) {
	l.total = total
	l.done = 0
}

func (l *LogReporter) Increment() {
	l.done++
	if l.total > 0 && l.done%l.every == 0 {
		l.logger.Info("progress",
			zap.Int("done", l.done),
			zap.Int("total", l.total),
			zap.Int("percent", l.done*100/l.total),
		)
	}
}

func (l *LogReporter) Finish() {
	l.logger.Debug("progress finished", zap.Int("done", l.done), zap.Int("total", l.total))
}

// IsTTY reports whether writer is a character device.
func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// ShouldShowProgress is true when forced or when stderr is a terminal.
func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}
	return IsTTY(os.Stderr)
}

// ForTerminal picks a bar on a terminal and periodic log lines otherwise.
func ForTerminal(logger *zap.Logger, forced bool, description string) Reporter {
	if ShouldShowProgress(forced) {
		return NewBarReporter(Config{Enabled: true, Writer: os.Stderr, Description: description})
	}
	if logger == nil {
		return Nop{}
	}
	return NewLogReporter(logger, 100)
}
