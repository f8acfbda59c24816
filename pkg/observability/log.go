package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes pipeline and cache events to a logger at debug level.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns hooks that log to l.
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{Logger: l}
}

func (h *LogHooks) OnLoadStart(_ context.Context, path string) {
	h.Logger.Debug("load started", "path", path)
}

func (h *LogHooks) OnLoadComplete(_ context.Context, path string, points int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("load failed", "path", path, "err", err)
		return
	}
	h.Logger.Debug("load complete", "path", path, "points", points, "duration", d)
}

func (h *LogHooks) OnBuildStart(_ context.Context, points int) {
	h.Logger.Debug("build started", "points", points)
}

func (h *LogHooks) OnBuildComplete(_ context.Context, mode string, bars int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("build failed", "err", err)
		return
	}
	h.Logger.Debug("build complete", "mode", mode, "bars", bars, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.Logger.Debug("render started", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	if err != nil {
		h.Logger.Debug("render failed", "formats", formats, "err", err)
		return
	}
	h.Logger.Debug("render complete", "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
)
