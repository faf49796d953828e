package harvest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/config"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/harvest/store"
)

var (
	// ErrNotStarted is returned when refreshing a connector before Start
	ErrNotStarted = errors.New("harvest connector not started")
	// ErrAlreadyStarted is returned by a second Start
	ErrAlreadyStarted = errors.New("harvest connector already started")
)

// StoreOpener opens the store of one catalog target
type StoreOpener func(ctx context.Context, target config.CatalogTarget) (store.SyncStore, error)

// TargetStatus reports the outcome of the last refresh of a catalog target
type TargetStatus struct {
	Name        string    `json:"name"`
	Connected   bool      `json:"connected"`
	SweepID     string    `json:"sweepId,omitempty"`
	LastRefresh time.Time `json:"lastRefresh,omitempty"`
	Duration    string    `json:"duration,omitempty"`
	Stats       Stats     `json:"stats"`
	LastError   string    `json:"lastError,omitempty"`
}

// Connector harvests survey reports into every configured catalog target
type Connector struct {
	source  MetadataSource
	open    StoreOpener
	targets []config.CatalogTarget
	cfg     ProcessorConfig
	logger  *zap.Logger

	// refreshMu keeps refreshes from overlapping
	refreshMu sync.Mutex

	mu         sync.RWMutex
	stores     []store.SyncStore
	processors []*CatalogTargetProcessor
	status     []TargetStatus

	trigger chan struct{}

	onRefreshed func(TargetStatus)
}

// NewConnector creates a connector for targets. Nothing is opened until Start.
func NewConnector(source MetadataSource, open StoreOpener, targets []config.CatalogTarget, cfg ProcessorConfig) *Connector {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	status := make([]TargetStatus, len(targets))
	for i, t := range targets {
		status[i].Name = t.Name
	}
	return &Connector{
		source:  source,
		open:    open,
		targets: targets,
		cfg:     cfg,
		logger:  cfg.Logger.Named("harvest"),
		status:  status,
		trigger: make(chan struct{}, 1),
	}
}

// Start opens and checks the store of every catalog target. If any target
// cannot be opened, the stores opened so far are closed again.
func (c *Connector) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.processors != nil {
		return ErrAlreadyStarted
	}

	var stores []store.SyncStore
	fail := func(err error) error {
		for _, st := range stores {
			_ = st.Close()
		}
		return err
	}

	processors := make([]*CatalogTargetProcessor, 0, len(c.targets))
	for _, target := range c.targets {
		st, err := c.open(ctx, target)
		if err != nil {
			return fail(fmt.Errorf("opening catalog target %s: %w", target.Name, err))
		}
		stores = append(stores, st)
		if err := st.CheckConnectivity(ctx); err != nil {
			return fail(fmt.Errorf("catalog target %s unreachable: %w", target.Name, err))
		}

		cfg := c.cfg
		cfg.Logger = c.logger.With(zap.String("target", target.Name))
		processors = append(processors, NewCatalogTargetProcessor(c.source, st, cfg))
	}

	c.stores = stores
	c.processors = processors
	for i := range c.status {
		c.status[i].Connected = true
	}
	c.logger.Info("Connected to catalog targets", zap.Int("targets", len(processors)))
	return nil
}

// Refresh runs one sweep over every catalog target in turn. A failing
// target does not stop the others; all failures are returned together.
func (c *Connector) Refresh(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	c.mu.RLock()
	processors := c.processors
	c.mu.RUnlock()
	if processors == nil {
		return ErrNotStarted
	}

	sweepID := uuid.NewString()
	logger := c.logger.With(zap.String("sweep", sweepID))

	var errs []error
	for i, proc := range processors {
		name := c.targets[i].Name
		started := time.Now()
		stats, err := proc.Refresh(ctx)
		elapsed := time.Since(started)

		c.mu.Lock()
		st := &c.status[i]
		st.SweepID = sweepID
		st.LastRefresh = started.UTC()
		st.Duration = elapsed.String()
		st.Stats = stats
		st.LastError = ""
		if err != nil {
			st.LastError = err.Error()
		}
		snapshot, notify := *st, c.onRefreshed
		c.mu.Unlock()

		if notify != nil {
			notify(snapshot)
		}

		if err != nil {
			logger.Error("Catalog target refresh failed", zap.String("target", name), zap.Error(err))
			errs = append(errs, fmt.Errorf("catalog target %s: %w", name, err))
			continue
		}
		logger.Info("Catalog target refreshed",
			zap.String("target", name),
			zap.Duration("elapsed", elapsed),
			zap.Int("reports", stats.Reports),
			zap.Int("annotations", stats.Annotations),
			zap.Int("inserted", stats.Inserted),
			zap.Int("unchanged", stats.Unchanged),
		)
	}
	return errors.Join(errs...)
}

// OnTargetRefreshed registers fn to be called with the status of every
// catalog target after it is refreshed. Call before Start.
func (c *Connector) OnTargetRefreshed(fn func(TargetStatus)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onRefreshed = fn
}

// Trigger asks a running Run loop for an immediate refresh. Requests made
// while one is already pending are coalesced.
func (c *Connector) Trigger() {
	select {
	case c.trigger <- struct{}{}:
	default:
	}
}

// Run refreshes immediately and then every interval, or sooner when
// triggered, until ctx is done. Refresh failures are logged and retried on
// the next tick.
func (c *Connector) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("invalid refresh interval %s", interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := c.Refresh(ctx); err != nil {
			if errors.Is(err, ErrNotStarted) {
				return err
			}
			if ctx.Err() != nil {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		case <-c.trigger:
		}
	}
}

// Status returns a copy of the status of every catalog target
func (c *Connector) Status() []TargetStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]TargetStatus, len(c.status))
	copy(out, c.status)
	return out
}

// Disconnect closes every store. The connector may be started again.
func (c *Connector) Disconnect() error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for i, st := range c.stores {
		if err := st.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing catalog target %s: %w", c.targets[i].Name, err))
		}
	}
	c.stores = nil
	c.processors = nil
	for i := range c.status {
		c.status[i].Connected = false
	}
	return errors.Join(errs...)
}
