package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-vocab-keeper/internal/adapter"
	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
)

const defaultProbeInterval = 15 * time.Second

// networkListener receives connectivity transitions.
type networkListener interface {
	OnNetworkOnline(ctx context.Context)
	OnNetworkOffline()
}

type clientNetworkMonitor struct {
	remote   adapter.RemoteStore
	listener networkListener
	interval time.Duration
	timeout  time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientNetworkMonitor creates a monitor that pings remote every interval
// and notifies listener when reachability changes. The first probe always
// reports its outcome.
func NewClientNetworkMonitor(remote adapter.RemoteStore, listener networkListener, interval, timeout time.Duration, logger *logger.Logger) ClientNetworkMonitor {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &clientNetworkMonitor{
		remote:   remote,
		listener: listener,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

// Start implements ClientNetworkMonitor. It is a no-op without a remote store.
func (m *clientNetworkMonitor) Start(ctx context.Context) {
	if m.remote == nil {
		return
	}

	m.Stop()

	m.mu.Lock()
	probeCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()

		var known, online bool
		probe := func() {
			reachable := m.probe(probeCtx)
			if probeCtx.Err() != nil {
				return
			}
			if known && reachable == online {
				return
			}
			known, online = true, reachable
			if online {
				m.listener.OnNetworkOnline(probeCtx)
			} else {
				m.listener.OnNetworkOffline()
			}
		}

		probe()

		t := time.NewTicker(m.interval)
		defer t.Stop()

		for {
			select {
			case <-probeCtx.Done():
				return
			case <-t.C:
				probe()
			}
		}
	}()
}

func (m *clientNetworkMonitor) probe(ctx context.Context) bool {
	callCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	if err := m.remote.Ping(callCtx); err != nil {
		m.logger.Debug().Err(err).Msg("remote store is unreachable")
		return false
	}
	return true
}

// Stop implements ClientNetworkMonitor.
func (m *clientNetworkMonitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}
