package server

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"sync"
	"time"

	"atsgauge/internal/config"
	"atsgauge/internal/errors"
	"atsgauge/internal/observability"
)

// CertReloader serves the current server certificate and swaps it in place
// when the watched certificate files change on disk.
type CertReloader struct {
	mu          sync.RWMutex
	cert        *tls.Certificate
	leaf        *x509.Certificate
	reloadCount int64

	certFile string
	keyFile  string
	caFile   string

	watcher *CertWatcher
	om      *observability.ObservabilityManager
	logger  *errors.Logger
}

// NewCertReloader creates a reloader for file-based certificates.
// Certificates supplied as inline content cannot be watched.
func NewCertReloader(tlsCfg *config.TLSConfig, om *observability.ObservabilityManager, logger *errors.Logger) (*CertReloader, error) {
	if tlsCfg.CertFile == "" || tlsCfg.KeyFile == "" {
		return nil, fmt.Errorf("certificate auto-reload requires certFile and keyFile paths")
	}

	return &CertReloader{
		certFile: tlsCfg.CertFile,
		keyFile:  tlsCfg.KeyFile,
		caFile:   tlsCfg.CAFile,
		om:       om,
		logger:   logger,
	}, nil
}

// Start loads the initial certificate and begins watching for changes.
func (cr *CertReloader) Start(debounceDelay time.Duration) error {
	if err := cr.reload(); err != nil {
		return fmt.Errorf("failed to load initial certificate: %w", err)
	}

	watcher, err := NewCertWatcher(cr.certFile, cr.keyFile, cr.caFile, debounceDelay, cr.onFilesChanged, cr.logger)
	if err != nil {
		return fmt.Errorf("failed to create certificate watcher: %w", err)
	}
	cr.watcher = watcher

	return cr.watcher.Start()
}

// Stop stops the file watcher.
func (cr *CertReloader) Stop() error {
	if cr.watcher == nil {
		return nil
	}
	return cr.watcher.Stop()
}

// onFilesChanged is the watcher callback. Reload failures keep the previous
// certificate in place so the server stays up on a bad rotation.
func (cr *CertReloader) onFilesChanged() {
	if err := cr.reload(); err != nil {
		if cr.logger != nil {
			cr.logger.LogError(err, "Failed to reload TLS certificates, keeping previous certificate")
		}
		if cr.om != nil {
			cr.om.GetMetrics().RecordCertReload(context.Background(), false, 0)
		}
		return
	}

	if cr.logger != nil {
		cr.logger.Info("TLS certificates reloaded successfully",
			"cert_file", cr.certFile,
			"reload_count", cr.ReloadCount())
	}
}

// reload loads the certificate pair from disk and swaps it in.
func (cr *CertReloader) reload() error {
	cert, err := tls.LoadX509KeyPair(cr.certFile, cr.keyFile)
	if err != nil {
		return fmt.Errorf("failed to load server cert/key: %w", err)
	}

	leaf, err := x509.ParseCertificate(cert.Certificate[0])
	if err != nil {
		return fmt.Errorf("failed to parse server certificate: %w", err)
	}

	cr.mu.Lock()
	cr.cert = &cert
	cr.leaf = leaf
	cr.reloadCount++
	cr.mu.Unlock()

	if cr.om != nil {
		cr.om.GetMetrics().RecordCertReload(context.Background(), true, time.Until(leaf.NotAfter).Seconds())
	}

	return nil
}

// GetCertificate returns the current certificate for tls.Config.GetCertificate.
func (cr *CertReloader) GetCertificate(*tls.ClientHelloInfo) (*tls.Certificate, error) {
	cr.mu.RLock()
	defer cr.mu.RUnlock()

	if cr.cert == nil {
		return nil, fmt.Errorf("no certificate loaded")
	}
	return cr.cert, nil
}

// CheckExpiry returns the time remaining until the current leaf certificate expires.
func (cr *CertReloader) CheckExpiry() (time.Duration, error) {
	cr.mu.RLock()
	defer cr.mu.RUnlock()

	if cr.leaf == nil {
		return 0, fmt.Errorf("no certificate loaded")
	}
	return time.Until(cr.leaf.NotAfter), nil
}

// ReloadCount returns the number of successful certificate loads.
func (cr *CertReloader) ReloadCount() int64 {
	cr.mu.RLock()
	defer cr.mu.RUnlock()
	return cr.reloadCount
}

// IsWatching reports whether the file watcher is running.
func (cr *CertReloader) IsWatching() bool {
	return cr.watcher != nil && cr.watcher.IsRunning()
}

// WatchedFiles returns the certificate files being watched.
func (cr *CertReloader) WatchedFiles() []string {
	if cr.watcher == nil {
		return nil
	}
	return cr.watcher.GetWatchedFiles()
}
