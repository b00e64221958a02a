package server

import (
	"time"

	"atsgauge/internal/config"
	"atsgauge/internal/engine"
	atsgaugeErrors "atsgauge/internal/errors"
	"atsgauge/internal/types"

	"github.com/go-playground/validator/v10"
)

// ScoreRequest represents the request body for the score endpoint
type ScoreRequest struct {
	Text                 string `json:"text" validate:"required"`
	PageCount            int    `json:"pageCount" validate:"omitempty,min=0,max=100"`
	HasImages            bool   `json:"hasImages"`
	HasComplexFormatting bool   `json:"hasComplexFormatting"`
}

// Metadata converts the request metadata fields to the engine's input form.
func (r ScoreRequest) Metadata() types.ResumeMetadata {
	return types.ResumeMetadata{
		PageCount:            r.PageCount,
		HasImages:            r.HasImages,
		HasComplexFormatting: r.HasComplexFormatting,
	}
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// Certificate reloading
	CertReloader *CertReloader

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Scoring engine and request validation
	Engine    *engine.Engine
	Validator *validator.Validate

	// Logger
	Logger *atsgaugeErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *atsgaugeErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	eng := engine.New(engine.Config{
		MinTextLength: appCfg.Engine.MinTextLength,
		Parallel:      appCfg.Engine.Parallel,
	})

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Engine:         eng,
		Validator:      validator.New(),
		Logger:         logger,
	}
}
