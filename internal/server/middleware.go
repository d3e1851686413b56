package server

import (
	"log/slog"

	"github.com/alkime/gradients/internal/config"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// editorFeaturePolicy lets the editor page write CSS to the clipboard and
// denies the device features it never needs.
const editorFeaturePolicy = "clipboard-write 'self'; camera 'none'; microphone 'none'; geolocation 'none'"

// securityConfig builds the security header settings. HSTS is only sent in
// production.
func securityConfig(cfg *config.Config) secure.Config {
	hsts := cfg.Env == config.EnvProduction

	stsSeconds := int64(0)
	if hsts {
		stsSeconds = int64(cfg.HSTSMaxAge)
	}

	return secure.Config{
		STSSeconds:            stsSeconds,
		STSIncludeSubdomains:  true,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		IENoOpen:              true, // exports are served as downloads
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		FeaturePolicy:         editorFeaturePolicy,
		ContentSecurityPolicy: config.BuildCSP(cfg.CSPMode),
	}
}

// setupSecurityMiddleware applies the security headers to every response,
// static editor files included.
func setupSecurityMiddleware(router *gin.Engine, cfg *config.Config, logger *slog.Logger) {
	router.Use(secure.New(securityConfig(cfg)))

	logger.Debug("Configured security middleware",
		"hsts_enabled", cfg.Env == config.EnvProduction,
		"csp_mode", cfg.CSPMode,
	)
}
