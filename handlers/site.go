package handlers

import (
	"context"
	"net/http"

	"binarybyte_site/config"
	"binarybyte_site/models"
	"binarybyte_site/services"
	"binarybyte_site/services/intake"
	"binarybyte_site/templates/components"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// CaptchaVerifier checks a Turnstile response token
type CaptchaVerifier func(ctx context.Context, token, ip string) (bool, error)

// Site carries what the page and contact handlers share
type Site struct {
	Config        *config.Config
	Content       *models.SiteContent
	Forms         *intake.Registry
	Metrics       *services.IntakeMetrics
	VerifyCaptcha CaptchaVerifier
}

// NewSite wires the handlers. Captcha verification is enabled when a
// Turnstile secret is configured.
func NewSite(cfg *config.Config, content *models.SiteContent, forms *intake.Registry, metrics *services.IntakeMetrics) *Site {
	s := &Site{
		Config:  cfg,
		Content: content,
		Forms:   forms,
		Metrics: metrics,
	}
	if cfg.TurnstileSecretKey != "" {
		s.VerifyCaptcha = func(ctx context.Context, token, ip string) (bool, error) {
			return services.VerifyTurnstileToken(ctx, token, cfg.TurnstileSecretKey, ip)
		}
	}
	return s
}

func (s *Site) pageMeta(c echo.Context, seo *models.SEO) components.PageMeta {
	return components.PageMeta{
		SEO:              seo,
		Company:          s.Content.Company,
		AppURL:           s.Config.AppURL,
		Path:             c.Request().URL.Path,
		TurnstileSiteKey: s.Config.TurnstileSiteKey,
	}
}

func (s *Site) formView(snap intake.Snapshot) components.FormView {
	return components.FormView{
		Snapshot:         snap,
		TurnstileSiteKey: s.Config.TurnstileSiteKey,
		ResetDelay:       s.Config.FormResetDelay,
	}
}

func render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response().Writer)
}

// Healthz reports liveness for the load balancer
func (s *Site) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ok",
		"forms":  s.Forms.Len(),
	})
}
