package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"DomainWorth/internal/domain/models"
	domrepo "DomainWorth/internal/domain/repository"
	"DomainWorth/internal/service/ratelimit"
	"DomainWorth/internal/usecase"
	xhttp "DomainWorth/pkg/http"
	xlogger "DomainWorth/pkg/logger"
)

// AppraisalEchoHandler exposes the appraisal API over Echo.
type AppraisalEchoHandler struct {
	log           *xlogger.Logger
	appraiser     *usecase.Appraiser
	usage         domrepo.UsageStore
	limiter       *ratelimit.Limiter
	dailyLimit    int
	retentionDays int
	adminKey      string
	aiEnabled     bool
}

func NewAppraisalEchoHandler(
	log *xlogger.Logger,
	appraiser *usecase.Appraiser,
	usage domrepo.UsageStore,
	limiter *ratelimit.Limiter,
	dailyLimit int,
	retentionDays int,
	adminKey string,
	aiEnabled bool,
) *AppraisalEchoHandler {
	return &AppraisalEchoHandler{
		log:           log,
		appraiser:     appraiser,
		usage:         usage,
		limiter:       limiter,
		dailyLimit:    dailyLimit,
		retentionDays: retentionDays,
		adminKey:      adminKey,
		aiEnabled:     aiEnabled,
	}
}

// RegisterRoutes implements pkg/http.Handler.
func (h *AppraisalEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
	api := e.Group("/api")
	api.POST("/appraise", h.Appraise)
	api.GET("/sales", h.Sales)
	api.GET("/usage", h.Usage)
	api.POST("/admin/reset-limits", h.ResetLimits)
}

// Appraise values one domain. Guarded by the per-client burst limiter and
// the daily quota; both refusals use HTTP 429.
func (h *AppraisalEchoHandler) Appraise(c echo.Context) error {
	ip := c.RealIP()
	userAgent := c.Request().UserAgent()

	if !h.limiter.Allow(ip) {
		return xhttp.TooManyRequestsResponse(c, models.QuotaExceeded{
			Error:   "Too many requests",
			Message: "Slow down and retry in a few seconds",
		})
	}

	req := new(models.AppraiseRequest)
	if errs := xhttp.ReadAndValidateRequest(c, req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}

	domain := strings.ToLower(strings.TrimSpace(req.Domain))

	decision := h.usage.Allow(c.Request().Context(), ip, userAgent)
	if !decision.Allowed {
		return xhttp.TooManyRequestsResponse(c, models.QuotaExceeded{
			Error:     "Daily limit exceeded",
			Message:   decision.Message,
			Remaining: decision.Remaining,
			ResetTime: decision.ResetTime,
		})
	}

	withInsight := req.UseAI && h.aiEnabled
	result, aiInsight, err := h.appraiser.Appraise(c.Request().Context(), domain, withInsight)
	if err != nil {
		h.log.Error("appraisal failed", xlogger.String("domain", domain), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalErrorf("appraisal failed: %v", err))
	}

	return xhttp.SuccessResponse(c, models.AppraiseResponse{
		Domain:         result.Domain,
		EstimatedPrice: result.EstimatedPrice,
		Confidence:     result.Confidence,
		Reasons:        result.Reasons,
		Category:       result.Category,
		Comparables:    result.SalesComparables,
		AtomListings:   result.ListingComparables,
		AIInsight:      aiInsight,
		UsageInfo: models.UsageInfo{
			RemainingRequests: decision.Remaining,
			DailyLimit:        h.dailyLimit,
			Message:           decision.Message,
		},
	})
}

// Sales pages through the sales snapshot, newest first.
func (h *AppraisalEchoHandler) Sales(c echo.Context) error {
	req := new(models.SalesRequest)
	if errs := xhttp.ReadAndValidateRequest(c, req); errs != nil {
		return xhttp.BadRequestResponse(c, errs)
	}

	page, err := h.appraiser.LatestSales(c.Request().Context(), req.Page, req.Size)
	if err != nil {
		h.log.Error("sales listing failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalErrorf("sales unavailable: %v", err))
	}

	return xhttp.SuccessResponse(c, page)
}

// Usage reports the caller's consumption for the current day.
func (h *AppraisalEchoHandler) Usage(c echo.Context) error {
	stats := h.usage.Stats(c.Request().Context(), c.RealIP(), c.Request().UserAgent())
	return xhttp.SuccessResponse(c, stats)
}

// Health also runs the retention sweep so stale usage rows do not need a
// separate scheduler.
func (h *AppraisalEchoHandler) Health(c echo.Context) error {
	if err := h.usage.Cleanup(c.Request().Context(), h.retentionDays); err != nil {
		h.log.Warn("usage cleanup failed", xlogger.Error(err))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ResetLimits clears every usage row. The admin secret arrives as a
// query parameter; a JSON body also works. Echo does not bind query
// params on POST, so the param is read explicitly.
func (h *AppraisalEchoHandler) ResetLimits(c echo.Context) error {
	secret := c.QueryParam("secret_key")
	if secret == "" {
		req := new(models.ResetLimitsRequest)
		if err := c.Bind(req); err == nil {
			secret = req.SecretKey
		}
	}

	if h.adminKey == "" || secret != h.adminKey {
		return c.JSON(http.StatusForbidden, map[string]string{
			"error": "Invalid secret key",
		})
	}

	if err := h.usage.Reset(c.Request().Context()); err != nil {
		h.log.Error("limit reset failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalErrorf("reset failed: %v", err))
	}

	h.log.Info("usage limits reset", xlogger.String("ip", c.RealIP()))
	return xhttp.SuccessResponse(c, map[string]string{
		"message": "All rate limits have been reset",
	})
}
