package sourceapi

import (
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"

	"github.com/pitchmetrics/pitchmetrics/internal/platform/logging"
)

// ImageResolver fetches entity image URLs. Lookups are best-effort: any
// failure yields "" so a missing image can never abort a mapping.
type ImageResolver struct {
	client  *fasthttp.Client
	baseURL string
	token   string
	timeout time.Duration
	logger  *logging.Logger
}

type ImageResolverConfig struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
	Logger   *logging.Logger
}

func NewImageResolver(cfg ImageResolverConfig) *ImageResolver {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &ImageResolver{
		client: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:   strings.TrimSpace(cfg.APIToken),
		timeout: timeout,
		logger:  logger,
	}
}

// EntityImage returns the image URL for kind ("team", "player", "coach",
// "referee") and id, or "" when the lookup fails in any way.
func (r *ImageResolver) EntityImage(kind string, id int64) string {
	if r == nil || r.baseURL == "" || kind == "" || id <= 0 {
		return ""
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(r.baseURL + "/images/" + kind + "/" + strconv.FormatInt(id, 10))
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	if err := r.client.DoTimeout(req, resp, r.timeout); err != nil {
		r.logger.Debug("image lookup failed", "kind", kind, "id", id, "error", err)
		return ""
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return ""
	}

	var env envelope
	if err := sonic.Unmarshal(resp.Body(), &env); err != nil {
		return ""
	}
	if env.Result != resultSuccess || len(env.Data) == 0 {
		return ""
	}

	var payload imagePayload
	if err := sonic.Unmarshal(env.Data, &payload); err != nil {
		return ""
	}

	return payload.URL
}
