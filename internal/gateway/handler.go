package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// forwardTimeout bounds every call from the gateway to a resource service.
const forwardTimeout = 10 * time.Second

// Handler translates human-facing gateway routes into calls against the
// registered resource services and renders the results as HTML.
type Handler struct {
	registry *Registry
	client   *http.Client
	log      *zap.Logger
}

// NewHandler creates a new gateway Handler over the given registry.
func NewHandler(registry *Registry, log *zap.Logger) *Handler {
	return &Handler{
		registry: registry,
		client:   &http.Client{Timeout: forwardTimeout},
		log:      log,
	}
}

// fieldValue pairs a form field with its current value for rendering.
type fieldValue struct {
	Field FormField
	Value string
}

// Index handles GET / and lists the registered services.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"services": h.registry.Names(),
	})
}

// lookupService resolves the :service path segment. An unknown name is a 404
// and nothing is forwarded.
func (h *Handler) lookupService(c *gin.Context) (Service, bool) {
	name := c.Param("service")
	svc, ok := h.registry.Lookup(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "unknown service"})
		return Service{}, false
	}
	return svc, true
}

// List handles GET /:service/ and renders the full entity listing.
func (h *Handler) List(c *gin.Context) {
	svc, ok := h.lookupService(c)
	if !ok {
		return
	}

	body, status, err := h.forward(c.Request.Context(), http.MethodGet, svc.listURL(), nil)
	if err != nil || status < 200 || status > 299 {
		h.upstreamError(c, svc.Name, status, err)
		return
	}

	var items []map[string]any
	if err := json.Unmarshal(body, &items); err != nil {
		h.upstreamError(c, svc.Name, status, err)
		return
	}

	c.HTML(http.StatusOK, "service_list.html", gin.H{
		"service": svc.Name,
		"items":   items,
	})
}

// CreateForm handles GET /:service/create and renders an empty form.
func (h *Handler) CreateForm(c *gin.Context) {
	svc, ok := h.lookupService(c)
	if !ok {
		return
	}

	fields := make([]fieldValue, len(svc.Fields))
	for i, f := range svc.Fields {
		fields[i] = fieldValue{Field: f}
	}

	c.HTML(http.StatusOK, "create_form.html", gin.H{
		"service": svc.Name,
		"fields":  fields,
	})
}

// CreateSubmit handles POST /:service/create: it forwards the form as JSON to
// the service and redirects back to the listing.
func (h *Handler) CreateSubmit(c *gin.Context) {
	svc, ok := h.lookupService(c)
	if !ok {
		return
	}

	payload := h.formPayload(c, svc)
	_, status, err := h.forward(c.Request.Context(), http.MethodPost, svc.listURL(), payload)
	if err != nil || status < 200 || status > 299 {
		h.upstreamError(c, svc.Name, status, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/"+svc.Name+"/")
}

// Detail handles GET /:service/:id and renders a single entity.
func (h *Handler) Detail(c *gin.Context) {
	svc, ok := h.lookupService(c)
	if !ok {
		return
	}

	body, status, err := h.forward(c.Request.Context(), http.MethodGet, svc.itemURL(c.Param("id")), nil)
	if err != nil || status < 200 || status > 299 {
		h.upstreamError(c, svc.Name, status, err)
		return
	}

	var item map[string]any
	if err := json.Unmarshal(body, &item); err != nil {
		h.upstreamError(c, svc.Name, status, err)
		return
	}

	c.HTML(http.StatusOK, "item_detail.html", gin.H{
		"service": svc.Name,
		"item":    item,
	})
}

// EditForm handles GET /:service/edit/:id and renders a form pre-filled with
// the entity's current values.
func (h *Handler) EditForm(c *gin.Context) {
	svc, ok := h.lookupService(c)
	if !ok {
		return
	}

	id := c.Param("id")
	body, status, err := h.forward(c.Request.Context(), http.MethodGet, svc.itemURL(id), nil)
	if err != nil || status < 200 || status > 299 {
		h.upstreamError(c, svc.Name, status, err)
		return
	}

	var item map[string]any
	if err := json.Unmarshal(body, &item); err != nil {
		h.upstreamError(c, svc.Name, status, err)
		return
	}

	fields := make([]fieldValue, len(svc.Fields))
	for i, f := range svc.Fields {
		fields[i] = fieldValue{Field: f, Value: renderValue(item[f.Name])}
	}

	c.HTML(http.StatusOK, "edit_form.html", gin.H{
		"service": svc.Name,
		"id":      id,
		"fields":  fields,
	})
}

// EditSubmit handles POST /:service/edit/:id: it forwards the form as a PUT
// and redirects back to the listing.
func (h *Handler) EditSubmit(c *gin.Context) {
	svc, ok := h.lookupService(c)
	if !ok {
		return
	}

	payload := h.formPayload(c, svc)
	_, status, err := h.forward(c.Request.Context(), http.MethodPut, svc.itemURL(c.Param("id")), payload)
	if err != nil || status < 200 || status > 299 {
		h.upstreamError(c, svc.Name, status, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/"+svc.Name+"/")
}

// Delete handles GET /:service/delete/:id and redirects back to the listing.
func (h *Handler) Delete(c *gin.Context) {
	svc, ok := h.lookupService(c)
	if !ok {
		return
	}

	_, status, err := h.forward(c.Request.Context(), http.MethodDelete, svc.itemURL(c.Param("id")), nil)
	if err != nil || status < 200 || status > 299 {
		h.upstreamError(c, svc.Name, status, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/"+svc.Name+"/")
}

// formPayload builds the JSON payload for a create/edit submission from the
// service's form fields. Number fields are parsed so the backends receive
// typed values; a value that fails to parse is forwarded as-is and rejected
// upstream.
func (h *Handler) formPayload(c *gin.Context, svc Service) map[string]any {
	payload := make(map[string]any, len(svc.Fields))
	for _, f := range svc.Fields {
		raw := c.PostForm(f.Name)
		if f.InputType == "number" {
			if n, err := strconv.ParseFloat(raw, 64); err == nil {
				payload[f.Name] = n
				continue
			}
		}
		payload[f.Name] = raw
	}
	return payload
}

// forward performs one HTTP call against a resource service. A non-nil error
// means the call itself failed; otherwise the caller decides what to do with
// the status.
func (h *Handler) forward(ctx context.Context, method, url string, payload any) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal payload: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("call %s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read %s response: %w", url, err)
	}

	return body, resp.StatusCode, nil
}

// upstreamError renders the opaque error page for a failed downstream call.
// The details go to the log, not to the browser.
func (h *Handler) upstreamError(c *gin.Context, service string, status int, err error) {
	h.log.Error("upstream call failed",
		zap.String("service", service),
		zap.Int("upstream_status", status),
		zap.Error(err),
	)
	c.HTML(http.StatusBadGateway, "error.html", gin.H{
		"service": service,
		"message": "The backing service could not complete the request.",
	})
}

func (s Service) listURL() string {
	return s.BaseURL + "/" + s.Name
}

func (s Service) itemURL(id string) string {
	return s.BaseURL + "/" + s.Name + "/" + id
}

func renderValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
