package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mymmrac/telego"

	"tg-supportbot/internal/config"
	"tg-supportbot/internal/crash"
	"tg-supportbot/internal/logger"
)

const webhookPath = "/api/webhook"

// UpdateHandler routes one decoded update. A returned error is reported
// in the webhook response body; it never escapes as an HTTP failure.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update telego.Update) error
}

// WebhookServer serves the webhook, health and registration endpoints.
type WebhookServer struct {
	server   *http.Server
	bot      *telego.Bot
	handler  UpdateHandler
	certFile string
	keyFile  string
}

// NewWebhookServer wires the HTTP endpoints and registers the configured
// webhook endpoint with Telegram when one is set. With no configured
// endpoint the registration endpoint can be used after deployment.
func NewWebhookServer(ctx context.Context, b *telego.Bot, handler UpdateHandler, cfg *config.Config) (*WebhookServer, error) {
	ws := &WebhookServer{
		bot:      b,
		handler:  handler,
		certFile: cfg.Bot.Webhook.CertFile,
		keyFile:  cfg.Bot.Webhook.KeyFile,
	}

	if cfg.Bot.Webhook.Endpoint != "" {
		if err := ws.registerWebhook(ctx, cfg.Bot.Webhook.Endpoint); err != nil {
			return nil, err
		}
	}

	mux := http.NewServeMux()
	mux.HandleFunc(webhookPath, ws.handleWebhook)
	mux.HandleFunc("/api/health", ws.handleHealth)
	mux.HandleFunc("/api/setwebhook", ws.handleSetWebhook)

	ws.server = &http.Server{
		Addr:    "0.0.0.0:" + cfg.Bot.Webhook.ListenPort,
		Handler: mux,
	}

	return ws, nil
}

// Start starts the webhook server
func (ws *WebhookServer) Start() error {
	logger.Infof("Starting HTTP server on %s", ws.server.Addr)

	if ws.certFile != "" && ws.keyFile != "" {
		logger.Infof("Using TLS with cert: %s, key: %s", ws.certFile, ws.keyFile)
		return ws.server.ListenAndServeTLS(ws.certFile, ws.keyFile)
	}

	logger.Infof("WARNING: Running without TLS. Make sure you have a HTTPS proxy in front of this server")
	return ws.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (ws *WebhookServer) Shutdown(ctx context.Context) error {
	return ws.server.Shutdown(ctx)
}

func (ws *WebhookServer) registerWebhook(ctx context.Context, endpoint string) error {
	logger.Infof("Setting webhook to: %s", endpoint)
	err := ws.bot.SetWebhook(ctx, &telego.SetWebhookParams{
		URL:            endpoint,
		AllowedUpdates: []string{"message", "callback_query"},
	})
	if err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}

	info, err := ws.bot.GetWebhookInfo(ctx)
	if err != nil {
		logger.Warningf("Failed to get webhook info: %v", err)
		return nil
	}
	logger.Infof("Webhook info: URL=%s, PendingUpdateCount=%d", info.URL, info.PendingUpdateCount)
	if info.LastErrorDate > 0 {
		logger.Warningf("Webhook last error: [%d] %s", info.LastErrorDate, info.LastErrorMessage)
	}
	return nil
}

// handleWebhook decodes one update and routes it. The response is always
// 200 with a JSON status body: a malformed or failed update is reported
// in the body and otherwise dropped, so a bad update can never wedge the
// delivery loop on the Telegram side.
func (ws *WebhookServer) handleWebhook(w http.ResponseWriter, r *http.Request) {
	defer crash.RecoverWithStack("webhook")

	if r.Method != http.MethodPost {
		writeJSON(w, map[string]string{"status": "error", "message": "POST required"})
		return
	}

	var update telego.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger.Warningf("Webhook decode error: %v", err)
		writeJSON(w, map[string]string{"status": "error", "message": "invalid update payload"})
		return
	}

	logger.Infof("Received update: %d", update.UpdateID)

	if err := ws.handler.HandleUpdate(r.Context(), update); err != nil {
		logger.Errorf("Error processing update %d: %v", update.UpdateID, err)
		writeJSON(w, map[string]string{"status": "error", "message": err.Error()})
		return
	}

	writeJSON(w, map[string]string{"status": "ok"})
}

func (ws *WebhookServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handleSetWebhook registers the webhook URL built from the incoming
// request's scheme and host, for deployments where the external address
// is only known once traffic arrives.
func (ws *WebhookServer) handleSetWebhook(w http.ResponseWriter, r *http.Request) {
	scheme := "https"
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if r.TLS == nil {
		scheme = "http"
	}
	webhookURL := fmt.Sprintf("%s://%s%s", scheme, r.Host, webhookPath)

	err := ws.bot.SetWebhook(r.Context(), &telego.SetWebhookParams{
		URL:            webhookURL,
		AllowedUpdates: []string{"message", "callback_query"},
	})
	if err != nil {
		logger.Errorf("Error setting webhook: %v", err)
		writeJSON(w, map[string]interface{}{"success": false, "error": err.Error()})
		return
	}

	writeJSON(w, map[string]interface{}{"success": true, "webhook": webhookURL})
}

func writeJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warningf("Error writing response: %v", err)
	}
}
