package proxy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/alexanderramin/solace/internal/companion"
)

// Server fronts the upstream model API. It applies the crisis check
// before any message leaves the process.
type Server struct {
	cfg  Config
	http *http.Client
}

// NewServer creates a proxy Server.
func NewServer(cfg Config) *Server {
	return &Server{
		cfg: cfg,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ChatRequest is the body accepted by POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
	Mood    string `json:"mood"`
}

// ChatResponse is the body returned by POST /chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is the body returned on failure.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// App builds the Fiber application with all routes registered.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))

	app.Get("/healthz", s.health)
	app.Post("/chat", s.chat)

	return app
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: true, Message: "Message is required",
		})
	}

	// Self-harm content never reaches the upstream model.
	if companion.DetectsCrisis(req.Message) {
		return c.JSON(ChatResponse{Response: companion.EmergencyMessage})
	}

	text, err := s.forward(req)
	if err != nil {
		slog.Error("upstream chat failed", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: true, Message: "Upstream chat service unavailable",
		})
	}

	return c.JSON(ChatResponse{Response: text})
}

// upstreamRequest is the Cohere chat request body.
type upstreamRequest struct {
	Model       string  `json:"model"`
	Message     string  `json:"message"`
	Preamble    string  `json:"preamble"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// upstreamResponse is the subset of the Cohere chat response we use.
type upstreamResponse struct {
	Text    string `json:"text"`
	Message string `json:"message"`
}

func (s *Server) forward(req ChatRequest) (string, error) {
	body, err := json.Marshal(upstreamRequest{
		Model:       s.cfg.Model,
		Message:     req.Message,
		Preamble:    systemPreamble(req.Mood),
		MaxTokens:   150,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling upstream request: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, s.cfg.UpstreamURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating upstream request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := s.http.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("reading upstream response: %w", err)
	}

	var resp upstreamResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("decoding upstream response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		if resp.Message != "" {
			return "", fmt.Errorf("upstream returned status %d: %s", httpResp.StatusCode, resp.Message)
		}
		return "", fmt.Errorf("upstream returned status %d", httpResp.StatusCode)
	}

	return resp.Text, nil
}

func systemPreamble(mood string) string {
	if mood == "" {
		mood = "unspecified"
	}
	return fmt.Sprintf(`You are a compassionate AI assistant specializing in mental health and wellbeing support. The user has just indicated they are feeling %q.

Your role is to:
- Provide empathetic, supportive responses
- Offer practical coping strategies and suggestions
- Be encouraging and understanding
- Keep responses concise but meaningful (2-3 sentences max)
- Never provide medical advice, but suggest professional help when appropriate
- Focus on immediate comfort and practical next steps
- If someone mentions any form of self-harm, ALWAYS prioritize their safety and direct them to Australian emergency services: 000 for emergencies, Lifeline 13 11 14, or Beyond Blue 1300 22 4636

Remember to be warm, non-judgmental, and supportive in your tone.`, mood)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(ErrorResponse{Error: true, Message: message})
}
