package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/Joako199002/proyecto-alzarea/pkg/catalog"
	"github.com/Joako199002/proyecto-alzarea/pkg/chat"
	"github.com/Joako199002/proyecto-alzarea/pkg/clients/groq"
	"github.com/Joako199002/proyecto-alzarea/pkg/config"
	"github.com/Joako199002/proyecto-alzarea/pkg/repository/upload"
	"github.com/Joako199002/proyecto-alzarea/pkg/session"
)

// Advisor runs conversational turns for the handlers.
type Advisor interface {
	Respond(ctx context.Context, sessionID, message string) (string, error)
	RespondToUpload(ctx context.Context, sessionID, storedName string) (string, error)
}

// Handlers implements the HTTP surface of the advisor backend.
type Handlers struct {
	advisor Advisor
	store   session.Store
	uploads upload.Repository
	cfg     config.Config
}

// NewHandlers constructs Handlers with provided collaborators.
func NewHandlers(advisor Advisor, store session.Store, uploads upload.Repository, cfg config.Config) *Handlers {
	return &Handlers{advisor: advisor, store: store, uploads: uploads, cfg: cfg}
}

// Register mounts all routes on e.
func (h *Handlers) Register(e *echo.Echo) {
	e.POST("/chat", h.Chat)
	e.POST("/reiniciar", h.Reset)
	e.GET("/health", h.Health)
	e.POST("/subir-imagen", h.UploadImage)
	e.GET("/imagen-diseno/:nombre", h.DesignImage)
}

type chatRequest struct {
	Mensaje   string `json:"mensaje"`
	SessionID string `json:"sessionId"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Chat handles POST /chat.
func (h *Handlers) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Cuerpo de solicitud inválido"})
	}
	if strings.TrimSpace(req.Mensaje) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Mensaje es requerido"})
	}

	reply, err := h.advisor.Respond(c.Request().Context(), req.SessionID, req.Mensaje)
	if err != nil {
		return h.turnError(c, err)
	}
	return c.JSON(http.StatusOK, chatResponse{Reply: reply})
}

// turnError maps completion failures to the client-facing contract:
// 408 for timeouts with a retry hint, 500 otherwise with detail echoed
// only in development mode.
func (h *Handlers) turnError(c echo.Context, err error) error {
	if errors.Is(err, chat.ErrEmptyMessage) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Mensaje es requerido"})
	}
	if errors.Is(err, groq.ErrTimeout) {
		return c.JSON(http.StatusRequestTimeout, errorResponse{Error: "Tiempo de espera agotado. Por favor, intenta de nuevo."})
	}

	log.Ctx(c.Request().Context()).Error().Err(err).Msg("chat turn failed")
	resp := errorResponse{Error: "Lo siento, hubo un error al procesar tu solicitud."}
	if h.cfg.IsDevelopment() {
		resp.Details = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, resp)
}

type resetRequest struct {
	SessionID string `json:"sessionId"`
}

// Reset handles POST /reiniciar. Deleting an absent session still succeeds.
func (h *Handlers) Reset(c echo.Context) error {
	var req resetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Cuerpo de solicitud inválido"})
	}
	id := req.SessionID
	if id == "" {
		id = session.DefaultID
	}
	h.store.Reset(id)
	return c.JSON(http.StatusOK, map[string]string{"message": "Conversación reiniciada"})
}

// Health handles GET /health.
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":    "OK",
		"timestamp": time.Now().Format(time.RFC3339),
		"port":      h.cfg.Port,
	})
}

// DesignImage handles GET /imagen-diseno/:nombre.
func (h *Handlers) DesignImage(c echo.Context) error {
	nombre := c.Param("nombre")
	design, ok := catalog.Lookup(nombre)
	if !ok {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "Diseño no encontrado"})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"url":    fmt.Sprintf("%s://%s/imagenes/%s.jpg", c.Scheme(), c.Request().Host, design.ImageFile),
		"nombre": nombre,
	})
}

type uploadResponse struct {
	Reply     string `json:"reply"`
	ImagenURL string `json:"imagenUrl"`
}

// UploadImage handles POST /subir-imagen: multipart form with an "imagen"
// file and optional sessionId. Only image MIME types are accepted.
func (h *Handlers) UploadImage(c echo.Context) error {
	file, err := c.FormFile("imagen")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "No se proporcionó ninguna imagen"})
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Solo se permiten archivos de imagen"})
	}
	if max := h.cfg.Uploads.MaxSizeMB * 1024 * 1024; file.Size > max {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "La imagen excede el tamaño máximo permitido"})
	}

	src, err := file.Open()
	if err != nil {
		return h.uploadError(c, err)
	}
	defer src.Close()

	storedName, err := h.uploads.Save(c.Request().Context(), file.Filename, src)
	if err != nil {
		return h.uploadError(c, err)
	}

	reply, err := h.advisor.RespondToUpload(c.Request().Context(), c.FormValue("sessionId"), storedName)
	if err != nil {
		if errors.Is(err, groq.ErrTimeout) {
			return c.JSON(http.StatusRequestTimeout, errorResponse{Error: "Tiempo de espera agotado. Por favor, intenta de nuevo."})
		}
		return h.uploadError(c, err)
	}

	return c.JSON(http.StatusOK, uploadResponse{
		Reply:     reply,
		ImagenURL: "/uploads/" + storedName,
	})
}

func (h *Handlers) uploadError(c echo.Context, err error) error {
	log.Ctx(c.Request().Context()).Error().Err(err).Msg("image upload failed")
	resp := errorResponse{Error: "Error al procesar la imagen"}
	if h.cfg.IsDevelopment() {
		resp.Details = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, resp)
}
