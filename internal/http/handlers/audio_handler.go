package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Synthesizer turns narration text into a stored audio file.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice string) (string, error)
	Resolve(filename string) (string, error)
}

type AudioHandler struct {
	speech Synthesizer
}

func NewAudioHandler(speech Synthesizer) *AudioHandler {
	return &AudioHandler{speech: speech}
}

type generateAudioReq struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

// Generate handles POST /api/generate-audio.
func (h *AudioHandler) Generate(c *gin.Context) {
	if h.speech == nil {
		writeError(c, http.StatusServiceUnavailable, "audio narration is not configured")
		return
	}
	var body generateAudioReq
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(body.Text) == "" {
		writeError(c, http.StatusBadRequest, "text is required")
		return
	}

	filename, err := h.speech.Synthesize(c.Request.Context(), body.Text, body.Voice)
	if err != nil {
		writeError(c, http.StatusBadGateway, "audio synthesis failed")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"filename":  filename,
		"audio_url": "/api/audio/" + filename,
	})
}

// Serve handles GET /api/audio/:filename.
func (h *AudioHandler) Serve(c *gin.Context) {
	if h.speech == nil {
		writeError(c, http.StatusServiceUnavailable, "audio narration is not configured")
		return
	}
	path, err := h.speech.Resolve(c.Param("filename"))
	if err != nil {
		writeError(c, http.StatusNotFound, "audio file not found")
		return
	}
	c.Header("Content-Type", "audio/mpeg")
	c.File(path)
}
