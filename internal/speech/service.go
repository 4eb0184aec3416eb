// README: ElevenLabs narration synthesis and audio file store.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const elevenLabsEndpoint = "https://api.elevenlabs.io/v1/text-to-speech"

// voiceIDs maps friendly voice names to ElevenLabs voice identifiers.
var voiceIDs = map[string]string{
	"rachel": "21m00Tcm4TlvDq8ikWAM",
	"bella":  "EXAVITQu4vr4xnSDxMaL",
	"adam":   "pNInz6obpgDQGcFmaJgB",
}

const defaultVoice = "rachel"

// Service synthesizes narration audio for attractions and serves the
// resulting files from a local directory.
type Service struct {
	apiKey   string
	endpoint string
	dir      string
	client   *http.Client
}

// NewService creates the speech service. dir is created if missing.
func NewService(apiKey, dir string) (*Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("speech: create audio dir: %w", err)
	}
	return &Service{
		apiKey:   apiKey,
		endpoint: elevenLabsEndpoint,
		dir:      dir,
		client:   &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// Configured reports whether an API key is present. Used by the health check.
func (s *Service) Configured() bool { return s.apiKey != "" }

type ttsRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// Synthesize converts text to speech and stores the MP3 under a random
// filename, which it returns for later serving via Resolve.
func (s *Service) Synthesize(ctx context.Context, text, voice string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("speech: api key not configured")
	}
	voiceID, ok := voiceIDs[strings.ToLower(voice)]
	if !ok {
		voiceID = voiceIDs[defaultVoice]
	}

	reqBody, err := json.Marshal(ttsRequest{Text: text, ModelID: "eleven_multilingual_v2"})
	if err != nil {
		return "", fmt.Errorf("speech: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/"+voiceID, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("speech: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("speech: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("speech: upstream status %d: %s", resp.StatusCode, body)
	}

	filename := uuid.NewString() + ".mp3"
	f, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("speech: create audio file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		return "", fmt.Errorf("speech: write audio file: %w", err)
	}
	return filename, nil
}

// Resolve maps a filename from Synthesize back to a servable path. Only plain
// .mp3 names inside the audio dir are accepted, so a crafted filename cannot
// escape the directory.
func (s *Service) Resolve(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || !strings.HasSuffix(filename, ".mp3") {
		return "", fmt.Errorf("speech: invalid filename %q", filename)
	}
	path := filepath.Join(s.dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("speech: audio file not found: %w", err)
	}
	return path, nil
}
