package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyText   = errors.New("text is empty")
	ErrTextTooLong = errors.New("text is too long")
)

const (
	ttsRequestTimeout = 10 * time.Second
	googleTTSURL      = "https://translate.google.com/translate_tts"

	// maxTextLength is the longest text the endpoint accepts in one request
	maxTextLength = 200
)

// ttsNamespace keys cache file names so the same text always maps to the same file
var ttsNamespace = uuid.MustParse("6f1c3f0e-8a5e-4a63-9c55-3b6f3f1f0a11")

// TTSService provides text-to-speech functionality
type TTSService struct {
	audioDir string
	baseURL  string
	client   *http.Client
}

// NewTTSService creates a new TTS service writing MP3s under audioDir
func NewTTSService(audioDir string) *TTSService {
	return &TTSService{
		audioDir: audioDir,
		baseURL:  googleTTSURL,
		client:   &http.Client{Timeout: ttsRequestTimeout},
	}
}

// WithBaseURL points the service at a different TTS endpoint
func (s *TTSService) WithBaseURL(u string) *TTSService {
	s.baseURL = u
	return s
}

// Dir is where generated files live
func (s *TTSService) Dir() string {
	return s.audioDir
}

// FileName returns the cache file name for text
func FileName(text string) string {
	key := strings.ToLower(strings.Join(strings.Fields(text), " "))
	return "tts_" + uuid.NewSHA1(ttsNamespace, []byte(key)).String() + ".mp3"
}

// IsCached reports whether speech for text has already been generated
func (s *TTSService) IsCached(text string) bool {
	_, err := os.Stat(filepath.Join(s.audioDir, FileName(text)))
	return err == nil
}

// Generate converts text to speech and saves it as an MP3, reusing an
// earlier file for the same text. Returns the file name, not the full path.
func (s *TTSService) Generate(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	if len([]rune(text)) > maxTextLength {
		return "", fmt.Errorf("%w: more than %d characters", ErrTextTooLong, maxTextLength)
	}

	filename := FileName(text)
	outputPath := filepath.Join(s.audioDir, filename)

	// Check if file already exists
	if _, err := os.Stat(outputPath); err == nil {
		return filename, nil
	}

	if err := os.MkdirAll(s.audioDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create audio directory: %w", err)
	}

	if err := s.fetch(ctx, text, outputPath); err != nil {
		return "", fmt.Errorf("failed to generate audio: %w", err)
	}

	return filename, nil
}

// fetch downloads speech for text into outputPath
func (s *TTSService) fetch(ctx context.Context, text, outputPath string) error {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", "en")
	params.Set("client", "tw-ob")
	params.Set("textlen", strconv.Itoa(len(text)))

	ctx, cancel := context.WithTimeout(ctx, ttsRequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Set user agent (required by Google)
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	// A partial download must never appear under the cache name
	tmp, err := os.CreateTemp(filepath.Dir(outputPath), ".tts-*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return os.Rename(tmp.Name(), outputPath)
}
