package gemini

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"adcreative-analyzer/internal/config"
	"adcreative-analyzer/internal/models"
)

const defaultModelName = "gemini-2.5-flash"

// Client talks to the Gemini API: it stages videos through the Files API and
// runs structured-output generation against them.
type Client struct {
	sdk         *genai.Client
	modelName   string
	temperature float32
	logger      *zap.Logger
}

// NewClient builds a Gemini client from cfg. A blank API key is reported as
// a *config.ConfigurationError before any network activity.
func NewClient(ctx context.Context, cfg config.GeminiClientConfig, logger *zap.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, &config.ConfigurationError{Key: "geminiClient.apiKey", Reason: "API key not set (GOOGLE_API_KEY or GEMINI_API_KEY)"}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("gemini")

	modelName := cfg.Model
	if modelName == "" {
		modelName = defaultModelName
		logger.Warn("no model configured, using default", zap.String("model", modelName))
	}

	sdk, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	logger.Info("client initialized", zap.String("model", modelName), zap.Float32("temperature", cfg.Temperature))

	return &Client{
		sdk:         sdk,
		modelName:   modelName,
		temperature: cfg.Temperature,
		logger:      logger,
	}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.sdk.Close()
}

// UploadVideo streams the file at asset.Path to the Files API.
func (c *Client) UploadVideo(ctx context.Context, asset models.VideoAsset) (*models.RemoteAsset, error) {
	f, err := os.Open(asset.Path)
	if err != nil {
		return nil, fmt.Errorf("open video %s: %w", asset.Path, err)
	}
	defer f.Close()

	c.logger.Info("uploading video",
		zap.String("path", asset.Path),
		zap.String("mime", asset.MIMEType),
		zap.Int64("bytes", asset.SizeBytes))

	file, err := c.sdk.UploadFile(ctx, "", f, &genai.UploadFileOptions{
		DisplayName: asset.Name,
		MIMEType:    asset.MIMEType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", asset.Name, err)
	}
	remote := remoteAssetFromFile(file)
	c.logger.Info("video uploaded", zap.String("name", remote.Name), zap.String("state", string(remote.State)))
	return remote, nil
}

// GetVideo fetches the current state of an uploaded video.
func (c *Client) GetVideo(ctx context.Context, name string) (*models.RemoteAsset, error) {
	file, err := c.sdk.GetFile(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get file %s: %w", name, err)
	}
	return remoteAssetFromFile(file), nil
}

// DeleteVideo removes an uploaded video from the Files API.
func (c *Client) DeleteVideo(ctx context.Context, name string) error {
	if err := c.sdk.DeleteFile(ctx, name); err != nil {
		return fmt.Errorf("delete file %s: %w", name, err)
	}
	return nil
}

// GenerateStructured asks the model to describe a ready video as JSON
// conforming to the request's fields and returns the raw response text.
func (c *Client) GenerateStructured(ctx context.Context, req models.GenerationRequest) (string, error) {
	if req.Asset == nil || req.Asset.URI == "" {
		return "", fmt.Errorf("generation request has no video reference")
	}
	if req.Asset.State != models.RemoteStateReady {
		return "", fmt.Errorf("video %s is %s, not ready", req.Asset.Name, req.Asset.State)
	}

	model := c.sdk.GenerativeModel(c.modelName)
	model.SetTemperature(c.temperature)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = BuildResponseSchema(req.Fields)

	parts := []genai.Part{
		genai.Text(req.Instruction),
		genai.FileData{MIMEType: req.Asset.MIMEType, URI: req.Asset.URI},
	}

	c.logger.Info("requesting analysis",
		zap.String("video", req.Asset.Name),
		zap.Int("fields", len(req.Fields)),
		zap.String("instruction_head", firstNChars(req.Instruction, 100)))

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text, err := c.responseText(resp)
	if err != nil {
		return "", err
	}
	c.logger.Debug("raw model response", zap.Int("length", len(text)), zap.String("text", text))
	return text, nil
}

// responseText concatenates the text parts of the first candidate.
func (c *Client) responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil {
			return "", fmt.Errorf("no candidates, prompt blocked: %s", resp.PromptFeedback.BlockReason.String())
		}
		return "", fmt.Errorf("empty response: no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		if candidate.FinishReason != genai.FinishReasonStop && candidate.FinishReason != genai.FinishReasonUnspecified {
			for _, rating := range candidate.SafetyRatings {
				c.logger.Warn("safety rating",
					zap.String("category", rating.Category.String()),
					zap.String("probability", rating.Probability.String()))
			}
			return "", fmt.Errorf("response blocked or truncated: %s", candidate.FinishReason.String())
		}
		return "", fmt.Errorf("empty response: no content parts (finish reason %s)", candidate.FinishReason.String())
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		} else {
			c.logger.Warn("ignoring non-text part", zap.String("type", fmt.Sprintf("%T", part)))
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("empty response text (finish reason %s)", candidate.FinishReason.String())
	}
	if candidate.FinishReason == genai.FinishReasonMaxTokens {
		c.logger.Warn("response hit the output token limit", zap.Int("length", b.Len()))
	}
	return b.String(), nil
}

func remoteAssetFromFile(f *genai.File) *models.RemoteAsset {
	asset := &models.RemoteAsset{
		Name:     f.Name,
		URI:      f.URI,
		MIMEType: f.MIMEType,
		State:    remoteState(f.State),
	}
	if f.Error != nil {
		asset.FailureReason = f.Error.Error()
	}
	return asset
}

func remoteState(s genai.FileState) models.RemoteState {
	switch s {
	case genai.FileStateActive:
		return models.RemoteStateReady
	case genai.FileStateFailed:
		return models.RemoteStateFailed
	default:
		return models.RemoteStatePending
	}
}

func firstNChars(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}
