package services

import (
	"context"

	"adcreative-analyzer/internal/models"
)

// VideoOracle is a multimodal model provider that accepts uploaded videos and
// answers structured questions about them.
type VideoOracle interface {
	UploadVideo(ctx context.Context, asset models.VideoAsset) (*models.RemoteAsset, error)
	GetVideo(ctx context.Context, name string) (*models.RemoteAsset, error)
	GenerateStructured(ctx context.Context, req models.GenerationRequest) (string, error)
	DeleteVideo(ctx context.Context, name string) error
}

// VideoAnalyzer analyzes one local video file.
type VideoAnalyzer interface {
	Analyze(ctx context.Context, path string) (*models.AnalysisRecord, error)
}
