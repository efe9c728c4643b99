package portfolio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rahulladumor/portfolio-api/internal/application/service"
	"github.com/rahulladumor/portfolio-api/pkg/apperror"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

// SnapshotUseCase exports the flat document and uploads it to media storage
// as a timestamped JSON artifact.
type SnapshotUseCase struct {
	export   *ExportUseCase
	uploader service.Uploader
	logger   logger.Logger
}

func NewSnapshotUseCase(export *ExportUseCase, uploader service.Uploader, log logger.Logger) *SnapshotUseCase {
	return &SnapshotUseCase{export: export, uploader: uploader, logger: log}
}

type SnapshotOutput struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

func (uc *SnapshotUseCase) Execute(ctx context.Context) (*SnapshotOutput, error) {
	ctx, span := tracer.Start(ctx, "SnapshotExecute")
	defer span.End()

	doc, err := uc.export.Execute(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, apperror.NewInternal("failed to marshal snapshot document", err)
	}

	timestamp := time.Now().UTC().Format("2006-01-02_15-04-05")
	folder := "portfolio/snapshots"
	publicID := fmt.Sprintf("snapshot-%s.json", timestamp)

	url, err := uc.uploader.Upload(ctx, bytes.NewReader(raw), folder, publicID)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to upload snapshot", err)
	}

	uc.logger.Info("Portfolio snapshot uploaded",
		zap.String("url", url),
		zap.String("public_id", publicID),
	)

	return &SnapshotOutput{URL: url, PublicID: folder + "/" + publicID}, nil
}
