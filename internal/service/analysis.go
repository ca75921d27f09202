package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/llm"
	"github.com/kingrain94/vehicle-assess-api/internal/metrics"
	"github.com/kingrain94/vehicle-assess-api/internal/repository"
	"github.com/kingrain94/vehicle-assess-api/internal/utils"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

const (
	assessmentToolName = "record_assessment"

	defaultSimilarLimit = 5
)

const assessmentSystemPrompt = `You are an expert vehicle inspector. Assess the vehicle described by the user and any attached photos.
Report visible damage, wear and likely mechanical issues. Be specific about the area of the vehicle for each finding.
Call the record_assessment tool with a short summary, an overall condition score from 0 (scrap) to 100 (as new) and the list of findings.`

var assessmentTool = domain.ToolDefinition{
	Name:        assessmentToolName,
	Description: "Record the structured result of a vehicle condition assessment",
	Parameters: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two or three sentence narrative of the vehicle condition",
			},
			"condition_score": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 100,
			},
			"findings": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"area":               map[string]any{"type": "string"},
						"severity":           map[string]any{"type": "string", "enum": []string{"low", "medium", "high"}},
						"description":        map[string]any{"type": "string"},
						"estimated_cost_usd": map[string]any{"type": "integer"},
					},
					"required": []string{"area", "severity", "description"},
				},
			},
		},
		"required": []string{"summary", "condition_score", "findings"},
	},
}

type assessmentArgs struct {
	Summary        string           `json:"summary"`
	ConditionScore *int             `json:"condition_score"`
	Findings       []domain.Finding `json:"findings"`
}

type AnalysisService struct {
	repo       repository.Repository
	provider   llm.Provider
	files      *FileService
	streams    *TextStreamService
	search     *SearchService
	sqsService SQSService
	logger     *logger.Logger
}

func NewAnalysisService(
	repo repository.Repository,
	provider llm.Provider,
	files *FileService,
	streams *TextStreamService,
	search *SearchService,
	sqsService SQSService,
	logger *logger.Logger,
) *AnalysisService {
	return &AnalysisService{
		repo:       repo,
		provider:   provider,
		files:      files,
		streams:    streams,
		search:     search,
		sqsService: sqsService,
		logger:     logger,
	}
}

// Request stores a pending analysis with its text stream and queues it for the worker
func (s *AnalysisService) Request(ctx context.Context, tenantID, userID string, req dto.CreateAnalysisRequest) (*domain.VehicleAnalysis, error) {
	stream, err := s.streams.Create(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create text stream: %w", err)
	}

	analysis := &domain.VehicleAnalysis{
		TenantID:    tenantID,
		RequestedBy: userID,
		VehicleInfo: req.VehicleInfo,
		FileIDs:     req.FileIDs,
		Status:      string(domain.AnalysisPending),
		StreamID:    stream.ID,
	}
	if analysis.FileIDs == nil {
		analysis.FileIDs = []string{}
	}
	if req.BookingID != "" {
		bookingID := req.BookingID
		analysis.BookingID = &bookingID
	}

	if err := s.repo.VehicleAnalysis().Create(ctx, analysis); err != nil {
		return nil, err
	}

	if err := s.sqsService.SendAnalyzeMessage(ctx, tenantID, analysis.ID); err != nil {
		err = fmt.Errorf("failed to enqueue analysis: %w", err)
		s.fail(ctx, analysis, err)
		return nil, err
	}

	s.logger.Info("Vehicle analysis requested",
		zap.String("analysis_id", analysis.ID),
		zap.String("tenant_id", tenantID),
		zap.Int("files", len(analysis.FileIDs)),
	)
	return analysis, nil
}

func (s *AnalysisService) Get(ctx context.Context, id string) (*domain.VehicleAnalysis, error) {
	analysis, err := s.repo.VehicleAnalysis().GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAnalysisNotFound
	}
	return analysis, err
}

func (s *AnalysisService) List(ctx context.Context, tenantID string, limit, offset int) ([]domain.VehicleAnalysis, error) {
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}
	return s.repo.VehicleAnalysis().List(ctx, tenantID, limit, offset)
}

// Process runs the model over a queued analysis. Model failures mark the
// analysis failed and return nil so the message is not redelivered.
func (s *AnalysisService) Process(ctx context.Context, tenantID, analysisID string) error {
	ctx = utils.WithTenantClaims(ctx, tenantID)

	analysis, err := s.Get(ctx, analysisID)
	if errors.Is(err, ErrAnalysisNotFound) {
		s.logger.Warn("Analysis no longer exists", zap.String("analysis_id", analysisID))
		return nil
	}
	if err != nil {
		return err
	}
	if analysis.Status == string(domain.AnalysisCompleted) || analysis.Status == string(domain.AnalysisFailed) {
		return nil
	}

	if _, err := s.repo.VehicleAnalysis().Patch(ctx, analysis.ID, map[string]any{"status": string(domain.AnalysisProcessing)}); err != nil {
		return err
	}
	analysis.Status = string(domain.AnalysisProcessing)

	photoURLs := s.files.PresignURLs(ctx, tenantID, analysis.FileIDs)

	start := time.Now()
	completion, err := s.provider.ChatCompletion(ctx, llm.ChatRequest{
		Messages:   buildAssessmentMessages(analysis.VehicleInfo, photoURLs),
		Tools:      []domain.ToolDefinition{assessmentTool},
		ToolChoice: assessmentToolName,
	})
	metrics.LLMRequestDuration.WithLabelValues("assessment", metrics.Outcome(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		s.fail(ctx, analysis, err)
		return nil
	}

	result, err := parseAssessment(completion)
	if err != nil {
		s.fail(ctx, analysis, err)
		return nil
	}

	analysis.Status = string(domain.AnalysisCompleted)
	analysis.Summary = result.Summary
	analysis.ConditionScore = result.ConditionScore
	analysis.Findings = result.Findings
	analysis.Model = completion.Model
	analysis.Error = ""
	if err := s.repo.VehicleAnalysis().Update(ctx, analysis); err != nil {
		return fmt.Errorf("failed to save analysis result: %w", err)
	}
	metrics.AnalysesFinished.WithLabelValues(analysis.Status).Inc()

	s.writeNarrative(ctx, analysis)
	s.storeEmbedding(ctx, analysis)

	s.logger.Info("Vehicle analysis completed",
		zap.String("analysis_id", analysis.ID),
		zap.Int("findings", len(analysis.Findings)),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

func buildAssessmentMessages(vehicleInfo string, photoURLs []string) []domain.ChatMessage {
	var sb strings.Builder
	sb.WriteString("Vehicle: ")
	sb.WriteString(vehicleInfo)
	if len(photoURLs) > 0 {
		sb.WriteString("\n\nPhotos:\n")
		for _, url := range photoURLs {
			sb.WriteString("- ")
			sb.WriteString(url)
			sb.WriteString("\n")
		}
	}

	return []domain.ChatMessage{
		{Role: string(domain.ChatRoleSystem), Content: assessmentSystemPrompt},
		{Role: string(domain.ChatRoleUser), Content: sb.String()},
	}
}

// parseAssessment reads the record_assessment call, falling back to the
// plain reply as the summary.
func parseAssessment(completion *domain.ChatCompletion) (*assessmentArgs, error) {
	for _, call := range completion.Message.ToolCalls {
		if call.Name != assessmentToolName {
			continue
		}
		var args assessmentArgs
		if err := json.Unmarshal([]byte(call.Arguments), &args); err == nil && args.Summary != "" {
			if args.Findings == nil {
				args.Findings = []domain.Finding{}
			}
			return &args, nil
		}
	}

	content := strings.TrimSpace(completion.Message.Content)
	if content == "" {
		return nil, llm.ErrInvalidResponse
	}
	return &assessmentArgs{Summary: content, Findings: []domain.Finding{}}, nil
}

func (s *AnalysisService) fail(ctx context.Context, analysis *domain.VehicleAnalysis, cause error) {
	s.logger.Error("Vehicle analysis failed", cause, zap.String("analysis_id", analysis.ID))

	updates := map[string]any{
		"status": string(domain.AnalysisFailed),
		"error":  cause.Error(),
	}
	if _, err := s.repo.VehicleAnalysis().Patch(ctx, analysis.ID, updates); err != nil {
		s.logger.Error("Failed to mark analysis failed", err, zap.String("analysis_id", analysis.ID))
	}
	metrics.AnalysesFinished.WithLabelValues(string(domain.AnalysisFailed)).Inc()

	if analysis.StreamID != "" {
		if _, err := s.streams.Fail(ctx, analysis.StreamID, cause.Error()); err != nil {
			s.logger.Warn("Failed to close text stream", zap.String("stream_id", analysis.StreamID), zap.Error(err))
		}
	}
}

func (s *AnalysisService) writeNarrative(ctx context.Context, analysis *domain.VehicleAnalysis) {
	if analysis.StreamID == "" {
		return
	}

	var sb strings.Builder
	sb.WriteString(analysis.Summary)
	for _, f := range analysis.Findings {
		sb.WriteString(fmt.Sprintf("\n- [%s] %s: %s", f.Severity, f.Area, f.Description))
	}

	if _, err := s.streams.Append(ctx, analysis.StreamID, sb.String()); err != nil {
		s.logger.Warn("Failed to write analysis narrative", zap.String("stream_id", analysis.StreamID), zap.Error(err))
		return
	}
	if _, err := s.streams.Finish(ctx, analysis.StreamID); err != nil {
		s.logger.Warn("Failed to finish text stream", zap.String("stream_id", analysis.StreamID), zap.Error(err))
	}
}

func (s *AnalysisService) storeEmbedding(ctx context.Context, analysis *domain.VehicleAnalysis) {
	start := time.Now()
	result, err := s.provider.Embed(ctx, analysis.VehicleInfo+"\n"+analysis.Summary)
	metrics.LLMRequestDuration.WithLabelValues("embedding", metrics.Outcome(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		s.logger.Warn("Failed to embed analysis", zap.String("analysis_id", analysis.ID), zap.Error(err))
		return
	}

	embedding := &domain.Embedding{
		TenantID:   analysis.TenantID,
		SourceType: string(domain.EmbeddingSourceAnalysis),
		SourceID:   analysis.ID,
		Model:      result.Model,
		Vector:     result.Vector,
	}
	if err := s.repo.Embedding().Create(ctx, embedding); err != nil {
		s.logger.Error("Failed to store embedding", err, zap.String("analysis_id", analysis.ID))
	}
}

// FindSimilar ranks the tenant's completed analyses against a free text query
func (s *AnalysisService) FindSimilar(ctx context.Context, tenantID, userID string, req dto.SimilarAnalysisRequest) ([]dto.SimilarAnalysisResponse, error) {
	limit := req.Limit
	if limit < 1 {
		limit = defaultSimilarLimit
	}

	query, err := s.provider.Embed(ctx, req.Query)
	if err != nil {
		return nil, err
	}

	candidates, err := s.repo.Embedding().ListBySource(ctx, tenantID, string(domain.EmbeddingSourceAnalysis))
	if err != nil {
		return nil, err
	}

	matches := TopMatches(query.Vector, candidates, limit)
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.SourceID
	}

	results := []dto.SimilarAnalysisResponse{}
	if len(ids) > 0 {
		analyses, err := s.repo.VehicleAnalysis().GetByIDs(ctx, tenantID, ids)
		if err != nil {
			return nil, err
		}
		byID := make(map[string]*domain.VehicleAnalysis, len(analyses))
		for i := range analyses {
			byID[analyses[i].ID] = &analyses[i]
		}
		for _, m := range matches {
			if a, ok := byID[m.SourceID]; ok {
				results = append(results, dto.SimilarAnalysisResponse{
					Analysis: dto.FromAnalysis(a),
					Score:    m.Score,
				})
			}
		}
	}

	s.search.Record(ctx, tenantID, userID, req.Query, SearchKindAnalyses, len(results))
	return results, nil
}
