package bootstrap

import (
	"time"

	"olyph-ai-be/internal/config"
	"olyph-ai-be/internal/controller"
	"olyph-ai-be/internal/pkg/logger"
	"olyph-ai-be/internal/repository/implementation"
	"olyph-ai-be/internal/service"
	"olyph-ai-be/pkg/embedding"
	"olyph-ai-be/pkg/faq"
	"olyph-ai-be/pkg/lexical"
	"olyph-ai-be/pkg/llm/azure"
	"olyph-ai-be/pkg/scoring"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController   controller.IChatController
	SurveyController controller.ISurveyController
	ReportController controller.IReportController
	AuthController   controller.IAuthController

	// Shared
	Logger logger.ILogger

	// Exposed for the standalone batch runner
	SurveyService service.ISurveyService
}

// NewContainer constructs every long-lived object once: hosted clients,
// the FAQ corpus and its fitted similarity index. Request handlers get
// them by reference; nothing is re-read from ambient state per request.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// FAQ corpus and lexical index. A failed fit is not fatal: the
	// chat path then always falls through to the hosted model.
	corpus := faq.Load(cfg.Chat.FAQPath)
	sysLogger.Info("bootstrap", "FAQ corpus loaded", map[string]interface{}{
		"entries": len(corpus),
		"path":    cfg.Chat.FAQPath,
	})

	index, err := lexical.Fit(faq.Questions(corpus))
	if err != nil {
		sysLogger.Warn("bootstrap", "lexical fit failed, chat will always use the hosted model", map[string]interface{}{
			"error": err.Error(),
		})
		index = nil
	}

	// Hosted model clients
	llmProvider := azure.NewAzureProvider(
		cfg.Azure.Endpoint,
		cfg.Azure.APIKey,
		cfg.Azure.APIVersion,
		cfg.Azure.ChatDeployment,
	)
	embedder := embedding.NewAzureProvider(
		cfg.Azure.Endpoint,
		cfg.Azure.APIKey,
		cfg.Azure.APIVersion,
		cfg.Azure.EmbeddingDeployment,
	)
	judge := scoring.NewJudgeScorer(llmProvider)

	// Repositories
	surveyRepo := implementation.NewSurveyRepository(db)
	userRepo := implementation.NewUserRepository(db)

	// Services
	chatService := service.NewChatService(
		corpus,
		index,
		llmProvider,
		cfg.Chat.MatchThreshold,
		time.Duration(cfg.Chat.ReplyCacheMinutes)*time.Minute,
		sysLogger,
	)
	surveyService := service.NewSurveyService(surveyRepo, embedder, judge, cfg.Survey.Strategy, sysLogger)
	reportService := service.NewReportService(surveyRepo)
	authService := service.NewAuthService(userRepo, cfg.Auth.JWTSecret, sysLogger)

	return &Container{
		ChatController:   controller.NewChatController(chatService),
		SurveyController: controller.NewSurveyController(surveyService),
		ReportController: controller.NewReportController(reportService),
		AuthController:   controller.NewAuthController(authService),
		Logger:           sysLogger,
		SurveyService:    surveyService,
	}
}
