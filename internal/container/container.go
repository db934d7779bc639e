package container

import (
	"context"
	"log"

	"github.com/rimbac/edubot/internal/ai"
	"github.com/rimbac/edubot/internal/auth"
	"github.com/rimbac/edubot/internal/command"
	"github.com/rimbac/edubot/internal/config"
	"github.com/rimbac/edubot/internal/content"
	"github.com/rimbac/edubot/internal/gateway"
	"github.com/rimbac/edubot/internal/messagelog"
	"github.com/rimbac/edubot/internal/quiz"
	"github.com/rimbac/edubot/internal/router"
	"github.com/rimbac/edubot/internal/user"
)

type Container struct {
	Config        *config.Config
	Catalog       *content.Catalog
	UserContainer *user.UserContainer
	QuizContainer *quiz.QuizContainer
	Logs          messagelog.LogRepository
	Assistant     *ai.Assistant
	Dispatcher    *command.Dispatcher
	Router        *router.Router
	Gateway       *gateway.Handler
}

func New() *Container {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	config.Init(cfg.LogLevel)
	auth.Init()

	ctx := context.Background()

	if err := config.Connect(ctx, cfg.DatabaseDSN); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.DB.AutoMigrate(&user.User{}, &quiz.Result{}, &messagelog.MessageLog{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	catalog := content.New()

	userContainer := user.NewUserContainer(config.DB)
	quizContainer := quiz.NewQuizContainer(config.DB, catalog)
	logs := messagelog.NewRepository(config.DB)

	provider, err := ai.NewGeminiProvider(ctx)
	if err != nil {
		log.Fatalf("failed to init AI provider: %v", err)
	}
	assistant := ai.NewAssistant(provider, cfg.AITimeout)

	var sender command.Sender
	if cfg.BridgeURL != "" {
		sender = gateway.NewBridgeSender(cfg.BridgeURL)
	}

	dispatcher := command.NewDispatcher(
		userContainer.Repo,
		logs,
		catalog,
		quizContainer.Engine,
		quizContainer.Results,
		assistant,
		sender,
		cfg.OwnerNumber,
		cfg.AdminNumbers,
	)

	msgRouter := router.NewRouter(
		router.NewClassifier(cfg.CommandPrefixes),
		dispatcher,
		quizContainer.Engine,
		assistant,
		userContainer.Repo,
		logs,
		cfg.OwnerNumber,
	)

	return &Container{
		Config:        cfg,
		Catalog:       catalog,
		UserContainer: userContainer,
		QuizContainer: quizContainer,
		Logs:          logs,
		Assistant:     assistant,
		Dispatcher:    dispatcher,
		Router:        msgRouter,
		Gateway:       gateway.NewHandler(msgRouter),
	}
}
