package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ideate/internal/boardcode"
	"ideate/internal/config"
	"ideate/internal/database"
	"ideate/internal/handler"
	"ideate/internal/identity"
	"ideate/internal/live"
	"ideate/internal/middleware"
	"ideate/internal/repository"
	"ideate/internal/session"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// sessionPruneInterval is how often expired sessions are deleted.
const sessionPruneInterval = time.Hour

type Server struct {
	Engine   *gin.Engine
	DB       *gorm.DB
	Hub      *live.Hub
	Sessions *session.Store
	Config   *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	if cfg.DBAutoMigrate {
		if err := database.Migrate(cfg.MigrationURL()); err != nil {
			return nil, fmt.Errorf("❌ failed to migrate DB: %w", err)
		}
		log.Println("✅ Database schema up to date")
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
	}
	log.Println("✅ Connected to database")

	if err := handler.RegisterValidations(); err != nil {
		return nil, fmt.Errorf("❌ failed to register validations: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	ideaRepo := repository.NewIdeaRepository(db)
	noteRepo := repository.NewNoteRepository(db)

	// Board identity and code allocation
	allocator := boardcode.NewAllocator(nil, boardRepo, cfg.CodeMaxAttempts, repository.IsDuplicateKey)
	assigner := identity.NewAssigner(boardRepo)
	hub := live.NewHub()
	sessions := session.NewStore(sessionRepo, cfg.SessionSecret, cfg.SessionMaxAge, cfg.SecureCookies)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Sessions(sessions))

	// Handlers
	userHandler := handler.NewUserHandler(userRepo, boardRepo)
	boardHandler := handler.NewBoardHandler(boardRepo, ideaRepo, allocator, assigner, hub)
	ideaHandler := handler.NewIdeaHandler(boardRepo, ideaRepo, assigner, hub)
	noteHandler := handler.NewNoteHandler(boardRepo, ideaRepo, noteRepo, assigner)
	liveHandler := handler.NewLiveHandler(boardRepo, hub)

	users := r.Group("/users")
	{
		users.POST("/register", userHandler.Register)
		users.POST("/login", userHandler.Login)
		users.POST("/logout", userHandler.Logout)
		users.GET("/session", userHandler.Session)
		users.GET("/boards", userHandler.Boards)
		users.PUT("/boards/:code", userHandler.SaveBoard)
		users.DELETE("/boards/:code", userHandler.UnsaveBoard)
	}

	boards := r.Group("/board/boards")
	{
		boards.POST("", boardHandler.Create)
		boards.GET("/validate/:code", boardHandler.Validate)
		boards.GET("/:code", boardHandler.Get)
		boards.DELETE("/:code", boardHandler.Delete)
		boards.GET("/:code/moderator", boardHandler.IsModerator)
		boards.PUT("/:code/name", boardHandler.Rename)
		boards.GET("/:code/live", liveHandler.Subscribe)

		// Idea routes
		boards.POST("/:code/ideas", ideaHandler.Create)
		boards.DELETE("/:code/ideas/:ideaId", ideaHandler.Delete)
		boards.GET("/:code/ideas/:ideaId/owner", ideaHandler.IsOwner)
		boards.PUT("/:code/ideas/:ideaId/upvote", ideaHandler.Upvote)
		boards.DELETE("/:code/ideas/:ideaId/upvote", ideaHandler.RemoveUpvote)
		boards.PUT("/:code/ideas/:ideaId/flag", ideaHandler.Flag)
		boards.DELETE("/:code/ideas/:ideaId/flag", ideaHandler.Unflag)
		boards.PUT("/:code/ideas/:ideaId/explanation", ideaHandler.Explain)

		// Note routes
		boards.GET("/:code/ideas/:ideaId/notes", noteHandler.List)
		boards.POST("/:code/ideas/:ideaId/notes", noteHandler.Create)
		boards.DELETE("/:code/ideas/:ideaId/notes/:noteId", noteHandler.Delete)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &Server{
		Engine:   r,
		DB:       db,
		Hub:      hub,
		Sessions: sessions,
		Config:   cfg,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	pruneCtx, stopPrune := context.WithCancel(context.Background())
	defer stopPrune()
	go s.pruneSessions(pruneCtx)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")
	stopPrune()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		sqlDB.Close()
	}
	log.Println("✅ Server exited properly")
}

func (s *Server) pruneSessions(ctx context.Context) {
	ticker := time.NewTicker(sessionPruneInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.Sessions.Prune(ctx)
			if err != nil {
				log.Printf("⚠️ Failed to prune sessions: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("🧹 Pruned %d expired sessions", n)
			}
		}
	}
}
