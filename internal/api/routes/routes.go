package routes

import (
	"log"
	"time"

	"matchday-backend/internal/api/handlers"
	"matchday-backend/internal/api/middleware"
	"matchday-backend/internal/auth"
	"matchday-backend/internal/config"
	"matchday-backend/internal/repository"
	"matchday-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validate := validator.New()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	rosterRepo := repository.NewRosterRepository(db)
	waitingListRepo := repository.NewWaitingListRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	inviteRepo := repository.NewInviteRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Services
	groupService := service.NewGroupService(groupRepo, membershipRepo, playerRepo, matchRepo, validate)
	memberService := service.NewMemberService(membershipRepo, playerRepo, userRepo, rosterRepo, waitingListRepo, statsRepo, validate)
	inviteService := service.NewInviteService(inviteRepo, groupRepo, membershipRepo, validate)
	matchService := service.NewMatchService(matchRepo, groupRepo, membershipRepo, rosterRepo, waitingListRepo, statsRepo, validate)
	rosterService := service.NewRosterService(matchRepo, rosterRepo, waitingListRepo, playerRepo, membershipRepo, validate)
	formationService := service.NewFormationService(matchRepo, rosterRepo, teamRepo, membershipRepo)
	transferService := service.NewTransferService(
		groupRepo, membershipRepo, playerRepo, userRepo,
		cfg.ImportBatchSize, time.Duration(cfg.ImportBatchPauseMs)*time.Millisecond,
	)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	groupHandler := handlers.NewGroupHandler(groupService)
	memberHandler := handlers.NewMemberHandler(memberService)
	inviteHandler := handlers.NewInviteHandler(inviteService)
	matchHandler := handlers.NewMatchHandler(matchService)
	rosterHandler := handlers.NewRosterHandler(rosterService)
	teamHandler := handlers.NewTeamHandler(formationService)
	transferHandler := handlers.NewTransferHandler(transferService)

	authService, err := auth.NewAuthService(cfg.JWTSecret, userRepo)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Health endpoints stay open, no auth
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		groups := v1.Group("/groups")
		{
			groups.POST("", groupHandler.CreateGroup)
			groups.GET("", groupHandler.ListGroups)
			groups.GET("/public", groupHandler.DiscoverGroups)
			groups.GET("/:id", groupHandler.GetGroup)
			groups.PUT("/:id", groupHandler.UpdateGroup)
			groups.DELETE("/:id", groupHandler.DeleteGroup)
			groups.POST("/:id/join", groupHandler.JoinGroup)
			groups.POST("/:id/leave", memberHandler.LeaveGroup)

			groups.GET("/:id/members", memberHandler.ListMembers)
			groups.GET("/:id/members/:userID", memberHandler.GetMember)
			groups.GET("/:id/members/:userID/stats", memberHandler.GetMemberStats)
			groups.PUT("/:id/members/:userID", memberHandler.UpdateMember)
			groups.DELETE("/:id/members/:userID", memberHandler.RemoveMember)
			groups.POST("/:id/members/:userID/promote", memberHandler.PromoteMember)
			groups.POST("/:id/members/:userID/demote", memberHandler.DemoteMember)
			groups.POST("/:id/guests", memberHandler.AddGuest)
			groups.GET("/:id/guests", memberHandler.ListGuests)

			groups.POST("/:id/invites", inviteHandler.CreateInvite)
			groups.GET("/:id/invites", inviteHandler.ListInvites)

			groups.POST("/:id/matches", matchHandler.CreateMatch)
			groups.GET("/:id/matches", matchHandler.ListMatches)

			groups.GET("/:id/export", transferHandler.ExportGroup)
			groups.POST("/:id/import", transferHandler.ImportGroup)
		}

		invites := v1.Group("/invites")
		{
			invites.POST("/redeem", inviteHandler.RedeemInvite)
			invites.GET("/:code", inviteHandler.PreviewInvite)
			invites.DELETE("/:id", inviteHandler.DeactivateInvite)
		}

		matches := v1.Group("/matches")
		{
			matches.GET("/:id", matchHandler.GetMatch)
			matches.PUT("/:id", matchHandler.UpdateMatch)
			matches.DELETE("/:id", matchHandler.DeleteMatch)

			matches.POST("/:id/join", rosterHandler.JoinMatch)
			matches.POST("/:id/leave", rosterHandler.LeaveMatch)
			matches.POST("/:id/players", rosterHandler.AddParticipant)
			matches.DELETE("/:id/players/:playerID", rosterHandler.RemovePlayer)
			matches.GET("/:id/waiting-list", rosterHandler.GetWaitingList)

			matches.POST("/:id/stats", matchHandler.RecordStat)
			matches.GET("/:id/stats", matchHandler.ListStats)

			matches.POST("/:id/teams", teamHandler.CreateTeams)
			matches.POST("/:id/teams/randomize", teamHandler.RandomizeTeams)
			matches.POST("/:id/teams/finalize", teamHandler.FinalizeTeams)
		}
	}

	return router
}
