package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sidheshsarda/mis/internal/application/auth"
	"github.com/sidheshsarda/mis/internal/application/batching"
	"github.com/sidheshsarda/mis/internal/application/planning"
	"github.com/sidheshsarda/mis/internal/application/usecase"
	"github.com/sidheshsarda/mis/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC      *batching.LedgerUseCase
	SnapshotUC    *batching.SnapshotUseCase
	SnapshotPDF   batching.SnapshotPDFGenerator
	IssueRequired *planning.IssueRequiredUseCase
	ReferenceUC   *usecase.ReferenceUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Maestros de planta (cualquier rol autenticado)
	reference := protected.Group("/reference")
	referenceHandler := NewReferenceHandler(deps.ReferenceUC)
	reference.Get("/bins", referenceHandler.Bins)
	reference.Get("/bins/:no", referenceHandler.BinByNo)
	reference.Get("/jute-qualities", referenceHandler.JuteQualities)
	reference.Get("/maturity-targets", referenceHandler.MaturityTargets)

	// Ledger de spreader: escrituras solo para operadores, lecturas para todos
	spreader := protected.Group("/spreader")
	batchingHandler := NewBatchingHandler(deps.LedgerUC, deps.SnapshotUC, deps.SnapshotPDF)
	spreader.Post("/entries", RequireRole(entity.RoleOperator), batchingHandler.RecordProduction)
	spreader.Post("/issues", RequireRole(entity.RoleOperator), batchingHandler.RecordIssue)
	spreader.Get("/entries/recent", batchingHandler.RecentEntries)
	spreader.Get("/bins/stock", batchingHandler.BinsWithStock)
	spreader.Get("/groups/:id/weights", batchingHandler.AvailableWeights)
	spreader.Get("/snapshot", batchingHandler.Snapshot)
	spreader.Get("/snapshot/pdf", batchingHandler.SnapshotPDF)

	// Planificación (planner)
	planningGroup := protected.Group("/planning", RequireRole(entity.RolePlanner))
	planningHandler := NewPlanningHandler(deps.IssueRequired)
	planningGroup.Post("/issue-required", planningHandler.IssueRequired)
}
