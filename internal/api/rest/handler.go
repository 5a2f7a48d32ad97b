package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/nft-bridge/internal/api/rest/dto"
	"github.com/feral-file/nft-bridge/internal/bridge"
	"github.com/feral-file/nft-bridge/internal/domain"
	"github.com/feral-file/nft-bridge/internal/logger"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// Bridge verifies a migration request and enqueues accepted tokens
	// POST /bridge
	Bridge(c *gin.Context)

	// SaveCustomerData registers token IDs for a wallet and project
	// POST /customer/data
	SaveCustomerData(c *gin.Context)

	// GetMigrationState returns the queue entries of a wallet for a project
	// GET /customer/data/:wallet_address/:project_id
	GetMigrationState(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	verifier  *bridge.Verifier
	customers *bridge.CustomerService
}

// NewHandler creates a new REST API handler
func NewHandler(verifier *bridge.Verifier, customers *bridge.CustomerService) Handler {
	return &handler{
		verifier:  verifier,
		customers: customers,
	}
}

// Bridge verifies a migration request and enqueues accepted tokens
func (h *handler) Bridge(c *gin.Context) {
	var req dto.BridgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	logger.Info("bridge request received",
		zap.String("wallet_address", req.WalletAddress),
		zap.Strings("token_ids", req.TokenIDs),
	)

	result, err := h.verifier.Handle(c.Request.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSignature):
			respondBadRequest(c, "Invalid signature")
		case errors.Is(err, domain.ErrNoTokensFound):
			respondNotFound(c, "No tokens found for the provided wallet")
		case errors.Is(err, domain.ErrEnqueueFailed):
			respondInternalError(c, err, "Error while enqueueing your tokens for minting")
		default:
			respondInternalError(c, err, "Failed to process bridge request")
		}
		return
	}

	status := migrationStatusCode(result)
	c.JSON(status, apiResponse{
		Message: result.Message,
		Code:    status,
		Body:    result,
	})
}

// migrationStatusCode derives the HTTP status from the per-token checks.
// The most severe failure wins so clients always see a deterministic code.
func migrationStatusCode(result *domain.MigrationResult) int {
	status := http.StatusOK
	for _, check := range result.Checks {
		if check.Passed() {
			continue
		}

		tokenStatus := http.StatusBadRequest
		switch check.Reason {
		case bridge.CheckOriginUnavailable:
			tokenStatus = http.StatusInternalServerError
		case bridge.CheckNoTransferFound:
			tokenStatus = http.StatusNotFound
		}

		if severity(tokenStatus) > severity(status) {
			status = tokenStatus
		}
	}
	return status
}

func severity(status int) int {
	switch status {
	case http.StatusInternalServerError:
		return 3
	case http.StatusNotFound:
		return 2
	case http.StatusBadRequest:
		return 1
	default:
		return 0
	}
}

// SaveCustomerData registers token IDs for a wallet and project
func (h *handler) SaveCustomerData(c *gin.Context) {
	var req dto.SaveCustomerDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := h.customers.SaveTokens(c.Request.Context(), req.WalletAddress, req.ProjectID, req.TokenIDs); err != nil {
		respondInternalError(c, err, "Error while saving customer to database")
		return
	}

	c.JSON(http.StatusCreated, apiResponse{
		Message: "Saved customer tokens",
		Code:    http.StatusCreated,
	})
}

// GetMigrationState returns the queue entries of a wallet for a project
func (h *handler) GetMigrationState(c *gin.Context) {
	walletAddress := c.Param("wallet_address")
	projectID := c.Param("project_id")

	items, err := h.customers.MigrationState(c.Request.Context(), walletAddress, projectID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			respondNotFound(c, "Customer not found")
			return
		}
		respondInternalError(c, err, "Failed to get migration state")
		return
	}

	c.JSON(http.StatusOK, items)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "nft-bridge-api",
	})
}
