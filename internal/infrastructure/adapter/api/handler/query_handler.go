package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/caiofernandes-dev/banco-api/internal/domain/error"
	coreport "github.com/caiofernandes-dev/banco-api/internal/domain/port/core"
	bankUseCase "github.com/caiofernandes-dev/banco-api/internal/domain/usecase/bank"
	"github.com/caiofernandes-dev/banco-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// QueryHandler handles the read-only listing endpoints
type QueryHandler struct {
	bankService *bankUseCase.Service
	logger      coreport.Logger
}

// NewQueryHandler creates a new query handler instance
func NewQueryHandler(bankService *bankUseCase.Service, logger coreport.Logger) *QueryHandler {
	return &QueryHandler{
		bankService: bankService,
		logger:      logger,
	}
}

// ListCustomers handles the GET /get/clientes endpoint
func (h *QueryHandler) ListCustomers(c *gin.Context) {
	customers, err := h.bankService.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, dto.NewCustomerResponse(&customers[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// ListAccounts handles the GET /get/contas endpoint
func (h *QueryHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.bankService.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, dto.NewAccountResponse(&accounts[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// GetCustomer handles the GET /get/cliente/:id endpoint
func (h *QueryHandler) GetCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid customer ID format",
		})
		return
	}

	customer, err := h.bankService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCustomerResponse(customer))
}
