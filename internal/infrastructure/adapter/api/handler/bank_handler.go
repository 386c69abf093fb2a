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

// BankHandler handles customer, account and transaction HTTP requests
type BankHandler struct {
	bankService *bankUseCase.Service
	logger      coreport.Logger
}

// NewBankHandler creates a new bank handler instance
func NewBankHandler(bankService *bankUseCase.Service, logger coreport.Logger) *BankHandler {
	return &BankHandler{
		bankService: bankService,
		logger:      logger,
	}
}

// CreateCustomer handles the POST /banco/clientes/ endpoint
func (h *BankHandler) CreateCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	customer, err := h.bankService.CreateCustomer(
		c.Request.Context(), req.Name, req.TaxID, req.Address, req.BirthDate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCustomerResponse(customer))
}

// OpenAccount handles the POST /banco/contas/ endpoint
func (h *BankHandler) OpenAccount(c *gin.Context) {
	var req dto.OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	account, err := h.bankService.OpenAccount(c.Request.Context(), req.Number, req.TaxID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAccountResponse(account))
}

// ApplyTransaction handles the POST /banco/transacoes/ endpoint
func (h *BankHandler) ApplyTransaction(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	receipt, err := h.bankService.ApplyTransaction(
		c.Request.Context(), req.AccountNumber, req.Kind, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReceiptResponse{Message: receipt.Message})
}

// GetStatement handles the GET /banco/contas/:numero endpoint
func (h *BankHandler) GetStatement(c *gin.Context) {
	number, err := strconv.ParseInt(c.Param("numero"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid account number format",
		})
		return
	}

	statement, err := h.bankService.GetStatement(c.Request.Context(), number)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStatementResponse(statement))
}
