package dto

// TransactionRequest is the payload for POST /banco/transacoes/
type TransactionRequest struct {
	AccountNumber int64   `json:"numero_conta" binding:"required"`
	Kind          string  `json:"tipo_de_transacao" binding:"required"`
	Amount        float64 `json:"valor" binding:"required"`
}

// ReceiptResponse confirms an applied transaction
type ReceiptResponse struct {
	Message string `json:"mensagem"`
}
