package add_transaction

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
	"github.com/m04kA/SMC-StudioBooking/internal/service/ledger"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgForbidden          = "касса доступна только администратору"
	msgInvalidAmount      = "сумма должна быть положительной"
	msgInvalidType        = "тип операции должен быть income или expense"
	msgInvalidInput       = "некорректные данные операции"
)

type Handler struct {
	ledger CashLedger
	policy AccessPolicy
	logger Logger
}

func NewHandler(ledger CashLedger, policy AccessPolicy, logger Logger) *Handler {
	return &Handler{
		ledger: ledger,
		policy: policy,
		logger: logger,
	}
}

// Handle POST /api/v1/cash/transactions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor := handlers.ActorFrom(r.Context())
	if err := h.policy.Check(actor, access.ActionManageCash); err != nil {
		h.logger.Warn("POST /cash/transactions - Access denied: role=%s", actor.Role)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	var req AddTransactionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cash/transactions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	tx, err := h.ledger.Record(r.Context(), req.ToRecordInput(actor.UserID))
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidAmount):
			handlers.RespondBadRequest(w, msgInvalidAmount)
		case errors.Is(err, ledger.ErrInvalidType):
			handlers.RespondBadRequest(w, msgInvalidType)
		default:
			if handlers.StatusFor(err) == http.StatusInternalServerError {
				h.logger.Error("POST /cash/transactions - Failed to record transaction: error=%v", err)
			}
			handlers.RespondDomainError(w, err, msgInvalidInput)
		}
		return
	}

	h.logger.Info("POST /cash/transactions - Transaction recorded successfully: id=%s, type=%s, amount=%d",
		tx.ID, tx.Type, tx.Amount)
	handlers.RespondJSON(w, http.StatusCreated, NewTransactionResponse(tx))
}
