package get_daily_revenue

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/service/access"
)

const (
	msgForbidden   = "касса доступна только администратору"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

// DailyRevenueResponse касса за день и общий баланс
type DailyRevenueResponse struct {
	Date         string               `json:"date"`
	Revenue      int64                `json:"revenue"`
	Expenses     int64                `json:"expenses"`
	Balance      int64                `json:"balance"`
	TotalIncome  int64                `json:"totalIncome"`
	TotalExpense int64                `json:"totalExpense"`
	Transactions []TransactionSummary `json:"transactions"`
}

// TransactionSummary операция в отчёте за день
type TransactionSummary struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Amount      int64  `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

type Handler struct {
	cash         CashReport
	policy       AccessPolicy
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// TimeProvider источник текущего времени для даты по умолчанию
type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

func NewHandler(cash CashReport, policy AccessPolicy, location *time.Location, logger Logger) *Handler {
	return &Handler{
		cash:         cash,
		policy:       policy,
		location:     location,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Handle GET /api/v1/cash/revenue
// Query params: date (optional, YYYY-MM-DD, по умолчанию сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor := handlers.ActorFrom(r.Context())
	if err := h.policy.Check(actor, access.ActionManageCash); err != nil {
		h.logger.Warn("GET /cash/revenue - Access denied: role=%s", actor.Role)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		dateStr = h.timeProvider.Now().In(h.location).Format(domain.DateFormat)
	}
	date, err := handlers.ParseDate(dateStr, h.location)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	summary := h.cash.Summary(r.Context())
	list := h.cash.ForDate(r.Context(), date)

	resp := DailyRevenueResponse{
		Date:         dateStr,
		Revenue:      h.cash.DailyRevenue(r.Context(), date),
		Expenses:     h.cash.DailyExpenses(r.Context(), date),
		Balance:      summary.Balance,
		TotalIncome:  summary.Income,
		TotalExpense: summary.Expense,
		Transactions: make([]TransactionSummary, 0, len(list)),
	}
	for _, tx := range list {
		resp.Transactions = append(resp.Transactions, TransactionSummary{
			ID:          tx.ID,
			Type:        string(tx.Type),
			Amount:      tx.Amount,
			Category:    tx.Category,
			Description: tx.Description,
			CreatedAt:   handlers.FormatTime(tx.CreatedAt),
		})
	}

	h.logger.Info("GET /cash/revenue - Report built: date=%s, revenue=%d, expenses=%d", dateStr, resp.Revenue, resp.Expenses)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
