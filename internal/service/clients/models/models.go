package models

// ResolveResult результат поиска или создания клиента
type ResolveResult struct {
	ClientID string
	Created  bool
}

// UpdateClientRequest частичное обновление карточки клиента
type UpdateClientRequest struct {
	Name  *string
	Email *string
	Notes *string
}
