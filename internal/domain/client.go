package domain

import "time"

// Client клиент студии
type Client struct {
	ID               string
	Name             string
	Phone            string
	Email            string
	Notes            string
	TotalVisits      int
	FavoriteServices []string // ID услуг
	CreatedAt        time.Time
	LastVisit        *time.Time
}

// Clone возвращает независимую копию
func (c *Client) Clone() *Client {
	cp := *c
	cp.FavoriteServices = append([]string(nil), c.FavoriteServices...)
	if c.LastVisit != nil {
		lv := *c.LastVisit
		cp.LastVisit = &lv
	}
	return &cp
}
