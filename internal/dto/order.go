package dto

import "time"

type OrderDTO struct {
	ID             string    `json:"id"`
	CustomerName   string    `json:"customerName"`
	Source         string    `json:"source"`
	Items          []LineDTO `json:"items"`
	Total          string    `json:"total"`
	WaitingMinutes int       `json:"waitingMinutes"`
	Type           string    `json:"type"`
	TableNumber    int       `json:"tableNumber,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// BoardResponse groups orders by status in the kanban column order.
type BoardResponse struct {
	Columns []BoardColumn `json:"columns"`
}

type BoardColumn struct {
	Status string     `json:"status"`
	Orders []OrderDTO `json:"orders"`
}

type CreateOrderRequest struct {
	CustomerName string            `json:"customerName"`
	Source       string            `json:"source"`
	Type         string            `json:"type"`
	TableNumber  int               `json:"tableNumber"`
	Items        []CreateOrderItem `json:"items"`
}

type CreateOrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Note       string `json:"note,omitempty"`
}
