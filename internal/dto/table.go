package dto

type TableDTO struct {
	ID        int       `json:"id"`
	Status    string    `json:"status"`
	PartySize int       `json:"partySize,omitempty"`
	TabID     string    `json:"tabId,omitempty"`
	Total     string    `json:"total,omitempty"`
	Items     []LineDTO `json:"items,omitempty"`
}

type OpenTabRequest struct {
	PartySize int `json:"partySize"`
}

type AddLineRequest struct {
	MenuItemID string `json:"menuItemId"`
	Note       string `json:"note,omitempty"`
}

type AdjustLineRequest struct {
	Delta int `json:"delta"`
}

// KitchenTicket is what a send-to-kitchen fires: only the lines that were
// not part of an earlier send.
type KitchenTicket struct {
	TableID int       `json:"tableId"`
	TabID   string    `json:"tabId"`
	Lines   []LineDTO `json:"lines"`
}
