package platform

import (
	"context"
	"fmt"
)

// Chatbot represents a chatbot attached to a workspace
type Chatbot struct {
	ID                 int64   `json:"chatbot_id"`
	ChatbotName        string  `json:"chatbot_name"`
	ChatbotTitle       string  `json:"chatbot_title"`
	ChatbotDescription string  `json:"chatbot_description"`
	WorkspaceID        int64   `json:"workspace_id"`
	SoldeTotal         float64 `json:"solde_total"`
	Active             bool    `json:"active"`
	Deleted            bool    `json:"deleted"`
}

// ChatbotRequest is the create/update payload for a chatbot
type ChatbotRequest struct {
	ChatbotName        string  `json:"chatbot_name"`
	ChatbotTitle       string  `json:"chatbot_title"`
	ChatbotDescription string  `json:"chatbot_description"`
	WorkspaceID        int64   `json:"workspace_id"`
	SoldeTotal         float64 `json:"solde_total"`
}

// ListChatbots retrieves chatbots, optionally paginated. Page 0 requests the
// unpaginated collection.
func (c *Client) ListChatbots(ctx context.Context, page, limit int) (*Page[Chatbot], error) {
	path := "/chatbots"
	if page > 0 {
		path = fmt.Sprintf("/chatbots?page=%d&limit=%d", page, limit)
	}
	return getList[Chatbot](ctx, c, path, "chatbots")
}

// CreateChatbot creates a new chatbot
func (c *Client) CreateChatbot(ctx context.Context, req ChatbotRequest) (*Chatbot, error) {
	var bot Chatbot
	if err := c.Post(ctx, "/chatbots", req, &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

// UpdateChatbot updates an existing chatbot
func (c *Client) UpdateChatbot(ctx context.Context, id int64, req ChatbotRequest) (*Chatbot, error) {
	var bot Chatbot
	if err := c.Put(ctx, fmt.Sprintf("/chatbots/%d", id), req, &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

// ToggleChatbotDeleted flips a chatbot's soft-delete flag
func (c *Client) ToggleChatbotDeleted(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/chatbots/%d", id))
}

// ToggleChatbotActive flips a chatbot's activation flag
func (c *Client) ToggleChatbotActive(ctx context.Context, id int64) error {
	return c.Patch(ctx, fmt.Sprintf("/chatbots/active-desactive/%d", id), nil, nil)
}
