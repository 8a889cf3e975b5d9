package telegram

// sendMessageRequest тело запроса sendMessage Bot API
type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}
