package req

// SendMessageRequest is the inbound frame on a conversation websocket and the
// body of the REST send endpoint. Both paths share the same non-empty gate.
type SendMessageRequest struct {
	Text string `json:"text"`
}
