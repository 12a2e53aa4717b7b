package gateway

import (
	"encoding/json"

	"github.com/voxforge/storage-api/internal/entities/items"
)

// Protocol version spoken over the gateway socket. The host side rejects
// mismatches at HELLO time.
const Version = 1

// Methods the gateway understands. Each request names one inventory
// peripheral (except names, which enumerates them).
const (
	MethodNames      = "names"
	MethodSize       = "size"
	MethodList       = "list"
	MethodItemDetail = "item_detail"
	MethodItemLimit  = "item_limit"
	MethodPushItems  = "push_items"
)

// HelloMsg is the first frame sent after dialing.
type HelloMsg struct {
	ProtocolVersion int    `json:"protocol_version"`
	ClientName      string `json:"client_name"`
}

// Request is one peripheral call. Fields beyond Method and Target are
// method-specific and omitted when unused.
type Request struct {
	ID       uint64 `json:"id"`
	Method   string `json:"method"`
	Target   string `json:"target,omitempty"`
	Slot     int    `json:"slot,omitempty"`
	To       string `json:"to,omitempty"`
	FromSlot int    `json:"from_slot,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	ToSlot   int    `json:"to_slot,omitempty"`
}

// Response carries the result for the request with the matching ID.
// Exactly one of the result fields or Error is populated.
type Response struct {
	ID     uint64                    `json:"id"`
	Names  []string                  `json:"names,omitempty"`
	Size   *int                      `json:"size,omitempty"`
	Slots  map[string]items.ItemStack `json:"slots,omitempty"`
	Detail *items.ItemDetail         `json:"detail,omitempty"`
	Limit  *int                      `json:"limit,omitempty"`
	Moved  *int                      `json:"moved,omitempty"`
	Error  *ResponseError            `json:"error,omitempty"`
}

// ResponseError is the host-side failure report for one request.
type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DecodeResponse parses one frame from the gateway.
func DecodeResponse(data []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
