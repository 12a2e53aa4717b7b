// Package gateway implements the peripheral boundary over a websocket
// connection to the host game. The host exposes a small JSON RPC surface
// (names/size/list/item_detail/item_limit/push_items); the client issues
// one request at a time and waits for the matching response.
package gateway

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/voxforge/storage-api/internal/entities/items"
	"github.com/voxforge/storage-api/internal/errors"
	"github.com/voxforge/storage-api/internal/peripheral"
)

const defaultHandshakeTimeout = 5 * time.Second

// Config holds the dependencies for the gateway client.
type Config struct {
	// URL is the websocket endpoint, e.g. ws://localhost:8080/v1/peripherals.
	URL string
	// ClientName identifies this controller in the HELLO frame.
	ClientName string
	// HandshakeTimeout bounds the dial. Zero means 5s.
	HandshakeTimeout time.Duration
}

// Validate ensures required fields are set.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.URL == "" {
		return errors.InvalidArgument("URL cannot be empty")
	}
	return nil
}

// Client is a connected gateway session. It implements
// peripheral.Registry; the inventories it resolves share its connection.
// Calls are serialized: one request is in flight at a time.
type Client struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	nextID uint64
}

var _ peripheral.Registry = (*Client)(nil)

// Dial connects to the gateway and performs the HELLO handshake.
func Dial(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.HandshakeTimeout
	if timeout == 0 {
		timeout = defaultHandshakeTimeout
	}
	dialer := websocket.Dialer{HandshakeTimeout: timeout}
	conn, _, err := dialer.Dial(cfg.URL, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to dial peripheral gateway")
	}

	hello := HelloMsg{ProtocolVersion: Version, ClientName: cfg.ClientName}
	if err := conn.WriteJSON(hello); err != nil {
		_ = conn.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to send HELLO")
	}

	return &Client{conn: conn}, nil
}

// Close tears down the connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.Close()
}

// call performs one request/response round trip.
func (c *Client) call(ctx context.Context, req *Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "gateway call canceled")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	req.ID = c.nextID

	if deadline, ok := ctx.Deadline(); ok {
		_ = c.conn.SetWriteDeadline(deadline)
		_ = c.conn.SetReadDeadline(deadline)
	} else {
		_ = c.conn.SetWriteDeadline(time.Time{})
		_ = c.conn.SetReadDeadline(time.Time{})
	}

	if err := c.conn.WriteJSON(req); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "gateway write failed")
	}

	// Responses arrive in request order; skip stale frames defensively.
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "gateway read failed")
		}
		resp, err := DecodeResponse(data)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInternal, "malformed gateway response")
		}
		if resp.ID != req.ID {
			continue
		}
		if resp.Error != nil {
			return nil, errors.New(errors.Code(resp.Error.Code), resp.Error.Message)
		}
		return resp, nil
	}
}

// Names implements peripheral.Registry.
func (c *Client) Names(ctx context.Context) ([]string, error) {
	resp, err := c.call(ctx, &Request{Method: MethodNames})
	if err != nil {
		return nil, err
	}
	return resp.Names, nil
}

// Inventory implements peripheral.Registry. Resolution is purely local:
// the host validates the target name on the first real call.
func (c *Client) Inventory(_ context.Context, name string) (peripheral.Inventory, error) {
	if name == "" {
		return nil, errors.InvalidArgument("inventory name cannot be empty")
	}
	return &remoteInventory{client: c, name: name}, nil
}

// remoteInventory proxies one peripheral through the shared client.
type remoteInventory struct {
	client *Client
	name   string
}

var _ peripheral.Inventory = (*remoteInventory)(nil)

func (r *remoteInventory) Name() string { return r.name }

func (r *remoteInventory) Size(ctx context.Context) (int, error) {
	resp, err := r.client.call(ctx, &Request{Method: MethodSize, Target: r.name})
	if err != nil {
		return 0, err
	}
	if resp.Size == nil {
		return 0, errors.Internalf("gateway returned no size for %s", r.name)
	}
	return *resp.Size, nil
}

func (r *remoteInventory) List(ctx context.Context) (map[int]items.ItemStack, error) {
	resp, err := r.client.call(ctx, &Request{Method: MethodList, Target: r.name})
	if err != nil {
		return nil, err
	}
	listing := make(map[int]items.ItemStack, len(resp.Slots))
	for key, st := range resp.Slots {
		slot, err := strconv.Atoi(key)
		if err != nil {
			return nil, errors.Internalf("gateway returned bad slot key %q for %s", key, r.name)
		}
		listing[slot] = st
	}
	return listing, nil
}

func (r *remoteInventory) ItemDetail(ctx context.Context, slot int) (*items.ItemDetail, error) {
	resp, err := r.client.call(ctx, &Request{Method: MethodItemDetail, Target: r.name, Slot: slot})
	if err != nil {
		return nil, err
	}
	return resp.Detail, nil
}

func (r *remoteInventory) ItemLimit(ctx context.Context, slot int) (int, error) {
	resp, err := r.client.call(ctx, &Request{Method: MethodItemLimit, Target: r.name, Slot: slot})
	if err != nil {
		return 0, err
	}
	if resp.Limit == nil {
		return 0, errors.Internalf("gateway returned no limit for %s slot %d", r.name, slot)
	}
	return *resp.Limit, nil
}

func (r *remoteInventory) PushItems(ctx context.Context, toName string, fromSlot, limit, toSlot int) (int, error) {
	resp, err := r.client.call(ctx, &Request{
		Method:   MethodPushItems,
		Target:   r.name,
		To:       toName,
		FromSlot: fromSlot,
		Limit:    limit,
		ToSlot:   toSlot,
	})
	if err != nil {
		return 0, err
	}
	if resp.Moved == nil {
		return 0, errors.Internalf("gateway returned no moved count for %s", r.name)
	}
	return *resp.Moved, nil
}
