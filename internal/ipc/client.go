package ipc

import (
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/1broseidon/edgesnap/internal/runtimepath"
)

// DefaultTimeout bounds dialing plus one request/response exchange.
const DefaultTimeout = 5 * time.Second

// Client talks to a running daemon. Each call opens its own connection.
type Client struct {
	socketPath string
	pathErr    error
	timeout    time.Duration
}

// NewClient returns a client for the daemon socket of the current user.
// A socket path that cannot be resolved is reported by the first call.
func NewClient() *Client {
	path, err := runtimepath.SocketPath()
	return &Client{socketPath: path, pathErr: err, timeout: DefaultTimeout}
}

// sendRequest writes one request line and decodes the reply. ERROR
// replies become errors.
func (c *Client) sendRequest(req *Request) (*Response, error) {
	if c.pathErr != nil {
		return nil, fmt.Errorf("failed to resolve daemon socket: %w", c.pathErr)
	}
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon: %w (is the daemon running?)", err)
	}
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(c.timeout))

	if err := json.NewEncoder(conn).Encode(req); err != nil {
		return nil, fmt.Errorf("failed to send %s: %w", req.Command, err)
	}

	var resp Response
	if err := json.NewDecoder(conn).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", req.Command, err)
	}
	if resp.Status == "ERROR" {
		return nil, fmt.Errorf("daemon error: %s", resp.Error)
	}
	return &resp, nil
}

// fetch sends a payload-less command and decodes the reply data as T.
func fetch[T any](c *Client, cmd CommandType) (*T, error) {
	resp, err := c.sendRequest(&Request{Command: cmd})
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return nil, fmt.Errorf("failed to parse %s data: %w", cmd, err)
	}
	return out, nil
}

// Reload asks the daemon to re-read its configuration.
func (c *Client) Reload() error {
	_, err := c.sendRequest(&Request{Command: CommandReload})
	return err
}

func (c *Client) GetStatus() (*StatusData, error) {
	return fetch[StatusData](c, CommandGetStatus)
}

// GetEdges returns the edge cache of the live grab, or a preview for the
// active window when no grab is running.
func (c *Client) GetEdges() (*EdgesData, error) {
	return fetch[EdgesData](c, CommandGetEdges)
}

func (c *Client) GetMonitors() (*MonitorsData, error) {
	return fetch[MonitorsData](c, CommandGetMonitors)
}
