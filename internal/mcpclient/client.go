// Package mcpclient talks to an upstream zotero-mcp server over stdio.
// The upstream server covers read operations against the Zotero library,
// including the semantic search backed by its local embedding index.
package mcpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DefaultCommand is the upstream server binary.
const DefaultCommand = "zotero-mcp"

// Client wraps an MCP session with the upstream zotero-mcp server.
type Client struct {
	command string
	env     []string
	session *mcp.ClientSession
}

// Option configures a Client.
type Option func(*Client)

// WithCommand overrides the upstream server command.
func WithCommand(command string) Option {
	return func(c *Client) {
		c.command = command
	}
}

// WithEnv appends environment variables passed to the upstream server.
func WithEnv(env ...string) Option {
	return func(c *Client) {
		c.env = append(c.env, env...)
	}
}

// New creates a client. Connect must be called before any tool call.
func New(opts ...Option) *Client {
	c := &Client{command: DefaultCommand}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect spawns the upstream server and performs the MCP handshake.
func (c *Client) Connect(ctx context.Context) error {
	if c.session != nil {
		return nil
	}

	cmd := exec.Command(c.command)
	cmd.Env = append(os.Environ(), c.env...)

	client := mcp.NewClient(&mcp.Implementation{Name: "zotero-comfort", Version: "0.3.0"}, nil)
	session, err := client.Connect(ctx, &mcp.CommandTransport{Command: cmd}, nil)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", c.command, err)
	}

	c.session = session
	return nil
}

// Close shuts down the upstream server session.
func (c *Client) Close() error {
	if c.session == nil {
		return nil
	}
	err := c.session.Close()
	c.session = nil
	return err
}

// CallTool invokes an upstream tool and returns its text content.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (string, error) {
	if c.session == nil {
		if err := c.Connect(ctx); err != nil {
			return "", err
		}
	}

	res, err := c.session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		return "", fmt.Errorf("calling %s: %w", name, err)
	}

	text := textContent(res)
	if res.IsError {
		return "", fmt.Errorf("%s failed: %s", name, text)
	}
	return text, nil
}

// CallToolJSON invokes a tool and decodes its text content as JSON.
func (c *Client) CallToolJSON(ctx context.Context, name string, args map[string]any, out any) error {
	text, err := c.CallTool(ctx, name, args)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("decoding %s response: %w", name, err)
	}
	return nil
}

func textContent(res *mcp.CallToolResult) string {
	var parts []string
	for _, content := range res.Content {
		if tc, ok := content.(*mcp.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}
