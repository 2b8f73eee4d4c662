// Package tunnel carries dashboard HTTP requests over an SSH connection so a
// moni server listening on a remote loopback interface can be polled without
// exposing it.
package tunnel

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/abimaelmartell/moni-dash/internal/errors"
)

// contextDialer opens connections as seen from the far side of the tunnel.
type contextDialer interface {
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

// Tunnel is an established SSH connection used as an HTTP transport.
type Tunnel struct {
	dialer  contextDialer
	closer  func() error
	Host    string // The original host/alias used to connect
	Address string // The resolved address (host:port)
}

// Dial establishes an SSH connection to host.
// The host can be:
//   - An SSH config alias (e.g., "myserver")
//   - A hostname (e.g., "192.168.1.100")
//   - A user@hostname (e.g., "user@192.168.1.100")
//   - A hostname:port (e.g., "192.168.1.100:2222")
//
// Connection settings are resolved from ~/.ssh/config when available.
func Dial(ctx context.Context, host string, timeout time.Duration) (*Tunnel, error) {
	settings := resolveSettings(host)

	config, err := buildClientConfig(settings, timeout)
	if err != nil {
		var dashErr *errors.Error
		if stderrors.As(err, &dashErr) {
			return nil, err
		}
		return nil, errors.WrapWithCode(err, errors.ErrSSH,
			fmt.Sprintf("Couldn't set up SSH for '%s'", host),
			"Check your keys are loaded: ssh-add -l")
	}

	address := settings.address()
	d := net.Dialer{Timeout: timeout}
	conn, err := d.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSSH,
			fmt.Sprintf("Can't reach '%s' at %s", host, address),
			suggestionForDialError(err))
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, address, config)
	if err != nil {
		conn.Close()

		var hostKeyErr *HostKeyMismatchError
		if stderrors.As(err, &hostKeyErr) {
			return nil, errors.New(errors.ErrSSH,
				hostKeyErr.Error(),
				hostKeyErr.Suggestion())
		}

		return nil, errors.WrapWithCode(err, errors.ErrSSH,
			fmt.Sprintf("SSH handshake with '%s' didn't go through", host),
			suggestionForHandshakeError(err, settings.encryptedKeys))
	}

	client := ssh.NewClient(sshConn, chans, reqs)
	return &Tunnel{
		dialer:  client,
		closer:  client.Close,
		Host:    host,
		Address: address,
	}, nil
}

// DialContext opens a connection to addr from the remote host.
func (t *Tunnel) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	conn, err := t.dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSSH,
			fmt.Sprintf("Couldn't open %s through '%s'", addr, t.Host),
			"Check the moni server is listening on that address on the remote host")
	}
	return conn, nil
}

// HTTPClient returns an http.Client whose connections go through the tunnel.
func (t *Tunnel) HTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext:       t.DialContext,
			Proxy:             nil,
			ForceAttemptHTTP2: false,
			MaxIdleConns:      2,
			IdleConnTimeout:   90 * time.Second,
		},
	}
}

// Close tears down the SSH connection.
func (t *Tunnel) Close() error {
	if t.closer == nil {
		return nil
	}
	return t.closer()
}
