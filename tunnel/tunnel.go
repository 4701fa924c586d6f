// Package tunnel exposes the local server through a public ngrok endpoint
// for development against real Slack webhooks.
package tunnel

import (
	"context"
	"net"

	"golang.ngrok.com/ngrok"
	ngrokconfig "golang.ngrok.com/ngrok/config"
)

// Listen opens a public HTTPS endpoint on the given domain. The ngrok
// authtoken is read from NGROK_AUTHTOKEN.
func Listen(ctx context.Context, domain string) (net.Listener, string, error) {
	listener, err := ngrok.Listen(ctx,
		ngrokconfig.HTTPEndpoint(ngrokconfig.WithDomain(domain)),
		ngrok.WithAuthtokenFromEnv(),
	)
	if err != nil {
		return nil, "", err
	}
	return listener, listener.URL(), nil
}
