// Package network provides the HTTP client shared by every upstream call.
package network

import (
	"net"
	"net/http"
	"time"

	"github.com/spf13/viper"
	"github.com/streamio-cli/streamio/key"
	"github.com/streamio-cli/streamio/log"
	"golang.org/x/net/http2"
)

// Client is the shared HTTP client. Call Setup after configuration is loaded to apply the
// configured timeout.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
}

// Setup applies network.timeout to the shared client.
func Setup() {
	if seconds := viper.GetInt(key.NetworkTimeout); seconds > 0 {
		Client.Timeout = time.Duration(seconds) * time.Second
	}
}

func newTransport() *http.Transport {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   4,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		ExpectContinueTimeout: time.Second,
	}

	if err := http2.ConfigureTransport(t); err != nil {
		log.Warnf("http2 unavailable, falling back to HTTP/1.1: %v", err)
	}

	return t
}
