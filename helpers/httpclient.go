package helpers

import (
	"net"
	"net/http"
	"time"

	"code.cloudfoundry.org/cfhttp"

	"github.com/modelwatch/modelwatch/models"
)

func CreateHTTPClient(tlsCerts *models.TLSCerts) (*http.Client, error) {
	if tlsCerts.CertFile == "" || tlsCerts.KeyFile == "" {
		tlsCerts = nil
	}
	client := cfhttp.NewClient()

	transport := client.Transport.(*http.Transport)
	transport.DialContext = (&net.Dialer{
		Timeout: 30 * time.Second,
	}).DialContext
	transport.IdleConnTimeout = 5 * time.Second
	transport.MaxIdleConnsPerHost = 200

	if tlsCerts != nil {
		tlsConfig, err := cfhttp.NewTLSConfig(tlsCerts.CertFile, tlsCerts.KeyFile, tlsCerts.CACertFile)
		if err != nil {
			return nil, err
		}
		transport.TLSClientConfig = tlsConfig
	}

	return client, nil
}
