package gateway

import (
	"net/http"
	"time"

	"github.com/google/go-github/github"

	"github.com/merce-fra/snifftraffic/configs"
)

// Gateway talks to the GitHub REST API. Traffic endpoints need a token
// with push access to the repository, which the transport injects.
type Gateway struct {
	cfg *configs.Configs
	ghc *github.Client
}

func New() *Gateway {
	cfg := configs.New()
	httpClient := &http.Client{
		Timeout:   time.Second * 30,
		Transport: &tokenTransport{cfg: cfg},
	}
	return &Gateway{
		cfg: cfg,
		ghc: github.NewClient(httpClient),
	}
}

type tokenTransport struct {
	cfg *configs.Configs
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	authed := req.Clone(req.Context())
	authed.Header.Set("Accept", "application/vnd.github.v3+json")
	if token, err := t.cfg.GetToken(); err == nil {
		authed.Header.Set("Authorization", "token "+token)
	}
	return http.DefaultTransport.RoundTrip(authed)
}
