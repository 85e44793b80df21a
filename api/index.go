package handler

import (
	"net/http"
	"sync"

	"calgrid/config"
	"calgrid/di"
	"calgrid/shared/logger"
	"calgrid/shared/timezone"
	transport "calgrid/transport/http"
)

var (
	once   sync.Once
	server *transport.HTTP
)

// Handler serves the API from a serverless function. The container is built on the first request.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg.Server.Env)
		logger.SetLogLevel(cfg)
		timezone.Init(cfg.App.Timezone)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
