package main

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/rimbac/edubot/internal/container"
	"github.com/rimbac/edubot/internal/gateway"
)

func main() {
	c := container.New()

	mux := gateway.NewRouter(c.Gateway)

	addr := ":" + c.Config.Port
	logrus.WithField("addr", addr).Info("Gateway listening")

	if err := http.ListenAndServe(addr, mux); err != nil {
		logrus.WithError(err).Fatal("Gateway stopped")
	}
}
