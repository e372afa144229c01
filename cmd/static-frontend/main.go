package main

import (
	"github.com/imposter-project/static-frontend/internal/adapter"
	"github.com/imposter-project/static-frontend/internal/adapter/awslambda"
	"github.com/imposter-project/static-frontend/internal/adapter/httpserver"
	"github.com/imposter-project/static-frontend/internal/version"
	"github.com/imposter-project/static-frontend/pkg/logger"
)

func main() {
	logger.Infof("static-frontend proxy version %s (mode: %s)", version.Version, adapter.DetectMode())

	var a adapter.Adapter
	if adapter.IsLambda() {
		a = awslambda.NewAdapter()
	} else {
		a = httpserver.NewAdapter()
	}
	a.Start()
}
