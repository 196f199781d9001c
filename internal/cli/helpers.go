package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"runcalc/internal/analysis"
	"runcalc/internal/config"
	"runcalc/internal/input"
	"runcalc/internal/logging"
	"runcalc/internal/service"
)

// session holds what every command needs: config, logger and calculator
type session struct {
	cfg    *config.Config
	log    *logrus.Logger
	closer io.Closer
	calc   *service.CalculatorService
}

func openSession() (*session, error) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, closer, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("setting up logging: %w", err)
	}

	return &session{
		cfg:    cfg,
		log:    logger,
		closer: closer,
		calc:   service.NewCalculatorService(logger),
	}, nil
}

func (s *session) Close() error {
	return s.closer.Close()
}

// distanceOrDefault parses a --distance flag, falling back to the configured value
func distanceOrDefault(flag, fallback string) (analysis.Distance, error) {
	if flag == "" {
		flag = fallback
	}
	return analysis.ParseDistance(flag)
}

// parseClock parses a --time or --pace flag into hours, minutes and seconds
func parseClock(name, value string) (int, int, int, error) {
	h, m, s, err := input.Clock(value)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("--%s: %w", name, err)
	}
	return h, m, s, nil
}
