package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fivetwenty-io/fiken-client/pkg/fiken"
	"github.com/fivetwenty-io/fiken-client/pkg/fikenclient"
)

// session is a configured client plus whatever must be released after use.
type session struct {
	client  fiken.Client
	logger  *fiken.ZapLogger
	closers []func()
}

// Close releases the client, the token store and flushes the logger.
func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}

	_ = s.logger.Sync()
}

// company returns the client scoped to the configured company.
func (s *session) company() (fiken.CompanyClient, error) {
	slug, err := companySlug()
	if err != nil {
		return nil, err
	}

	return s.client.Company(slug), nil
}

func newLogger(verbose bool) (*fiken.ZapLogger, error) {
	if !verbose {
		logger, err := zap.NewProduction(zap.IncreaseLevel(zap.WarnLevel))
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}

		return fiken.NewZapLogger(logger), nil
	}

	logger, err := fiken.NewDevelopmentLogger(true)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}

// newSession builds a client from the CLI configuration. OAuth2 tokens are
// persisted to the NATS token store when one is configured and to the
// config file otherwise.
func newSession(ctx context.Context) (*session, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if config.APIToken == "" && config.AccessToken == "" {
		return nil, ErrNotAuthenticated
	}

	logger, err := newLogger(config.Verbose)
	if err != nil {
		return nil, err
	}

	sess := &session{logger: logger}
	clientConfig := config.clientConfig(logger)

	if config.TokenStore != "" && clientConfig.APIToken == "" {
		store, err := fiken.NewNATSTokenStore(&fiken.NATSKVConfig{
			URL:    config.TokenStore,
			Bucket: config.TokenStoreBucket,
			Key:    config.ClientID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open token store: %w", err)
		}

		sess.closers = append(sess.closers, store.Close)

		sess.client, err = fikenclient.NewWithTokenStore(ctx, clientConfig, store)
		if err != nil {
			sess.Close()

			return nil, fmt.Errorf("failed to create client: %w", err)
		}
	} else {
		clientConfig.TokenPersister = NewConfigPersister()

		sess.client, err = fikenclient.New(ctx, clientConfig)
		if err != nil {
			sess.Close()

			return nil, fmt.Errorf("failed to create client: %w", err)
		}
	}

	sess.closers = append(sess.closers, sess.client.Close)

	return sess, nil
}
