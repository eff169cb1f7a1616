package sheets

import (
	"context"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"flute-live-api/internal/pkg/config"
	"flute-live-api/internal/pkg/errs"
)

// NewService builds a Sheets API client authenticated as a service account.
// The private key env var usually carries literal "\n" sequences, matching how
// deployment dashboards store multi-line secrets.
func NewService(ctx context.Context, cfg config.SheetsConfig) (*sheetsapi.Service, error) {
	if !cfg.Configured() {
		return nil, errs.New("google sheets credentials not configured")
	}

	conf := &jwt.Config{
		Email:      cfg.ClientEmail,
		PrivateKey: []byte(strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n")),
		Scopes:     []string{sheetsapi.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build sheets service")
	}
	return svc, nil
}
