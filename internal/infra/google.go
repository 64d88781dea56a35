package infra

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"
)

// GoogleScopes grants row appends and spreadsheet lookup by title.
var GoogleScopes = []string{sheets.SpreadsheetsScope, drive.DriveReadonlyScope}

// GoogleHTTPClient exchanges a service-account JSON key for an authorised
// HTTP client.
func GoogleHTTPClient(ctx context.Context, credentialsJSON string) (*http.Client, error) {
	conf, err := google.JWTConfigFromJSON([]byte(credentialsJSON), GoogleScopes...)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}
	return conf.Client(ctx), nil
}
