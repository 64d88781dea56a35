package record_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
	"gorm.io/gorm"
	"premiumcalc/internal/config"
	"premiumcalc/internal/infra"
	"premiumcalc/internal/repositories"
	"premiumcalc/internal/services"
)

var Module = fx.Provide(
	provideRecordRepo, provideRecordSink)

func provideRecordRepo(db *gorm.DB) repositories.PremiumRecordRepositoryInterface {
	if db == nil {
		return nil
	}
	return repositories.NewPremiumRecordRepository(db)
}

func provideRecordSink(cfg *config.Config, repo repositories.PremiumRecordRepositoryInterface, log *zap.Logger) services.RecordSink {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Record.Timeout)
	defer cancel()
	return BuildRecordSink(ctx, cfg, repo, log)
}

// BuildRecordSink creates every configured sink. A sink that cannot be
// initialised is logged and left out. Returns nil when no sink is usable.
func BuildRecordSink(ctx context.Context, cfg *config.Config, repo repositories.PremiumRecordRepositoryInterface, log *zap.Logger) services.RecordSink {
	var sinks []services.RecordSink
	for _, name := range cfg.Record.SinkNames() {
		sink, err := buildSink(ctx, name, cfg, repo)
		if err != nil {
			log.Warn("record sink disabled", zap.String("sink", name), zap.Error(err))
			continue
		}
		log.Info("record sink enabled", zap.String("sink", name))
		sinks = append(sinks, sink)
	}
	if len(sinks) == 0 {
		return nil
	}
	return services.NewMultiSink(sinks...)
}

func buildSink(ctx context.Context, name string, cfg *config.Config, repo repositories.PremiumRecordRepositoryInterface) (services.RecordSink, error) {
	switch name {
	case config.SinkWorkbook:
		return services.NewWorkbookRecordSink(cfg.Workbook.Path, cfg.Workbook.Sheet)
	case config.SinkPostgres:
		if repo == nil {
			return nil, fmt.Errorf("postgres is not connected")
		}
		return services.NewPostgresRecordSink(repo), nil
	case config.SinkSheets:
		return buildSheetsSink(ctx, cfg.Sheets)
	default:
		return nil, fmt.Errorf("unknown record sink %q", name)
	}
}

func buildSheetsSink(ctx context.Context, cfg config.SheetsConfig) (services.RecordSink, error) {
	client, err := infra.GoogleHTTPClient(context.Background(), cfg.CredentialsJSON)
	if err != nil {
		return nil, err
	}
	sheetsSvc, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	driveSvc, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("create drive client: %w", err)
	}
	return services.NewSheetsRecordSink(ctx, sheetsSvc, driveSvc, services.SheetsSinkConfig{
		SpreadsheetID:    cfg.SpreadsheetID,
		SpreadsheetTitle: cfg.SpreadsheetTitle,
		Tab:              cfg.Tab,
	})
}
