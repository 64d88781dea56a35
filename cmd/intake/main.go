package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"premiumcalc/cmd/fx/db_fx"
	"premiumcalc/cmd/fx/model_fx"
	"premiumcalc/cmd/fx/record_fx"
	"premiumcalc/internal/config"
	"premiumcalc/internal/infra"
	"premiumcalc/internal/models/request_models"
	"premiumcalc/internal/repositories"
	"premiumcalc/internal/services"
	"premiumcalc/pkg/logger"
	"premiumcalc/pkg/utils"
)

var intFields = []struct {
	flag  string
	field string
	usage string
}{
	{"age", request_models.FeatureAge, "age in years (18-100)"},
	{"weight", request_models.FeatureWeight, "weight in kg (30-200)"},
	{"height", request_models.FeatureHeight, "height in cm (100-250)"},
	{"diabetes", request_models.FeatureDiabetes, "1 if diabetic, else 0"},
	{"blood-pressure-problems", request_models.FeatureBloodPressureProblems, "1 if blood pressure problems, else 0"},
	{"any-transplants", request_models.FeatureAnyTransplants, "1 if any transplants, else 0"},
	{"any-chronic-diseases", request_models.FeatureAnyChronicDiseases, "1 if any chronic diseases, else 0"},
	{"known-allergies", request_models.FeatureKnownAllergies, "1 if known allergies, else 0"},
	{"history-of-cancer-in-family", request_models.FeatureHistoryOfCancerInFamily, "1 if cancer in family history, else 0"},
	{"number-of-major-surgeries", request_models.FeatureNumberOfMajorSurgeries, "number of major surgeries (0-3)"},
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	flags := []cli.Flag{
		&cli.Float64Flag{Name: "bmi", Usage: "body mass index (10.0-50.0)"},
		&cli.BoolFlag{Name: "remote", Usage: "call the prediction endpoint at API_URL instead of the local model"},
		&cli.StringFlag{Name: "api-url", Usage: "override API_URL"},
		&cli.BoolFlag{Name: "no-record", Usage: "do not append the estimate to the record sinks"},
	}
	for _, f := range intFields {
		flags = append(flags, &cli.IntFlag{Name: f.flag, Usage: f.usage})
	}

	return &cli.App{
		Name:      "intake",
		Usage:     "estimate a health insurance premium",
		Flags:     flags,
		Writer:    stdout,
		ErrWriter: stderr,
		Action: func(c *cli.Context) error {
			return run(c, stdout, stderr)
		},
	}
}

func run(c *cli.Context, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if url := c.String("api-url"); url != "" {
		cfg.Remote.URL = url
	}

	log := logger.New(cfg.Logging.Level, "console")
	defer func() { _ = log.Sync() }()

	predictor, err := buildPredictor(c.Bool("remote"), cfg, log)
	if err != nil {
		return err
	}

	var sink services.RecordSink
	if !c.Bool("no-record") {
		repo, closeRepo := openRepo(cfg, log)
		defer closeRepo()
		ctx, cancel := context.WithTimeout(c.Context, cfg.Record.Timeout)
		sink = record_fx.BuildRecordSink(ctx, cfg, repo, log)
		cancel()
	}

	intake := services.NewIntakeService(predictor, sink, cfg.Record.Timeout, log)
	res, err := intake.Estimate(c.Context, requestFromFlags(c))
	if err != nil {
		return errors.New(describe(err))
	}

	fmt.Fprintf(stdout, "Predicted Premium Price: %.2f\n", res.Premium)
	if res.RecordErr != nil {
		fmt.Fprintf(stderr, "Warning: estimate was not saved: %v\n", res.RecordErr)
	}
	return nil
}

func buildPredictor(remote bool, cfg *config.Config, log *zap.Logger) (services.PremiumPredictor, error) {
	if remote {
		return services.NewRemotePremiumClient(cfg.Remote.URL, cfg.Remote.Timeout), nil
	}
	m, err := model_fx.Load(cfg.Model.Path, log)
	if err != nil {
		return nil, err
	}
	return services.NewPremiumService(m), nil
}

func openRepo(cfg *config.Config, log *zap.Logger) (repositories.PremiumRecordRepositoryInterface, func()) {
	if !cfg.Record.Enabled(config.SinkPostgres) {
		return nil, func() {}
	}
	db, err := db_fx.Open(cfg.Postgres.URL)
	if err != nil {
		log.Warn("postgres unavailable", zap.Error(err))
		return nil, func() {}
	}
	return repositories.NewPremiumRecordRepository(db), func() { infra.ClosePostgresql(db) }
}

// requestFromFlags leaves unset flags as absent fields.
func requestFromFlags(c *cli.Context) request_models.PremiumRequest {
	var req request_models.PremiumRequest
	if c.IsSet("bmi") {
		v := c.Float64("bmi")
		req.BMI = &v
	}
	for _, f := range intFields {
		if !c.IsSet(f.flag) {
			continue
		}
		v := c.Int(f.flag)
		switch f.field {
		case request_models.FeatureAge:
			req.Age = &v
		case request_models.FeatureWeight:
			req.Weight = &v
		case request_models.FeatureHeight:
			req.Height = &v
		case request_models.FeatureDiabetes:
			req.Diabetes = &v
		case request_models.FeatureBloodPressureProblems:
			req.BloodPressureProblems = &v
		case request_models.FeatureAnyTransplants:
			req.AnyTransplants = &v
		case request_models.FeatureAnyChronicDiseases:
			req.AnyChronicDiseases = &v
		case request_models.FeatureKnownAllergies:
			req.KnownAllergies = &v
		case request_models.FeatureHistoryOfCancerInFamily:
			req.HistoryOfCancerInFamily = &v
		case request_models.FeatureNumberOfMajorSurgeries:
			req.NumberOfMajorSurgeries = &v
		}
	}
	return req
}

func describe(err error) string {
	var netErr *utils.NetworkError
	if errors.As(err, &netErr) {
		return "Failed to retrieve prediction: " + err.Error()
	}
	return err.Error()
}
