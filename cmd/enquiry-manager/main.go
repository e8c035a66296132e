// cmd/enquiry-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"egs-enquiry/internal/common/config"
	"egs-enquiry/internal/common/database"
	commonhttp "egs-enquiry/internal/common/http"
	"egs-enquiry/internal/common/logger"
	"egs-enquiry/internal/common/observability"
	"egs-enquiry/internal/enquiry"
	"egs-enquiry/internal/forms"
	"egs-enquiry/internal/session"
	"egs-enquiry/internal/uploader"
)

// submissionInput is the JSON file describing one enquiry to submit.
type submissionInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Paxes []struct {
		Fields        map[string]string `json:"fields"`
		NoOfDocuments int               `json:"noOfDocuments,omitempty"`
		Quantities    map[string]int    `json:"quantities,omitempty"`
		Files         []string          `json:"files"` // local paths, one per slot
	} `json:"paxes"`
	PageURL string `json:"pageUrl,omitempty"`
}

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	var (
		formName  = flag.String("form", "", "form to submit (e.g. pcc-legalization)")
		inputPath = flag.String("input", "", "path to the submission input JSON")
		token     = flag.String("token", "", "seed the session store with this bearer token")
		listForms = flag.Bool("list", false, "list registered forms and exit")
	)
	flag.Parse()

	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	if *listForms {
		for _, spec := range forms.All() {
			enabled := config.IsFormEnabled(cfg, spec.Name)
			fmt.Printf("%-20s %-28s enabled=%v -> %s\n", spec.Name, spec.DisplayName, enabled, spec.EndpointPath)
		}
		return
	}

	if *formName == "" || *inputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: enquiry-manager -form <name> -input <file> [-token <bearer>]")
		os.Exit(2)
	}

	spec, ok := forms.Get(*formName)
	if !ok {
		zapLog.Fatal("unknown form", zap.String("form", *formName))
	}
	if !config.IsFormEnabled(cfg, spec.Name) {
		zapLog.Fatal("form disabled by configuration", zap.String("form", spec.Name))
	}

	ctx := context.Background()

	// --- Init Redis with retry ---
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Session.Redis)
		if err != nil {
			return err
		}
		return redisClient.Ping(ctx)
	}, 5, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis unavailable", zap.Error(err))
	}
	defer redisClient.Close()

	tokens := session.NewRedisStore(redisClient, cfg.Session.StorageKey)
	if *token != "" {
		if err := tokens.Set(ctx, *token); err != nil {
			zapLog.Fatal("failed to seed session token", zap.Error(err))
		}
	}

	// --- Metrics endpoint ---
	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Address, mux); err != nil {
				zapLog.Warn("metrics server stopped", zap.Error(err))
			}
		}()
	}

	form, tracking, err := buildForm(spec, *inputPath, cfg.Uploads.MaxFileBytes)
	if err != nil {
		zapLog.Fatal("failed to build form from input", zap.Error(err))
	}

	submitter := enquiry.NewSubmitter(enquiry.SubmitterDeps{
		Uploader: uploader.NewCloudinary(cfg.Uploads, log),
		Tokens:   tokens,
		API: enquiry.NewClient(
			commonhttp.NewClientWithCredentials(config.GetDuration(cfg.API.Timeout)),
			cfg.API.BaseURL,
			log,
		),
		Logger:   log,
		Obs:      obs,
		LoginURL: cfg.Session.LoginURL,
		Tracking: tracking,
	})

	result, err := submitter.Submit(ctx, form)
	switch {
	case err == nil && result.Submitted:
		fmt.Println(result.Message)
	case result != nil && result.Unauthenticated:
		fmt.Fprintf(os.Stderr, "%s\nlogin: %s\n", result.Message, result.LoginURL)
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, result.Message)
		os.Exit(1)
	}
}

// buildForm populates a form instance from the input file, attaching files
// from disk in slot order.
func buildForm(spec *enquiry.FormSpec, inputPath string, maxFileBytes int64) (*enquiry.Form, enquiry.Tracking, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, enquiry.Tracking{}, err
	}

	var input submissionInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, enquiry.Tracking{}, fmt.Errorf("parse input: %w", err)
	}

	form := enquiry.NewForm(spec)
	form.Paxes.SetMaxFileBytes(maxFileBytes)
	form.Base = enquiry.BaseFields{Name: input.Name, Email: input.Email, Phone: input.Phone}

	for i, paxInput := range input.Paxes {
		var pax *enquiry.Pax
		if i == 0 {
			pax = form.Paxes.Paxes()[0]
		} else {
			pax = form.Paxes.AddPax()
		}

		for field, value := range paxInput.Fields {
			form.Paxes.UpdateField(pax.ID, field, value)
		}
		for label, qty := range paxInput.Quantities {
			for n := 0; n < qty; n++ {
				form.Paxes.IncrementDocType(pax.ID, label)
			}
		}
		if paxInput.NoOfDocuments > 0 {
			form.Paxes.SetDocumentCount(pax.ID, paxInput.NoOfDocuments)
		}

		for slot, path := range paxInput.Files {
			file, err := readFile(path)
			if err != nil {
				return nil, enquiry.Tracking{}, err
			}
			if err := form.Paxes.SetFile(pax.ID, slot, file); err != nil {
				return nil, enquiry.Tracking{}, err
			}
		}
	}

	tracking := enquiry.Tracking{
		PageURL:   input.PageURL,
		UserAgent: "egs-enquiry-manager/1.0",
	}
	return form, tracking, nil
}

func readFile(path string) (*enquiry.File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &enquiry.File{
		Name:        filepath.Base(path),
		ContentType: contentTypeFor(path),
		Size:        int64(len(content)),
		Content:     content,
	}, nil
}

func contentTypeFor(path string) string {
	switch filepath.Ext(path) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
