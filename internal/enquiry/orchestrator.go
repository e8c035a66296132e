// internal/enquiry/orchestrator.go
package enquiry

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"egs-enquiry/internal/common/errors"
	"egs-enquiry/internal/common/logger"
	"egs-enquiry/internal/common/metrics"
	"egs-enquiry/internal/common/observability"
	"egs-enquiry/internal/session"
)

// Uploader turns a local file into a hosted document. Implementations do not
// retry; a failed upload is terminal for the submission attempt.
type Uploader interface {
	Upload(ctx context.Context, file *File) (*UploadedDoc, error)
}

// Result is the outcome surfaced to the presentation layer. Exactly one of
// Submitted / Unauthenticated / Message-with-error applies.
type Result struct {
	Submitted       bool
	Unauthenticated bool
	LoginURL        string // login target with the current page as return target
	Message         string // success confirmation or local error text
}

// Submitter drives the whole submit protocol. It is the only component that
// performs network I/O and the only one that reads or clears the session
// token.
type Submitter struct {
	uploader Uploader
	tokens   session.TokenStore
	api      *Client
	handler  *errors.ErrorHandler
	logger   logger.Logger
	obs      *observability.Observability
	loginURL string
	tracking Tracking
}

type SubmitterDeps struct {
	Uploader Uploader
	Tokens   session.TokenStore
	API      *Client
	Logger   logger.Logger
	Obs      *observability.Observability
	LoginURL string
	Tracking Tracking
}

func NewSubmitter(deps SubmitterDeps) *Submitter {
	return &Submitter{
		uploader: deps.Uploader,
		tokens:   deps.Tokens,
		api:      deps.API,
		handler:  errors.NewErrorHandler(deps.Logger),
		logger:   deps.Logger,
		obs:      deps.Obs,
		loginURL: deps.LoginURL,
		tracking: deps.Tracking,
	}
}

// Submit executes the protocol strictly in order: validate, check session,
// upload files sequentially in (pax, slot) order, assemble the payload, POST
// it, then map the response. On success the form resets to one empty pax; on
// any other outcome the in-memory form state is retained, attached files
// included.
func (s *Submitter) Submit(ctx context.Context, form *Form) (*Result, error) {
	start := time.Now()
	formName := form.Spec.Name

	res, err := s.submit(ctx, form)

	status := "success"
	if err != nil {
		status = "error"
		metrics.EnquiriesFailed.WithLabelValues(formName, string(errors.Code(err))).Inc()
	} else if res.Submitted {
		metrics.EnquiriesSubmitted.WithLabelValues(formName).Inc()
	}
	metrics.SubmissionDuration.WithLabelValues(formName).Observe(time.Since(start).Seconds())
	if s.obs != nil {
		s.obs.RecordSubmission(ctx, formName, status)
		s.obs.RecordSubmissionDuration(ctx, time.Since(start), formName, status)
	}

	return res, err
}

func (s *Submitter) submit(ctx context.Context, form *Form) (*Result, error) {
	// 1. Re-validate; invalid forms never reach the network.
	if vr := form.Validate(); !vr.Valid {
		err := errors.NewValidationFailedError(strings.Join(vr.GetErrorMessages(), "; "))
		return &Result{Message: s.handler.Handle(form.Spec.Name, err)}, err
	}

	// 2. Session lookup. A missing token is reported as an unauthenticated
	// result rather than a side-effecting redirect; form state stays intact
	// but the attempt is not resumed automatically after login.
	token, err := s.tokens.Token(ctx)
	if err != nil {
		if stderrors.Is(err, session.ErrNoToken) {
			stdErr := errors.NewSessionMissingError()
			return &Result{
				Unauthenticated: true,
				LoginURL:        s.loginRedirect(),
				Message:         s.handler.Handle(form.Spec.Name, stdErr),
			}, stdErr
		}
		return &Result{Message: s.handler.Handle(form.Spec.Name, err)}, err
	}

	// 3. Sequential uploads, pax order then slot order. The first failure
	// aborts the attempt; earlier uploads are not rolled back.
	docs, err := s.uploadAll(ctx, form)
	if err != nil {
		return &Result{Message: s.handler.Handle(form.Spec.Name, err)}, err
	}

	// 4. Assemble the payload fresh for this attempt.
	payload := assemblePayload(form, docs, s.tracking, time.Now())

	// 5-7. POST and map the response.
	err = s.api.SubmitEnquiry(ctx, form.Spec.EndpointPath, token, payload)
	if stderrors.Is(err, ErrUnauthorized) {
		if clearErr := s.tokens.Clear(ctx); clearErr != nil {
			s.logger.Warn("failed to clear rejected session token", map[string]interface{}{
				"error": clearErr,
			})
		}
		stdErr := errors.NewSessionRejectedError("backend returned 401")
		return &Result{
			Unauthenticated: true,
			LoginURL:        s.loginRedirect(),
			Message:         s.handler.Handle(form.Spec.Name, stdErr),
		}, stdErr
	}
	if err != nil {
		return &Result{Message: s.handler.Handle(form.Spec.Name, err)}, err
	}

	// 8. Success: reset to the initial single-empty-pax shape.
	s.logger.Info("enquiry submitted", map[string]interface{}{
		"form":  form.Spec.Name,
		"paxes": form.Paxes.Len(),
	})
	form.Reset()

	return &Result{
		Submitted: true,
		Message:   "Enquiry submitted successfully",
	}, nil
}

// uploadAll uploads every resolved slot strictly in (pax index, slot index)
// order and assigns 1-based document indexes per pax.
func (s *Submitter) uploadAll(ctx context.Context, form *Form) ([][]UploadedDoc, error) {
	docs := make([][]UploadedDoc, form.Paxes.Len())
	for i, p := range form.Paxes.Paxes() {
		docs[i] = make([]UploadedDoc, 0, len(p.Files))
		for slot, file := range p.Files {
			if file == nil {
				continue
			}

			uploadStart := time.Now()
			doc, err := s.uploader.Upload(ctx, file)
			if err != nil {
				if s.obs != nil {
					s.obs.RecordUploadDuration(ctx, time.Since(uploadStart), "error")
				}
				if _, ok := err.(*errors.StandardError); ok {
					return nil, err
				}
				return nil, errors.NewUploadFailedError(file.Name, err)
			}
			if s.obs != nil {
				s.obs.RecordUploadDuration(ctx, time.Since(uploadStart), "success")
			}
			metrics.FilesUploaded.WithLabelValues(form.Spec.Name).Inc()
			metrics.UploadBytes.Add(float64(file.Size))

			doc.Index = slot + 1
			docs[i] = append(docs[i], *doc)
		}
	}
	return docs, nil
}

// loginRedirect builds the login URL carrying the current page as the return
// target.
func (s *Submitter) loginRedirect() string {
	if s.tracking.PageURL == "" {
		return s.loginURL
	}
	return fmt.Sprintf("%s?redirect=%s", s.loginURL, url.QueryEscape(s.tracking.PageURL))
}
