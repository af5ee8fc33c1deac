package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"comprehend/internal/core/shape"
	perr "comprehend/internal/platform/errors"
	"comprehend/internal/platform/logger"
	"comprehend/internal/platform/ptr"
	cdom "comprehend/internal/services/comprehend/domain"
	"comprehend/internal/services/stub/domain"
)

// family is one kind of asynchronous job
type family struct {
	name     string
	resource string
}

var (
	famEntities         = family{"EntitiesDetection", "entities-detection-job"}
	famSentiment        = family{"SentimentDetection", "sentiment-detection-job"}
	famKeyPhrases       = family{"KeyPhrasesDetection", "key-phrases-detection-job"}
	famDominantLanguage = family{"DominantLanguageDetection", "dominant-language-detection-job"}
	famPiiEntities      = family{"PiiEntitiesDetection", "pii-entities-detection-job"}
	famTopics           = family{"TopicsDetection", "topics-detection-job"}
	famClassification   = family{"DocumentClassification", "document-classification-job"}
)

const defaultPageSize = 100

func (s *Service) arn(resource, id string) string {
	return fmt.Sprintf("arn:aws:comprehend:%s:%s:%s/%s", s.Cfg.Region, s.Cfg.Account, resource, id)
}

// bodyOf returns the stored form of a create input: its wire members minus the token and tags
func bodyOf(in any) (map[string]any, error) {
	b, err := shape.Canonical(in)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "encode input")
	}
	m := map[string]any{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDecode, "decode input")
	}
	delete(m, "ClientRequestToken")
	delete(m, "Tags")
	return m, nil
}

func tagMap(tags []cdom.Tag) map[string]string {
	if len(tags) == 0 {
		return nil
	}
	m := make(map[string]string, len(tags))
	for _, t := range tags {
		m[ptr.Deref(t.Key)] = ptr.Deref(t.Value)
	}
	return m
}

// byToken finds an earlier create of kind (and family) made with the same ClientRequestToken
func (s *Service) byToken(ctx context.Context, kind domain.Kind, fam, token string) (domain.Record, bool, error) {
	if token == "" {
		return domain.Record{}, false, nil
	}
	recs, err := s.Store.List(ctx, kind, fam)
	if err != nil {
		return domain.Record{}, false, err
	}
	for _, r := range recs {
		if r.Token == token {
			return r, true, nil
		}
	}
	return domain.Record{}, false, nil
}

// jobStart is what a Start call carries beyond its stored body
type jobStart struct {
	name  *string
	token *string
	tags  []cdom.Tag
	ref   string
}

func (s *Service) startJob(ctx context.Context, fam family, in any, js jobStart) (domain.Record, error) {
	if prev, ok, err := s.byToken(ctx, domain.KindJob, fam.name, ptr.Deref(js.token)); err != nil || ok {
		return prev, err
	}
	body, err := bodyOf(in)
	if err != nil {
		return domain.Record{}, err
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return domain.Record{}, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "encode job body")
	}

	id := newID()
	at := now().UTC()
	r := domain.Record{
		Kind:      domain.KindJob,
		ID:        id,
		ARN:       s.arn(fam.resource, id),
		Family:    fam.name,
		Name:      ptr.Deref(js.name),
		Token:     ptr.Deref(js.token),
		Ref:       js.ref,
		Body:      raw,
		Tags:      tagMap(js.tags),
		CreatedAt: at,
		UpdatedAt: at,
	}
	if err := s.Store.Put(ctx, r); err != nil {
		return domain.Record{}, err
	}
	logger.C(ctx).Info().Str("family", fam.name).Str("job_id", id).Msg("job submitted")
	return r, nil
}

// jobStatus derives the status of a job from the clock: each step takes one JobPace
func (s *Service) jobStatus(r domain.Record) (cdom.JobStatus, *time.Time) {
	p := s.Cfg.JobPace
	t := now()
	if r.StoppedAt != nil {
		end := r.StoppedAt.Add(p)
		if t.Before(end) {
			return cdom.JobStatusStopRequested, nil
		}
		return cdom.JobStatusStopped, &end
	}
	switch el := t.Sub(r.CreatedAt); {
	case el < p:
		return cdom.JobStatusSubmitted, nil
	case el < 2*p:
		return cdom.JobStatusInProgress, nil
	}
	end := r.CreatedAt.Add(2 * p)
	return cdom.JobStatusCompleted, &end
}

func terminal(st cdom.JobStatus) bool {
	return st == cdom.JobStatusCompleted || st == cdom.JobStatusFailed || st == cdom.JobStatusStopped
}

func (s *Service) job(ctx context.Context, fam family, id string) (domain.Record, error) {
	r, err := s.Store.Get(ctx, domain.Key{Kind: domain.KindJob, ID: id})
	if perr.IsCode(err, perr.ErrorCodeNotFound) || (err == nil && r.Family != fam.name) {
		return domain.Record{}, fault(cdom.ErrorKindJobNotFound, "job %s not found", id)
	}
	return r, err
}

// properties merges a record's body with its derived members and decodes the result into P
func properties[P any](r domain.Record, derived map[string]any) (*P, error) {
	m := map[string]any{}
	if len(r.Body) > 0 {
		if err := json.Unmarshal(r.Body, &m); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeDecode, "record %s body", r.ID)
		}
	}
	for k, v := range derived {
		if v != nil {
			m[k] = v
		}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "encode properties")
	}
	return shape.Decode[P](b)
}

func (s *Service) jobProperties(r domain.Record) map[string]any {
	st, end := s.jobStatus(r)
	m := map[string]any{
		"JobId":      r.ID,
		"JobArn":     r.ARN,
		"JobStatus":  st,
		"SubmitTime": shape.At(r.CreatedAt),
	}
	if r.Name != "" {
		m["JobName"] = r.Name
	}
	if end != nil {
		m["EndTime"] = shape.At(*end)
	}
	if st == cdom.JobStatusStopped {
		m["Message"] = "job was stopped"
	}
	return m
}

func describeJob[P any](ctx context.Context, s *Service, fam family, in *cdom.DescribeJobInput) (*P, error) {
	r, err := s.job(ctx, fam, *in.JobId)
	if err != nil {
		return nil, err
	}
	return properties[P](r, s.jobProperties(r))
}

func (s *Service) stopJob(ctx context.Context, fam family, in *cdom.StopJobInput) (*cdom.StopJobOutput, error) {
	r, err := s.job(ctx, fam, *in.JobId)
	if err != nil {
		return nil, err
	}
	st, _ := s.jobStatus(r)
	if terminal(st) || st == cdom.JobStatusStopRequested {
		return &cdom.StopJobOutput{JobId: ptr.To(r.ID), JobStatus: ptr.To(st)}, nil
	}
	at := now().UTC()
	r.StoppedAt = &at
	r.UpdatedAt = at
	if err := s.Store.Put(ctx, r); err != nil {
		return nil, err
	}
	return &cdom.StopJobOutput{JobId: ptr.To(r.ID), JobStatus: ptr.To(cdom.JobStatusStopRequested)}, nil
}

// matchJob applies a job filter. At most one criterion may be set
func (s *Service) matchJob(f *cdom.JobFilter) (func(domain.Record) bool, error) {
	if f == nil {
		return func(domain.Record) bool { return true }, nil
	}
	set := 0
	for _, on := range []bool{f.JobName != nil, f.JobStatus != nil, f.SubmitTimeBefore != nil, f.SubmitTimeAfter != nil} {
		if on {
			set++
		}
	}
	if set > 1 {
		return nil, fault(cdom.ErrorKindInvalidFilter, "only one filter criterion can be set at a time")
	}
	return func(r domain.Record) bool {
		switch {
		case f.JobName != nil:
			return r.Name == *f.JobName
		case f.JobStatus != nil:
			st, _ := s.jobStatus(r)
			return st == *f.JobStatus
		case f.SubmitTimeBefore != nil:
			return r.CreatedAt.Before(f.SubmitTimeBefore.Time())
		case f.SubmitTimeAfter != nil:
			return r.CreatedAt.After(f.SubmitTimeAfter.Time())
		}
		return true
	}, nil
}

type listArgs struct {
	next *string
	max  *int32
}

func listJobs[P any](ctx context.Context, s *Service, fam family, f *cdom.JobFilter, la listArgs) ([]P, *string, error) {
	keep, err := s.matchJob(f)
	if err != nil {
		return nil, nil, err
	}
	return listRecords(ctx, s, domain.KindJob, fam.name, keep, la, func(r domain.Record) (*P, error) {
		return properties[P](r, s.jobProperties(r))
	})
}

// listRecords pages through the records of kind that keep accepts and renders each one
func listRecords[P any](ctx context.Context, s *Service, kind domain.Kind, fam string, keep func(domain.Record) bool, la listArgs, render func(domain.Record) (*P, error)) ([]P, *string, error) {
	recs, err := s.Store.List(ctx, kind, fam)
	if err != nil {
		return nil, nil, err
	}
	matched := make([]domain.Record, 0, len(recs))
	for _, r := range recs {
		if keep(r) {
			matched = append(matched, r)
		}
	}
	window, next, err := page(matched, la)
	if err != nil {
		return nil, nil, err
	}
	out := make([]P, 0, len(window))
	for _, r := range window {
		p, err := render(r)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, *p)
	}
	return out, next, nil
}

// page cuts one window out of items. Tokens are opaque offsets
func page[T any](items []T, la listArgs) ([]T, *string, error) {
	start := 0
	if la.next != nil {
		n, err := decodeToken(*la.next)
		if err != nil || n > len(items) {
			return nil, nil, fault(cdom.ErrorKindInvalidRequest, "invalid NextToken")
		}
		start = n
	}
	size := defaultPageSize
	if la.max != nil {
		size = int(*la.max)
	}
	end := min(start+size, len(items))
	var next *string
	if end < len(items) {
		next = ptr.To(encodeToken(end))
	}
	return items[start:end], next, nil
}

func encodeToken(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte("o:" + strconv.Itoa(offset)))
}

func decodeToken(tok string) (int, error) {
	b, err := base64.RawURLEncoding.DecodeString(tok)
	if err != nil || len(b) < 3 || string(b[:2]) != "o:" {
		return 0, perr.InvalidArgf("malformed token")
	}
	n, err := strconv.Atoi(string(b[2:]))
	if err != nil || n < 0 {
		return 0, perr.InvalidArgf("malformed token")
	}
	return n, nil
}

func startOutput(r domain.Record, s *Service) *cdom.StartJobOutput {
	st, _ := s.jobStatus(r)
	return &cdom.StartJobOutput{JobId: ptr.To(r.ID), JobArn: ptr.To(r.ARN), JobStatus: ptr.To(st)}
}

func (s *Service) startEntitiesDetectionJob(ctx context.Context, in *cdom.StartEntitiesDetectionJobInput) (*cdom.StartEntitiesDetectionJobOutput, error) {
	if in.FlywheelArn != nil {
		if _, err := s.flywheel(ctx, *in.FlywheelArn); err != nil {
			return nil, err
		}
	}
	r, err := s.startJob(ctx, famEntities, in, jobStart{name: in.JobName, token: in.ClientRequestToken, tags: in.Tags, ref: ptr.Deref(in.EntityRecognizerArn)})
	if err != nil {
		return nil, err
	}
	o := startOutput(r, s)
	out := &cdom.StartEntitiesDetectionJobOutput{JobId: o.JobId, JobArn: o.JobArn, JobStatus: o.JobStatus}
	if r.Ref != "" {
		out.EntityRecognizerArn = ptr.To(r.Ref)
	}
	return out, nil
}

func (s *Service) startSentimentDetectionJob(ctx context.Context, in *cdom.StartSentimentDetectionJobInput) (*cdom.StartJobOutput, error) {
	r, err := s.startJob(ctx, famSentiment, in, jobStart{name: in.JobName, token: in.ClientRequestToken, tags: in.Tags})
	if err != nil {
		return nil, err
	}
	return startOutput(r, s), nil
}

func (s *Service) startKeyPhrasesDetectionJob(ctx context.Context, in *cdom.StartKeyPhrasesDetectionJobInput) (*cdom.StartJobOutput, error) {
	r, err := s.startJob(ctx, famKeyPhrases, in, jobStart{name: in.JobName, token: in.ClientRequestToken, tags: in.Tags})
	if err != nil {
		return nil, err
	}
	return startOutput(r, s), nil
}

func (s *Service) startDominantLanguageDetectionJob(ctx context.Context, in *cdom.StartDominantLanguageDetectionJobInput) (*cdom.StartJobOutput, error) {
	r, err := s.startJob(ctx, famDominantLanguage, in, jobStart{name: in.JobName, token: in.ClientRequestToken, tags: in.Tags})
	if err != nil {
		return nil, err
	}
	return startOutput(r, s), nil
}

func (s *Service) startPiiEntitiesDetectionJob(ctx context.Context, in *cdom.StartPiiEntitiesDetectionJobInput) (*cdom.StartJobOutput, error) {
	if in.RedactionConfig != nil && *in.Mode != cdom.PiiEntitiesDetectionModeOnlyRedaction {
		return nil, fault(cdom.ErrorKindInvalidRequest, "RedactionConfig is only valid with Mode ONLY_REDACTION")
	}
	r, err := s.startJob(ctx, famPiiEntities, in, jobStart{name: in.JobName, token: in.ClientRequestToken, tags: in.Tags})
	if err != nil {
		return nil, err
	}
	return startOutput(r, s), nil
}

func (s *Service) startTopicsDetectionJob(ctx context.Context, in *cdom.StartTopicsDetectionJobInput) (*cdom.StartJobOutput, error) {
	r, err := s.startJob(ctx, famTopics, in, jobStart{name: in.JobName, token: in.ClientRequestToken, tags: in.Tags})
	if err != nil {
		return nil, err
	}
	return startOutput(r, s), nil
}

func (s *Service) startDocumentClassificationJob(ctx context.Context, in *cdom.StartDocumentClassificationJobInput) (*cdom.StartDocumentClassificationJobOutput, error) {
	var ref string
	switch {
	case in.DocumentClassifierArn != nil:
		if _, err := s.trainedClassifier(ctx, *in.DocumentClassifierArn); err != nil {
			return nil, err
		}
		ref = *in.DocumentClassifierArn
	case in.FlywheelArn != nil:
		if _, err := s.flywheel(ctx, *in.FlywheelArn); err != nil {
			return nil, err
		}
		ref = *in.FlywheelArn
	default:
		return nil, fault(cdom.ErrorKindInvalidRequest, "one of DocumentClassifierArn or FlywheelArn is required")
	}

	r, err := s.startJob(ctx, famClassification, in, jobStart{name: in.JobName, token: in.ClientRequestToken, tags: in.Tags, ref: ref})
	if err != nil {
		return nil, err
	}
	o := startOutput(r, s)
	return &cdom.StartDocumentClassificationJobOutput{
		JobId:                 o.JobId,
		JobArn:                o.JobArn,
		JobStatus:             o.JobStatus,
		DocumentClassifierArn: in.DocumentClassifierArn,
	}, nil
}
