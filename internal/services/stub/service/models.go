package service

import (
	"context"
	"encoding/json"
	"time"

	"comprehend/internal/core/shape"
	perr "comprehend/internal/platform/errors"
	"comprehend/internal/platform/logger"
	"comprehend/internal/platform/ptr"
	pstrings "comprehend/internal/platform/strings"
	cdom "comprehend/internal/services/comprehend/domain"
	"comprehend/internal/services/stub/domain"
)

// lookup resolves an ARN to a record of kind, or ResourceNotFoundException
func (s *Service) lookup(ctx context.Context, kind domain.Kind, arn string) (domain.Record, error) {
	r, err := s.Store.ByARN(ctx, arn)
	if perr.IsCode(err, perr.ErrorCodeNotFound) || (err == nil && r.Kind != kind) {
		return domain.Record{}, fault(cdom.ErrorKindResourceNotFound, "resource %s not found", arn)
	}
	return r, err
}

// classifier

func (s *Service) classifierStatus(r domain.Record) (cdom.ModelStatus, *time.Time) {
	p := s.Cfg.JobPace
	t := now()
	if r.StoppedAt != nil {
		end := r.StoppedAt.Add(p)
		if t.Before(end) {
			return cdom.ModelStatusStopRequested, nil
		}
		return cdom.ModelStatusStopped, &end
	}
	switch el := t.Sub(r.CreatedAt); {
	case el < p:
		return cdom.ModelStatusSubmitted, nil
	case el < 2*p:
		return cdom.ModelStatusTraining, nil
	}
	end := r.CreatedAt.Add(2 * p)
	return cdom.ModelStatusTrained, &end
}

func (s *Service) trainedClassifier(ctx context.Context, arn string) (domain.Record, error) {
	r, err := s.lookup(ctx, domain.KindClassifier, arn)
	if err != nil {
		return r, err
	}
	if st, _ := s.classifierStatus(r); st != cdom.ModelStatusTrained {
		return domain.Record{}, fault(cdom.ErrorKindResourceUnavailable, "classifier %s is %s, not TRAINED", arn, st)
	}
	return r, nil
}

// classifierMode reads the mode a classifier was trained in; unknown models are multi-class
func (s *Service) classifierMode(ctx context.Context, arn string) cdom.DocumentClassifierMode {
	r, err := s.lookup(ctx, domain.KindClassifier, arn)
	if err != nil {
		return cdom.DocumentClassifierModeMultiClass
	}
	var body struct {
		Mode cdom.DocumentClassifierMode `json:"Mode"`
	}
	if err := json.Unmarshal(r.Body, &body); err != nil || body.Mode == "" {
		return cdom.DocumentClassifierModeMultiClass
	}
	return body.Mode
}

func (s *Service) classifierProperties(r domain.Record) map[string]any {
	st, end := s.classifierStatus(r)
	m := map[string]any{
		"DocumentClassifierArn": r.ARN,
		"Status":                st,
		"SubmitTime":            shape.At(r.CreatedAt),
	}
	if st != cdom.ModelStatusSubmitted {
		m["TrainingStartTime"] = shape.At(r.CreatedAt.Add(s.Cfg.JobPace))
	}
	if end != nil {
		m["EndTime"] = shape.At(*end)
		m["TrainingEndTime"] = shape.At(*end)
	}
	if st == cdom.ModelStatusTrained {
		m["ClassifierMetadata"] = cdom.ClassifierMetadata{
			NumberOfLabels:           ptr.To[int32](4),
			NumberOfTrainedDocuments: ptr.To[int32](1000),
			NumberOfTestDocuments:    ptr.To[int32](100),
			EvaluationMetrics: &cdom.ClassifierEvaluationMetrics{
				Accuracy:  ptr.To(0.9),
				Precision: ptr.To(0.9),
				Recall:    ptr.To(0.9),
				F1Score:   ptr.To(0.9),
			},
		}
	}
	return m
}

func (s *Service) createDocumentClassifier(ctx context.Context, in *cdom.CreateDocumentClassifierInput) (*cdom.CreateDocumentClassifierOutput, error) {
	arn := s.arn("document-classifier", *in.DocumentClassifierName)
	if in.VersionName != nil {
		arn += "/version/" + *in.VersionName
	}

	if prev, err := s.Store.ByARN(ctx, arn); err == nil {
		if in.ClientRequestToken != nil && prev.Token == *in.ClientRequestToken {
			return &cdom.CreateDocumentClassifierOutput{DocumentClassifierArn: ptr.To(prev.ARN)}, nil
		}
		return nil, fault(cdom.ErrorKindResourceInUse, "classifier %s already exists", arn)
	} else if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		return nil, err
	}

	if in.Mode == nil {
		in.Mode = ptr.To(cdom.DocumentClassifierModeMultiClass)
	}
	body, err := bodyOf(in)
	if err != nil {
		return nil, err
	}
	delete(body, "DocumentClassifierName")
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "encode classifier")
	}

	at := now().UTC()
	r := domain.Record{
		Kind:      domain.KindClassifier,
		ID:        arn,
		ARN:       arn,
		Name:      *in.DocumentClassifierName,
		Token:     ptr.Deref(in.ClientRequestToken),
		Body:      raw,
		Tags:      tagMap(in.Tags),
		CreatedAt: at,
		UpdatedAt: at,
	}
	if err := s.Store.Put(ctx, r); err != nil {
		return nil, err
	}
	logger.C(ctx).Info().Str("classifier", arn).Str("mode", string(*in.Mode)).Msg("classifier submitted")
	return &cdom.CreateDocumentClassifierOutput{DocumentClassifierArn: ptr.To(arn)}, nil
}

func (s *Service) describeDocumentClassifier(ctx context.Context, in *cdom.DocumentClassifierArnInput) (*cdom.DescribeDocumentClassifierOutput, error) {
	r, err := s.lookup(ctx, domain.KindClassifier, *in.DocumentClassifierArn)
	if err != nil {
		return nil, err
	}
	p, err := properties[cdom.DocumentClassifierProperties](r, s.classifierProperties(r))
	if err != nil {
		return nil, err
	}
	return &cdom.DescribeDocumentClassifierOutput{DocumentClassifierProperties: p}, nil
}

func (s *Service) listDocumentClassifiers(ctx context.Context, in *cdom.ListDocumentClassifiersInput) (*cdom.ListDocumentClassifiersOutput, error) {
	f := in.Filter
	if f == nil {
		f = &cdom.DocumentClassifierFilter{}
	}
	set := 0
	for _, on := range []bool{f.Status != nil, f.DocumentClassifierName != nil, f.SubmitTimeBefore != nil || f.SubmitTimeAfter != nil} {
		if on {
			set++
		}
	}
	if set > 1 {
		return nil, fault(cdom.ErrorKindInvalidFilter, "only one filter criterion can be set at a time")
	}
	keep := func(r domain.Record) bool {
		if f.Status != nil {
			if st, _ := s.classifierStatus(r); st != *f.Status {
				return false
			}
		}
		if f.DocumentClassifierName != nil && r.Name != *f.DocumentClassifierName {
			return false
		}
		if f.SubmitTimeBefore != nil && !r.CreatedAt.Before(f.SubmitTimeBefore.Time()) {
			return false
		}
		if f.SubmitTimeAfter != nil && !r.CreatedAt.After(f.SubmitTimeAfter.Time()) {
			return false
		}
		return true
	}
	list, next, err := listRecords(ctx, s, domain.KindClassifier, "", keep, listArgs{in.NextToken, in.MaxResults},
		func(r domain.Record) (*cdom.DocumentClassifierProperties, error) {
			return properties[cdom.DocumentClassifierProperties](r, s.classifierProperties(r))
		})
	if err != nil {
		return nil, err
	}
	return &cdom.ListDocumentClassifiersOutput{DocumentClassifierPropertiesList: list, NextToken: next}, nil
}

func (s *Service) deleteDocumentClassifier(ctx context.Context, in *cdom.DocumentClassifierArnInput) (*cdom.DeleteDocumentClassifierOutput, error) {
	r, err := s.lookup(ctx, domain.KindClassifier, *in.DocumentClassifierArn)
	if err != nil {
		return nil, err
	}
	eps, err := s.Store.List(ctx, domain.KindEndpoint, "")
	if err != nil {
		return nil, err
	}
	for _, ep := range eps {
		if ep.Ref == r.ARN {
			return nil, fault(cdom.ErrorKindResourceInUse, "classifier %s is used by endpoint %s", r.ARN, ep.ARN)
		}
	}
	if err := s.Store.Delete(ctx, r.Key()); err != nil {
		return nil, err
	}
	return &cdom.DeleteDocumentClassifierOutput{}, nil
}

func (s *Service) stopTrainingDocumentClassifier(ctx context.Context, in *cdom.DocumentClassifierArnInput) (*cdom.StopTrainingDocumentClassifierOutput, error) {
	r, err := s.lookup(ctx, domain.KindClassifier, *in.DocumentClassifierArn)
	if err != nil {
		return nil, err
	}
	st, _ := s.classifierStatus(r)
	if st != cdom.ModelStatusSubmitted && st != cdom.ModelStatusTraining {
		return &cdom.StopTrainingDocumentClassifierOutput{}, nil
	}
	at := now().UTC()
	r.StoppedAt = &at
	r.UpdatedAt = at
	if err := s.Store.Put(ctx, r); err != nil {
		return nil, err
	}
	return &cdom.StopTrainingDocumentClassifierOutput{}, nil
}

// endpoint

func (s *Service) endpointStatus(r domain.Record) cdom.EndpointStatus {
	p := s.Cfg.JobPace
	t := now()
	switch {
	case t.Sub(r.CreatedAt) < p:
		return cdom.EndpointStatusCreating
	case r.UpdatedAt.After(r.CreatedAt) && t.Sub(r.UpdatedAt) < p:
		return cdom.EndpointStatusUpdating
	}
	return cdom.EndpointStatusInService
}

// servingEndpoint returns an endpoint that can take inference calls
func (s *Service) servingEndpoint(ctx context.Context, arn string) (domain.Record, error) {
	r, err := s.lookup(ctx, domain.KindEndpoint, arn)
	if err != nil {
		return r, err
	}
	if st := s.endpointStatus(r); st == cdom.EndpointStatusCreating {
		return domain.Record{}, fault(cdom.ErrorKindResourceUnavailable, "endpoint %s is %s", arn, st)
	}
	return r, nil
}

type endpointBody struct {
	DesiredInferenceUnits int32   `json:"DesiredInferenceUnits"`
	DataAccessRoleArn     *string `json:"DataAccessRoleArn,omitempty"`
	FlywheelArn           *string `json:"FlywheelArn,omitempty"`
}

func (s *Service) endpointProperties(r domain.Record) (*cdom.EndpointProperties, error) {
	var b endpointBody
	if err := json.Unmarshal(r.Body, &b); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDecode, "endpoint %s body", r.ARN)
	}
	st := s.endpointStatus(r)
	p := &cdom.EndpointProperties{
		EndpointArn:           ptr.To(r.ARN),
		Status:                ptr.To(st),
		ModelArn:              ptr.To(r.Ref),
		DesiredModelArn:       ptr.To(r.Ref),
		DesiredInferenceUnits: ptr.To(b.DesiredInferenceUnits),
		CreationTime:          shape.TimePtr(r.CreatedAt),
		LastModifiedTime:      shape.TimePtr(r.UpdatedAt),
		DataAccessRoleArn:     b.DataAccessRoleArn,
		FlywheelArn:           b.FlywheelArn,
	}
	if st != cdom.EndpointStatusCreating {
		p.CurrentInferenceUnits = ptr.To(b.DesiredInferenceUnits)
	}
	return p, nil
}

// modelFor resolves the model an endpoint call names directly or through a flywheel
func (s *Service) modelFor(ctx context.Context, modelArn, flywheelArn *string) (string, error) {
	arn := ptr.Deref(modelArn)
	if flywheelArn != nil {
		fw, err := s.flywheel(ctx, *flywheelArn)
		if err != nil {
			return "", err
		}
		arn = pstrings.FirstNonEmpty(arn, ptr.Deref(fw.ActiveModelArn))
	}
	if arn == "" {
		return "", fault(cdom.ErrorKindInvalidRequest, "one of ModelArn or FlywheelArn is required")
	}
	if _, err := s.trainedClassifier(ctx, arn); err != nil {
		return "", err
	}
	return arn, nil
}

func (s *Service) checkUnits(n int32) error {
	if int(n) > s.Cfg.MaxInferenceUnits {
		return fault(cdom.ErrorKindResourceLimitExceeded, "DesiredInferenceUnits %d exceeds the limit of %d", n, s.Cfg.MaxInferenceUnits)
	}
	return nil
}

func (s *Service) createEndpoint(ctx context.Context, in *cdom.CreateEndpointInput) (*cdom.CreateEndpointOutput, error) {
	arn := s.arn("document-classifier-endpoint", *in.EndpointName)
	if prev, err := s.Store.ByARN(ctx, arn); err == nil {
		if in.ClientRequestToken != nil && prev.Token == *in.ClientRequestToken {
			return &cdom.CreateEndpointOutput{EndpointArn: ptr.To(prev.ARN), ModelArn: ptr.To(prev.Ref)}, nil
		}
		return nil, fault(cdom.ErrorKindResourceInUse, "endpoint %s already exists", arn)
	} else if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		return nil, err
	}

	model, err := s.modelFor(ctx, in.ModelArn, in.FlywheelArn)
	if err != nil {
		return nil, err
	}
	if err := s.checkUnits(*in.DesiredInferenceUnits); err != nil {
		return nil, err
	}
	raw, err := json.Marshal(endpointBody{
		DesiredInferenceUnits: *in.DesiredInferenceUnits,
		DataAccessRoleArn:     in.DataAccessRoleArn,
		FlywheelArn:           in.FlywheelArn,
	})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "encode endpoint")
	}

	at := now().UTC()
	r := domain.Record{
		Kind:      domain.KindEndpoint,
		ID:        arn,
		ARN:       arn,
		Name:      *in.EndpointName,
		Token:     ptr.Deref(in.ClientRequestToken),
		Ref:       model,
		Body:      raw,
		Tags:      tagMap(in.Tags),
		CreatedAt: at,
		UpdatedAt: at,
	}
	if err := s.Store.Put(ctx, r); err != nil {
		return nil, err
	}
	logger.C(ctx).Info().Str("endpoint", arn).Str("model", model).Msg("endpoint creating")
	return &cdom.CreateEndpointOutput{EndpointArn: ptr.To(arn), ModelArn: ptr.To(model)}, nil
}

func (s *Service) describeEndpoint(ctx context.Context, in *cdom.EndpointArnInput) (*cdom.DescribeEndpointOutput, error) {
	r, err := s.lookup(ctx, domain.KindEndpoint, *in.EndpointArn)
	if err != nil {
		return nil, err
	}
	p, err := s.endpointProperties(r)
	if err != nil {
		return nil, err
	}
	return &cdom.DescribeEndpointOutput{EndpointProperties: p}, nil
}

func (s *Service) updateEndpoint(ctx context.Context, in *cdom.UpdateEndpointInput) (*cdom.UpdateEndpointOutput, error) {
	r, err := s.lookup(ctx, domain.KindEndpoint, *in.EndpointArn)
	if err != nil {
		return nil, err
	}
	if st := s.endpointStatus(r); st != cdom.EndpointStatusInService {
		return nil, fault(cdom.ErrorKindResourceUnavailable, "endpoint %s is %s", r.ARN, st)
	}

	var b endpointBody
	if err := json.Unmarshal(r.Body, &b); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeDecode, "endpoint %s body", r.ARN)
	}
	if in.DesiredModelArn != nil || in.FlywheelArn != nil {
		model, err := s.modelFor(ctx, in.DesiredModelArn, in.FlywheelArn)
		if err != nil {
			return nil, err
		}
		r.Ref = model
		if in.FlywheelArn != nil {
			b.FlywheelArn = in.FlywheelArn
		}
	}
	if in.DesiredInferenceUnits != nil {
		if err := s.checkUnits(*in.DesiredInferenceUnits); err != nil {
			return nil, err
		}
		b.DesiredInferenceUnits = *in.DesiredInferenceUnits
	}
	if in.DesiredDataAccessRoleArn != nil {
		b.DataAccessRoleArn = in.DesiredDataAccessRoleArn
	}
	if r.Body, err = json.Marshal(b); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "encode endpoint")
	}
	r.UpdatedAt = now().UTC()
	if err := s.Store.Put(ctx, r); err != nil {
		return nil, err
	}
	return &cdom.UpdateEndpointOutput{DesiredModelArn: ptr.To(r.Ref)}, nil
}

func (s *Service) deleteEndpoint(ctx context.Context, in *cdom.EndpointArnInput) (*cdom.DeleteEndpointOutput, error) {
	r, err := s.lookup(ctx, domain.KindEndpoint, *in.EndpointArn)
	if err != nil {
		return nil, err
	}
	if err := s.Store.Delete(ctx, r.Key()); err != nil {
		return nil, err
	}
	return &cdom.DeleteEndpointOutput{}, nil
}

func (s *Service) listEndpoints(ctx context.Context, in *cdom.ListEndpointsInput) (*cdom.ListEndpointsOutput, error) {
	f := in.Filter
	if f == nil {
		f = &cdom.EndpointFilter{}
	}
	keep := func(r domain.Record) bool {
		switch {
		case f.ModelArn != nil && r.Ref != *f.ModelArn:
			return false
		case f.Status != nil && s.endpointStatus(r) != *f.Status:
			return false
		case f.CreationTimeBefore != nil && !r.CreatedAt.Before(f.CreationTimeBefore.Time()):
			return false
		case f.CreationTimeAfter != nil && !r.CreatedAt.After(f.CreationTimeAfter.Time()):
			return false
		}
		return true
	}
	list, next, err := listRecords(ctx, s, domain.KindEndpoint, "", keep, listArgs{in.NextToken, in.MaxResults}, s.endpointProperties)
	if err != nil {
		return nil, err
	}
	return &cdom.ListEndpointsOutput{EndpointPropertiesList: list, NextToken: next}, nil
}

// flywheel

func (s *Service) putFlywheel(ctx context.Context, fw cdom.FlywheelProperties) error {
	raw, err := shape.Encode(&fw)
	if err != nil {
		return err
	}
	at := now().UTC()
	if fw.CreationTime != nil {
		at = fw.CreationTime.Time()
	}
	return s.Store.Put(ctx, domain.Record{
		Kind:      domain.KindFlywheel,
		ID:        *fw.FlywheelArn,
		ARN:       *fw.FlywheelArn,
		Ref:       ptr.Deref(fw.ActiveModelArn),
		Status:    string(ptr.Deref(fw.Status)),
		Body:      raw,
		CreatedAt: at,
		UpdatedAt: at,
	})
}

func (s *Service) flywheel(ctx context.Context, arn string) (*cdom.FlywheelProperties, error) {
	r, err := s.lookup(ctx, domain.KindFlywheel, arn)
	if err != nil {
		return nil, err
	}
	return shape.Decode[cdom.FlywheelProperties](r.Body)
}

func (s *Service) describeFlywheel(ctx context.Context, in *cdom.DescribeFlywheelInput) (*cdom.DescribeFlywheelOutput, error) {
	fw, err := s.flywheel(ctx, *in.FlywheelArn)
	if err != nil {
		return nil, err
	}
	return &cdom.DescribeFlywheelOutput{FlywheelProperties: fw}, nil
}
