package service

import (
	"context"
	"encoding/json"
	stderrs "errors"
	"net/http"
	"testing"

	"comprehend/internal/core/enum"
	perr "comprehend/internal/platform/errors"
	"comprehend/internal/platform/ptr"
	kit "comprehend/internal/platform/testkit"
	"comprehend/internal/services/comprehend/domain"
)

type fakeTransport struct {
	reqs []domain.Request
	resp *domain.Response
	err  error
}

func (f *fakeTransport) RoundTrip(_ context.Context, req domain.Request) (*domain.Response, error) {
	f.reqs = append(f.reqs, req)
	return f.resp, f.err
}

func ok(body string) *domain.Response {
	return &domain.Response{StatusCode: http.StatusOK, RequestID: "rid-1", Body: []byte(body)}
}

func TestDetectEntitiesRoundTrip(t *testing.T) {
	tr := &fakeTransport{resp: ok(`{"Entities":[{"Type":"PERSON","Text":"Ada","Score":0.9,"BeginOffset":0,"EndOffset":3}]}`)}
	c := New(tr, Config{})

	out, err := c.DetectEntities(context.Background(), &domain.DetectEntitiesInput{
		Text:         ptr.To("Ada wrote"),
		LanguageCode: ptr.To(domain.LanguageCodeEn),
	})
	kit.MustNoErr(t, err)
	kit.MustLen(t, out.Entities, 1)
	kit.MustEqual(t, domain.EntityTypePerson, *out.Entities[0].Type)

	kit.MustLen(t, tr.reqs, 1)
	kit.MustEqual(t, domain.OpDetectEntities, tr.reqs[0].Operation)
	kit.MustJSONEq(t, `{"Text":"Ada wrote","LanguageCode":"en"}`, string(tr.reqs[0].Body))
}

func TestRemoteFaultIsTyped(t *testing.T) {
	tr := &fakeTransport{resp: &domain.Response{
		StatusCode: http.StatusBadRequest,
		RequestID:  "rid-2",
		Body:       []byte(`{"__type":"InvalidRequestException","Message":"too big","Reason":"INVALID_DOCUMENT","Detail":{"Reason":"DOCUMENT_SIZE_EXCEEDED"}}`),
	}}
	c := New(tr, Config{})

	_, err := c.ClassifyDocument(context.Background(), &domain.ClassifyDocumentInput{
		Bytes:       []byte("%PDF-1.7"),
		EndpointArn: ptr.To("arn:aws:comprehend:us-east-1:123456789012:document-classifier-endpoint/e"),
	})
	kit.MustErr(t, err)
	kit.MustEqual(t, perr.ErrorCodeInvalidRequest, perr.CodeOf(err))
	e, _ := perr.As(err)
	kit.MustEqual(t, "ClassifyDocument", e.Op())

	var ae *domain.APIError
	kit.MustTrue(t, stderrs.As(err, &ae))
	kit.MustEqual(t, "rid-2", ae.RequestID)
	switch f := ae.Fault.(type) {
	case *domain.InvalidRequestException:
		kit.MustEqual(t, domain.InvalidRequestReasonInvalidDocument, *f.Reason)
		kit.MustEqual(t, domain.InvalidRequestDetailReasonDocumentSizeExceeded, f.DetailReason())
	default:
		t.Fatalf("unexpected fault %T", f)
	}
}

func TestErrorTypeHeaderOnly(t *testing.T) {
	tr := &fakeTransport{resp: &domain.Response{StatusCode: 400, ErrorType: "TooManyRequestsException:http://x/", Body: []byte(`{"message":"slow down"}`)}}
	_, err := New(tr, Config{}).ListEndpoints(context.Background(), nil)

	kit.MustTrue(t, perr.Retryable(err))
	ae, ok := domain.AsAPIError(err)
	kit.MustTrue(t, ok)
	kit.MustEqual(t, domain.ErrorKindTooManyRequests, ae.Kind)
	kit.MustEqual(t, "slow down", ae.Message())
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	tr := &fakeTransport{err: stderrs.New("connection refused")}
	_, err := New(tr, Config{}).DescribeFlywheel(context.Background(), &domain.DescribeFlywheelInput{FlywheelArn: ptr.To("arn:aws:comprehend:us-east-1:123456789012:flywheel/f")})

	kit.MustTrue(t, perr.IsCode(err, perr.ErrorCodeUnavailable))
	kit.MustContain(t, err.Error(), "DescribeFlywheel")
	_, isAPI := domain.AsAPIError(err)
	kit.MustFalse(t, isAPI)
}

func TestIdempotencyTokenFilledOnCopy(t *testing.T) {
	kit.Swap(t, &newToken, func() string { return "tok-fixed" })
	tr := &fakeTransport{resp: ok(`{"JobId":"j1","JobStatus":"SUBMITTED"}`)}
	c := New(tr, Config{})

	in := &domain.StartSentimentDetectionJobInput{
		InputDataConfig:   &domain.InputDataConfig{S3Uri: ptr.To("s3://bucket/in")},
		OutputDataConfig:  &domain.OutputDataConfig{S3Uri: ptr.To("s3://bucket/out")},
		DataAccessRoleArn: ptr.To("arn:aws:iam::123456789012:role/r"),
		LanguageCode:      ptr.To(domain.LanguageCodeEn),
	}
	out, err := c.StartSentimentDetectionJob(context.Background(), in)
	kit.MustNoErr(t, err)
	kit.MustEqual(t, domain.JobStatusSubmitted, *out.JobStatus)
	kit.MustNil(t, in.ClientRequestToken, "caller input must not be mutated")

	var sent map[string]any
	kit.MustNoErr(t, json.Unmarshal(tr.reqs[0].Body, &sent))
	kit.MustEqual(t, "tok-fixed", sent["ClientRequestToken"])

	in.ClientRequestToken = ptr.To("mine")
	_, err = c.StartSentimentDetectionJob(context.Background(), in)
	kit.MustNoErr(t, err)
	kit.MustNoErr(t, json.Unmarshal(tr.reqs[1].Body, &sent))
	kit.MustEqual(t, "mine", sent["ClientRequestToken"])
}

func TestValidationIsOptIn(t *testing.T) {
	in := &domain.DescribeEndpointInput{EndpointArn: ptr.To("not-an-arn")}

	tr := &fakeTransport{resp: ok(`{}`)}
	_, err := New(tr, Config{}).DescribeEndpoint(context.Background(), in)
	kit.MustNoErr(t, err)
	kit.MustLen(t, tr.reqs, 1)

	tr = &fakeTransport{resp: ok(`{}`)}
	_, err = New(tr, Config{ValidateRequests: true}).DescribeEndpoint(context.Background(), in)
	kit.MustTrue(t, perr.IsCode(err, perr.ErrorCodeValidation))
	kit.MustEqual(t, "EndpointArn", perr.FieldOf(err))
	kit.MustEmpty(t, tr.reqs)
}

func TestMissingRequiredNeverSent(t *testing.T) {
	tr := &fakeTransport{resp: ok(`{}`)}
	_, err := New(tr, Config{}).DetectSentiment(context.Background(), &domain.DetectSentimentInput{Text: ptr.To("hi")})
	kit.MustTrue(t, perr.IsCode(err, perr.ErrorCodeValidation))
	kit.MustEqual(t, "LanguageCode", perr.FieldOf(err))
	kit.MustEmpty(t, tr.reqs)
}

func TestUnknownEnumInResponse(t *testing.T) {
	body := `{"Sentiment":"ELATED","SentimentScore":{"Positive":0.9}}`
	in := &domain.DetectSentimentInput{Text: ptr.To("yay"), LanguageCode: ptr.To(domain.LanguageCodeEn)}

	_, err := New(&fakeTransport{resp: ok(body)}, Config{}).DetectSentiment(context.Background(), in)
	ive, isEnum := enum.IsInvalid(err)
	kit.MustTrue(t, isEnum)
	kit.MustEqual(t, "ELATED", ive.Token)
	kit.MustEqual(t, "Sentiment", perr.FieldOf(err))

	out, err := New(&fakeTransport{resp: ok(body)}, Config{AllowUnknownEnums: true}).DetectSentiment(context.Background(), in)
	kit.MustNoErr(t, err)
	kit.MustEqual(t, domain.SentimentType("ELATED"), *out.Sentiment)
}

func TestMalformedResponseIsDecodeError(t *testing.T) {
	tr := &fakeTransport{resp: ok(`{"Languages":[{"Score":"high"}]}`)}
	_, err := New(tr, Config{}).DetectDominantLanguage(context.Background(), &domain.DetectDominantLanguageInput{Text: ptr.To("x")})
	kit.MustTrue(t, perr.IsCode(err, perr.ErrorCodeDecode))
	kit.MustEqual(t, "Languages[0].Score", perr.FieldOf(err))
	e, _ := perr.As(err)
	kit.MustEqual(t, "DetectDominantLanguage", e.Op())
}

func TestCallDecodesByOperation(t *testing.T) {
	tr := &fakeTransport{resp: ok(`{"ResourceArn":"arn:aws:comprehend:us-east-1:123456789012:flywheel/f","Tags":[{"Key":"team","Value":"nlp"}]}`)}
	c := New(tr, Config{})

	out, err := c.Call(context.Background(), domain.OpListTagsForResource, []byte(`{"ResourceArn":"arn:aws:comprehend:us-east-1:123456789012:flywheel/f"}`))
	kit.MustNoErr(t, err)
	tags, isTags := out.(*domain.ListTagsForResourceOutput)
	kit.MustTrue(t, isTags)
	kit.MustEqual(t, "nlp", *tags.Tags[0].Value)

	_, err = c.Call(context.Background(), domain.Operation("Nope"), nil)
	kit.MustTrue(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))

	_, err = c.Call(context.Background(), domain.OpTagResource, []byte(`{"ResourceArn":"x"}`))
	kit.MustTrue(t, perr.IsCode(err, perr.ErrorCodeDecode))
	kit.MustEqual(t, "Tags", perr.FieldOf(err))
}
