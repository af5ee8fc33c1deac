package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
	"time"

	"comprehend/internal/core/lexicon"
	"comprehend/internal/core/shape"
	kit "comprehend/internal/platform/testkit"
	cdom "comprehend/internal/services/comprehend/domain"
	"comprehend/internal/services/stub/engine"
	"comprehend/internal/services/stub/repo"
)

const (
	role = "arn:aws:iam::123456789012:role/comprehend"
	pace = time.Minute
)

func newService(t *testing.T, cfg Config, fx *Fixtures) (*Service, *kit.Clock) {
	t.Helper()
	c := kit.NewClock(t, &now, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	lex, err := lexicon.Default()
	kit.MustNoErr(t, err)
	if cfg.JobPace == 0 {
		cfg.JobPace = pace
	}
	s := New(repo.NewMemory(), engine.New(lex), fx, cfg)
	kit.MustNoErr(t, s.Seed(context.Background()))
	return s, c
}

func call[Out any](t *testing.T, s *Service, op cdom.Operation, body string) *Out {
	t.Helper()
	b, err := s.Invoke(context.Background(), op.Target(), []byte(body))
	kit.MustNoErr(t, err, "%s %s", op, body)
	out, err := shape.Decode[Out](b)
	kit.MustNoErr(t, err)
	return out
}

func callErr(t *testing.T, s *Service, op cdom.Operation, body string) *cdom.APIError {
	t.Helper()
	_, err := s.Invoke(context.Background(), op.Target(), []byte(body))
	kit.MustErr(t, err, "%s %s", op, body)
	ae, ok := cdom.AsAPIError(err)
	kit.MustTrue(t, ok, "want an APIError, got %v", err)
	return ae
}

func TestUnknownOperation(t *testing.T) {
	s, _ := newService(t, Config{}, nil)
	for _, target := range []string{"Comprehend_20171127.DetectMood", "garbage", ""} {
		_, err := s.Invoke(context.Background(), target, []byte(`{}`))
		ae, ok := cdom.AsAPIError(err)
		kit.MustTrue(t, ok)
		kit.MustEqual(t, cdom.ErrorKindUnknownOperation, ae.Kind, target)
	}
}

func TestFaultsClipEchoedValues(t *testing.T) {
	s, _ := newService(t, Config{}, nil)

	long := "Comprehend_20171127." + strings.Repeat("Mood", 100)
	_, err := s.Invoke(context.Background(), long, []byte(`{}`))
	ae, ok := cdom.AsAPIError(err)
	kit.MustTrue(t, ok)
	kit.MustTrue(t, len(ae.Message()) < 100, "message not clipped: %d bytes", len(ae.Message()))

	lang := strings.Repeat("x", 300)
	ae = callErr(t, s, cdom.OpDetectSentiment, `{"Text":"hi","LanguageCode":"`+lang+`"}`)
	kit.MustEqual(t, cdom.ErrorKindUnsupportedLanguage, ae.Kind)
	kit.MustFalse(t, strings.Contains(ae.Message(), lang))
}

func TestRequestRejections(t *testing.T) {
	s, _ := newService(t, Config{}, nil)
	cases := []struct {
		name string
		op   cdom.Operation
		body string
		kind cdom.ErrorKind
		msg  string
	}{
		{"missing required", cdom.OpDetectSentiment, `{"Text":"hi"}`, cdom.ErrorKindInvalidRequest, "LanguageCode"},
		{"not an object", cdom.OpDetectSentiment, `["hi"]`, cdom.ErrorKindInvalidRequest, "object"},
		{"unknown language", cdom.OpDetectSentiment, `{"Text":"hi","LanguageCode":"xx"}`, cdom.ErrorKindUnsupportedLanguage, "xx"},
		{"syntax language", cdom.OpDetectSyntax, `{"Text":"hi","LanguageCode":"ja"}`, cdom.ErrorKindUnsupportedLanguage, "ja"},
		{"pii language", cdom.OpDetectPiiEntities, `{"Text":"hi","LanguageCode":"fr"}`, cdom.ErrorKindUnsupportedLanguage, "fr"},
		{"toxic language", cdom.OpDetectToxicContent, `{"TextSegments":[{"Text":"hi"}],"LanguageCode":"de"}`, cdom.ErrorKindUnsupportedLanguage, "de"},
		{"text too long", cdom.OpDetectSentiment, fmt.Sprintf(`{"Text":%q,"LanguageCode":"en"}`, strings.Repeat("a", 5001)), cdom.ErrorKindTextSizeLimitExceeded, "5000"},
		{"segment too long", cdom.OpDetectToxicContent, fmt.Sprintf(`{"TextSegments":[{"Text":%q}],"LanguageCode":"en"}`, strings.Repeat("a", 1001)), cdom.ErrorKindTextSizeLimitExceeded, "1000"},
		{"empty text", cdom.OpDetectKeyPhrases, `{"Text":"","LanguageCode":"en"}`, cdom.ErrorKindInvalidRequest, "'Text'"},
		{"bad enum", cdom.OpStartPiiEntitiesDetectionJob, `{"InputDataConfig":{"S3Uri":"s3://bucket/in"},"OutputDataConfig":{"S3Uri":"s3://bucket/out"},"Mode":"BOGUS","DataAccessRoleArn":"` + role + `","LanguageCode":"en"}`, cdom.ErrorKindInvalidRequest, `"BOGUS"`},
		{"bad arn", cdom.OpDescribeEndpoint, `{"EndpointArn":"endpoint"}`, cdom.ErrorKindInvalidRequest, "EndpointArn"},
		{"mistyped list element", cdom.OpBatchDetectSentiment, `{"TextList":["ok",3],"LanguageCode":"en"}`, cdom.ErrorKindInvalidRequest, "'TextList[1]'"},
		{"differently cased member", cdom.OpDetectSentiment, `{"text":"hi","LanguageCode":"en"}`, cdom.ErrorKindInvalidRequest, "'Text'"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ae := callErr(t, s, c.op, c.body)
			kit.MustEqual(t, c.kind, ae.Kind)
			kit.MustContain(t, ae.Message(), c.msg)
		})
	}
}

func TestBatchLimits(t *testing.T) {
	s, _ := newService(t, Config{}, nil)
	docs := make([]string, 26)
	for i := range docs {
		docs[i] = fmt.Sprintf("%q", "doc")
	}
	ae := callErr(t, s, cdom.OpBatchDetectSentiment, `{"TextList":[`+strings.Join(docs, ",")+`],"LanguageCode":"en"}`)
	kit.MustEqual(t, cdom.ErrorKindBatchSizeLimitExceeded, ae.Kind)
}

func TestBatchKeepsOrderAndReportsItems(t *testing.T) {
	s, _ := newService(t, Config{Workers: 2}, nil)

	out := call[cdom.BatchDetectSentimentOutput](t, s, cdom.OpBatchDetectSentiment,
		`{"TextList":["I love this great phone","   ","This is terrible and bad"],"LanguageCode":"en"}`)
	kit.MustLen(t, out.ResultList, 2)
	kit.MustEqual(t, int32(0), *out.ResultList[0].Index)
	kit.MustEqual(t, cdom.SentimentTypePositive, *out.ResultList[0].Sentiment)
	kit.MustEqual(t, int32(2), *out.ResultList[1].Index)
	kit.MustEqual(t, cdom.SentimentTypeNegative, *out.ResultList[1].Sentiment)
	kit.MustLen(t, out.ErrorList, 1)
	kit.MustEqual(t, int32(1), *out.ErrorList[0].Index)
	kit.MustEqual(t, batchItemInvalid, *out.ErrorList[0].ErrorCode)

	lang := call[cdom.BatchDetectDominantLanguageOutput](t, s, cdom.OpBatchDetectDominantLanguage, `{"TextList":["hello there","42 42"]}`)
	kit.MustLen(t, lang.ResultList, 1)
	kit.MustEqual(t, "en", *lang.ResultList[0].Languages[0].LanguageCode)
	kit.MustLen(t, lang.ErrorList, 1)
	kit.MustEqual(t, int32(1), *lang.ErrorList[0].Index)

	clean := call[cdom.BatchDetectSyntaxOutput](t, s, cdom.OpBatchDetectSyntax, `{"TextList":["The dog runs"],"LanguageCode":"en"}`)
	kit.MustNotNil(t, clean.ErrorList, "ErrorList is always present")
	kit.MustEmpty(t, clean.ErrorList)
}

func TestDetectEntitiesDocuments(t *testing.T) {
	s, _ := newService(t, Config{}, nil)
	b64 := base64.StdEncoding.EncodeToString

	ae := callErr(t, s, cdom.OpDetectEntities, `{"Text":"Ada","Bytes":"`+b64([]byte("Ada"))+`","LanguageCode":"en"}`)
	kit.MustEqual(t, cdom.ErrorKindInvalidRequest, ae.Kind)

	ae = callErr(t, s, cdom.OpDetectEntities, `{"Text":"Ada"}`)
	kit.MustContain(t, ae.Message(), "LanguageCode")

	ae = callErr(t, s, cdom.OpDetectEntities, `{"Bytes":"`+b64([]byte("GIF89a\x01\x00"))+`","LanguageCode":"en"}`)
	ir, ok := ae.Fault.(*cdom.InvalidRequestException)
	kit.MustTrue(t, ok)
	kit.MustEqual(t, cdom.InvalidRequestReasonInvalidDocument, *ir.Reason)
	kit.MustEqual(t, cdom.InvalidRequestDetailReasonUnsupportedDocType, ir.DetailReason())

	out := call[cdom.DetectEntitiesOutput](t, s, cdom.OpDetectEntities, `{"Bytes":"`+b64([]byte("%PDF-1.7\n%\xe2\xe3"))+`","LanguageCode":"en"}`)
	kit.MustEmpty(t, out.Entities)
	kit.MustNotNil(t, out.DocumentMetadata)
	kit.MustEqual(t, int32(1), *out.DocumentMetadata.Pages)
	kit.MustLen(t, out.DocumentType, 1)
	kit.MustEqual(t, cdom.DocumentTypeNativePdf, *out.DocumentType[0].Type)

	text := call[cdom.DetectEntitiesOutput](t, s, cdom.OpDetectEntities, `{"Text":"Ada Lovelace lives in Paris","LanguageCode":"en"}`)
	kit.MustNotEmpty(t, text.Entities)
	kit.MustNil(t, text.DocumentMetadata)

	ae = callErr(t, s, cdom.OpDetectEntities, `{"Text":"Ada","EndpointArn":"arn:aws:comprehend:us-east-1:123456789012:entity-recognizer-endpoint/ner"}`)
	kit.MustEqual(t, cdom.ErrorKindResourceNotFound, ae.Kind)
}

func TestDetectOperations(t *testing.T) {
	s, _ := newService(t, Config{}, nil)

	pii := call[cdom.ContainsPiiEntitiesOutput](t, s, cdom.OpContainsPiiEntities, `{"Text":"mail me at ada@example.com","LanguageCode":"en"}`)
	kit.MustNotEmpty(t, pii.Labels)
	kit.MustEqual(t, cdom.PiiEntityTypeEmail, *pii.Labels[0].Name)

	tox := call[cdom.DetectToxicContentOutput](t, s, cdom.OpDetectToxicContent, `{"TextSegments":[{"Text":"hello"},{"Text":"you idiot"}],"LanguageCode":"en"}`)
	kit.MustLen(t, tox.ResultList, 2)
	kit.MustTrue(t, *tox.ResultList[0].Toxicity < *tox.ResultList[1].Toxicity)

	syn := call[cdom.DetectSyntaxOutput](t, s, cdom.OpDetectSyntax, `{"Text":"El perro corre","LanguageCode":"es"}`)
	kit.MustLen(t, syn.SyntaxTokens, 3)

	lang := call[cdom.DetectDominantLanguageOutput](t, s, cdom.OpDetectDominantLanguage, `{"Text":"Le chat est sur la table et il est content"}`)
	kit.MustEqual(t, "fr", *lang.Languages[0].LanguageCode)
}

func jobBody(extra string) string {
	return `{"InputDataConfig":{"S3Uri":"s3://bucket/in"},"OutputDataConfig":{"S3Uri":"s3://bucket/out"},"DataAccessRoleArn":"` + role + `","LanguageCode":"en"` + extra + `}`
}

func TestJobLifecycle(t *testing.T) {
	s, clk := newService(t, Config{}, nil)

	first := call[cdom.StartJobOutput](t, s, cdom.OpStartSentimentDetectionJob, jobBody(`,"JobName":"nightly","ClientRequestToken":"tok-1"`))
	kit.MustEqual(t, cdom.JobStatusSubmitted, *first.JobStatus)
	kit.MustLen(t, *first.JobId, 32)
	kit.MustTrue(t, strings.HasSuffix(*first.JobArn, "sentiment-detection-job/"+*first.JobId))

	again := call[cdom.StartJobOutput](t, s, cdom.OpStartSentimentDetectionJob, jobBody(`,"JobName":"nightly","ClientRequestToken":"tok-1"`))
	kit.MustEqual(t, *first.JobId, *again.JobId, "same token is the same job")

	describe := func(id string) *cdom.SentimentDetectionJobProperties {
		out := call[cdom.DescribeSentimentDetectionJobOutput](t, s, cdom.OpDescribeSentimentDetectionJob, `{"JobId":"`+id+`"}`)
		return out.SentimentDetectionJobProperties
	}
	p := describe(*first.JobId)
	kit.MustEqual(t, "nightly", *p.JobName)
	kit.MustEqual(t, "s3://bucket/in", *p.InputDataConfig.S3Uri)
	kit.MustEqual(t, cdom.LanguageCodeEn, *p.LanguageCode)
	kit.MustNil(t, p.EndTime)

	clk.Advance(pace + time.Second)
	kit.MustEqual(t, cdom.JobStatusInProgress, *describe(*first.JobId).JobStatus)

	stop := call[cdom.StopJobOutput](t, s, cdom.OpStopSentimentDetectionJob, `{"JobId":"`+*first.JobId+`"}`)
	kit.MustEqual(t, cdom.JobStatusStopRequested, *stop.JobStatus)
	clk.Advance(pace)
	p = describe(*first.JobId)
	kit.MustEqual(t, cdom.JobStatusStopped, *p.JobStatus)
	kit.MustNotNil(t, p.EndTime)

	second := call[cdom.StartJobOutput](t, s, cdom.OpStartSentimentDetectionJob, jobBody(""))
	clk.Advance(3 * pace)
	p = describe(*second.JobId)
	kit.MustEqual(t, cdom.JobStatusCompleted, *p.JobStatus)
	kit.MustTrue(t, p.EndTime.Time().After(p.SubmitTime.Time()))
	stop = call[cdom.StopJobOutput](t, s, cdom.OpStopSentimentDetectionJob, `{"JobId":"`+*second.JobId+`"}`)
	kit.MustEqual(t, cdom.JobStatusCompleted, *stop.JobStatus, "stopping a finished job changes nothing")

	ae := callErr(t, s, cdom.OpDescribeEntitiesDetectionJob, `{"JobId":"`+*first.JobId+`"}`)
	kit.MustEqual(t, cdom.ErrorKindJobNotFound, ae.Kind, "jobs are scoped to their family")
}

func TestListJobsPagesAndFilters(t *testing.T) {
	s, clk := newService(t, Config{}, nil)
	var ids []string
	for i := range 3 {
		out := call[cdom.StartJobOutput](t, s, cdom.OpStartKeyPhrasesDetectionJob, jobBody(fmt.Sprintf(`,"JobName":"job-%d"`, i)))
		ids = append(ids, *out.JobId)
		clk.Advance(time.Second)
	}

	pg := call[cdom.ListKeyPhrasesDetectionJobsOutput](t, s, cdom.OpListKeyPhrasesDetectionJobs, `{"MaxResults":2}`)
	kit.MustLen(t, pg.KeyPhrasesDetectionJobPropertiesList, 2)
	kit.MustEqual(t, ids[0], *pg.KeyPhrasesDetectionJobPropertiesList[0].JobId)
	kit.MustNotNil(t, pg.NextToken)

	rest := call[cdom.ListKeyPhrasesDetectionJobsOutput](t, s, cdom.OpListKeyPhrasesDetectionJobs, `{"MaxResults":2,"NextToken":"`+*pg.NextToken+`"}`)
	kit.MustLen(t, rest.KeyPhrasesDetectionJobPropertiesList, 1)
	kit.MustEqual(t, ids[2], *rest.KeyPhrasesDetectionJobPropertiesList[0].JobId)
	kit.MustNil(t, rest.NextToken)

	byName := call[cdom.ListKeyPhrasesDetectionJobsOutput](t, s, cdom.OpListKeyPhrasesDetectionJobs, `{"Filter":{"JobName":"job-1"}}`)
	kit.MustLen(t, byName.KeyPhrasesDetectionJobPropertiesList, 1)
	kit.MustEqual(t, ids[1], *byName.KeyPhrasesDetectionJobPropertiesList[0].JobId)

	none := call[cdom.ListSentimentDetectionJobsOutput](t, s, cdom.OpListSentimentDetectionJobs, `{}`)
	kit.MustEmpty(t, none.SentimentDetectionJobPropertiesList)

	ae := callErr(t, s, cdom.OpListKeyPhrasesDetectionJobs, `{"Filter":{"JobName":"job-1","JobStatus":"SUBMITTED"}}`)
	kit.MustEqual(t, cdom.ErrorKindInvalidFilter, ae.Kind)
	ae = callErr(t, s, cdom.OpListKeyPhrasesDetectionJobs, `{"NextToken":"not-a-token"}`)
	kit.MustEqual(t, cdom.ErrorKindInvalidRequest, ae.Kind)
}

func TestClassifierAndEndpoint(t *testing.T) {
	s, clk := newService(t, Config{MaxInferenceUnits: 10}, nil)

	created := call[cdom.CreateDocumentClassifierOutput](t, s, cdom.OpCreateDocumentClassifier,
		`{"DocumentClassifierName":"news","DataAccessRoleArn":"`+role+`","InputDataConfig":{"S3Uri":"s3://bucket/train"},"LanguageCode":"en","Mode":"MULTI_LABEL","ClientRequestToken":"c1"}`)
	model := *created.DocumentClassifierArn
	kit.MustEqual(t, "arn:aws:comprehend:us-east-1:123456789012:document-classifier/news", model)

	dup := callErr(t, s, cdom.OpCreateDocumentClassifier,
		`{"DocumentClassifierName":"news","DataAccessRoleArn":"`+role+`","InputDataConfig":{"S3Uri":"s3://bucket/train"},"LanguageCode":"en"}`)
	kit.MustEqual(t, cdom.ErrorKindResourceInUse, dup.Kind)

	endpoint := `{"EndpointName":"news-ep","ModelArn":"` + model + `","DesiredInferenceUnits":%d}`
	ae := callErr(t, s, cdom.OpCreateEndpoint, fmt.Sprintf(endpoint, 1))
	kit.MustEqual(t, cdom.ErrorKindResourceUnavailable, ae.Kind, "model is still training")

	clk.Advance(2 * pace)
	desc := call[cdom.DescribeDocumentClassifierOutput](t, s, cdom.OpDescribeDocumentClassifier, `{"DocumentClassifierArn":"`+model+`"}`)
	p := desc.DocumentClassifierProperties
	kit.MustEqual(t, cdom.ModelStatusTrained, *p.Status)
	kit.MustEqual(t, cdom.DocumentClassifierModeMultiLabel, *p.Mode)
	kit.MustNotNil(t, p.ClassifierMetadata)
	kit.MustNotNil(t, p.TrainingEndTime)

	ae = callErr(t, s, cdom.OpCreateEndpoint, fmt.Sprintf(endpoint, 11))
	kit.MustEqual(t, cdom.ErrorKindResourceLimitExceeded, ae.Kind)

	ep := call[cdom.CreateEndpointOutput](t, s, cdom.OpCreateEndpoint, fmt.Sprintf(endpoint, 2))
	arn := *ep.EndpointArn
	classify := `{"Text":"The bank raised the loan rate","EndpointArn":"` + arn + `"}`
	ae = callErr(t, s, cdom.OpClassifyDocument, classify)
	kit.MustEqual(t, cdom.ErrorKindResourceUnavailable, ae.Kind, "endpoint is creating")

	clk.Advance(pace)
	out := call[cdom.ClassifyDocumentOutput](t, s, cdom.OpClassifyDocument, classify)
	kit.MustNotEmpty(t, out.Labels)
	kit.MustEmpty(t, out.Classes)
	kit.MustEqual(t, "FINANCE", *out.Labels[0].Name)

	ae = callErr(t, s, cdom.OpDeleteDocumentClassifier, `{"DocumentClassifierArn":"`+model+`"}`)
	kit.MustEqual(t, cdom.ErrorKindResourceInUse, ae.Kind)

	call[cdom.UpdateEndpointOutput](t, s, cdom.OpUpdateEndpoint, `{"EndpointArn":"`+arn+`","DesiredInferenceUnits":4}`)
	d := call[cdom.DescribeEndpointOutput](t, s, cdom.OpDescribeEndpoint, `{"EndpointArn":"`+arn+`"}`)
	kit.MustEqual(t, cdom.EndpointStatusUpdating, *d.EndpointProperties.Status)
	kit.MustEqual(t, int32(4), *d.EndpointProperties.DesiredInferenceUnits)
	ae = callErr(t, s, cdom.OpUpdateEndpoint, `{"EndpointArn":"`+arn+`","DesiredInferenceUnits":5}`)
	kit.MustEqual(t, cdom.ErrorKindResourceUnavailable, ae.Kind)

	list := call[cdom.ListEndpointsOutput](t, s, cdom.OpListEndpoints, `{"Filter":{"ModelArn":"`+model+`"}}`)
	kit.MustLen(t, list.EndpointPropertiesList, 1)

	call[cdom.DeleteEndpointOutput](t, s, cdom.OpDeleteEndpoint, `{"EndpointArn":"`+arn+`"}`)
	call[cdom.DeleteDocumentClassifierOutput](t, s, cdom.OpDeleteDocumentClassifier, `{"DocumentClassifierArn":"`+model+`"}`)
	ae = callErr(t, s, cdom.OpDescribeDocumentClassifier, `{"DocumentClassifierArn":"`+model+`"}`)
	kit.MustEqual(t, cdom.ErrorKindResourceNotFound, ae.Kind)
}

func TestStopTraining(t *testing.T) {
	s, clk := newService(t, Config{}, nil)
	created := call[cdom.CreateDocumentClassifierOutput](t, s, cdom.OpCreateDocumentClassifier,
		`{"DocumentClassifierName":"spam","VersionName":"v2","DataAccessRoleArn":"`+role+`","InputDataConfig":{"S3Uri":"s3://bucket/train"},"LanguageCode":"en"}`)
	kit.MustTrue(t, strings.HasSuffix(*created.DocumentClassifierArn, "document-classifier/spam/version/v2"))

	call[cdom.StopTrainingDocumentClassifierOutput](t, s, cdom.OpStopTrainingDocumentClassifier, `{"DocumentClassifierArn":"`+*created.DocumentClassifierArn+`"}`)
	clk.Advance(pace)
	desc := call[cdom.DescribeDocumentClassifierOutput](t, s, cdom.OpDescribeDocumentClassifier, `{"DocumentClassifierArn":"`+*created.DocumentClassifierArn+`"}`)
	kit.MustEqual(t, cdom.ModelStatusStopped, *desc.DocumentClassifierProperties.Status)

	list := call[cdom.ListDocumentClassifiersOutput](t, s, cdom.OpListDocumentClassifiers, `{"Filter":{"Status":"STOPPED"}}`)
	kit.MustLen(t, list.DocumentClassifierPropertiesList, 1)
}

func TestTags(t *testing.T) {
	s, _ := newService(t, Config{}, nil)
	job := call[cdom.StartJobOutput](t, s, cdom.OpStartTopicsDetectionJob, `{"InputDataConfig":{"S3Uri":"s3://bucket/in"},"OutputDataConfig":{"S3Uri":"s3://bucket/out"},"DataAccessRoleArn":"`+role+`","Tags":[{"Key":"team","Value":"nlp"}]}`)
	arn := *job.JobArn

	call[cdom.TagResourceOutput](t, s, cdom.OpTagResource, `{"ResourceArn":"`+arn+`","Tags":[{"Key":"env","Value":"dev"},{"Key":"team","Value":"search"}]}`)
	out := call[cdom.ListTagsForResourceOutput](t, s, cdom.OpListTagsForResource, `{"ResourceArn":"`+arn+`"}`)
	kit.MustLen(t, out.Tags, 2)
	kit.MustEqual(t, "env", *out.Tags[0].Key)
	kit.MustEqual(t, "search", *out.Tags[1].Value)

	call[cdom.UntagResourceOutput](t, s, cdom.OpUntagResource, `{"ResourceArn":"`+arn+`","TagKeys":["env"]}`)
	out = call[cdom.ListTagsForResourceOutput](t, s, cdom.OpListTagsForResource, `{"ResourceArn":"`+arn+`"}`)
	kit.MustLen(t, out.Tags, 1)

	ae := callErr(t, s, cdom.OpListTagsForResource, `{"ResourceArn":"arn:aws:comprehend:us-east-1:123456789012:flywheel/ghost"}`)
	kit.MustEqual(t, cdom.ErrorKindResourceNotFound, ae.Kind)

	tags := make([]string, 201)
	for i := range tags {
		tags[i] = fmt.Sprintf(`{"Key":"k%d"}`, i)
	}
	ae = callErr(t, s, cdom.OpTagResource, `{"ResourceArn":"`+arn+`","Tags":[`+strings.Join(tags, ",")+`]}`)
	kit.MustEqual(t, cdom.ErrorKindTooManyTags, ae.Kind)
}

const fixturesYAML = `
fixtures:
  - operation: DetectSentiment
    match: canned
    response:
      Sentiment: MIXED
      SentimentScore: {Positive: 0.25, Negative: 0.25, Neutral: 0.25, Mixed: 0.25}
  - operation: DetectEntities
    match: explode
    fault:
      type: InvalidRequestException
      message: nope
      reason: INVALID_DOCUMENT
      detail_reason: PAGE_LIMIT_EXCEEDED
  - operation: ListEndpoints
    fault:
      type: TooManyRequestsException
flywheels:
  - FlywheelArn: arn:aws:comprehend:us-east-1:123456789012:flywheel/fw
    Status: ACTIVE
    ModelType: DOCUMENT_CLASSIFIER
    TaskConfig: {LanguageCode: en}
`

func TestFixtures(t *testing.T) {
	fx, err := ParseFixtures([]byte(fixturesYAML))
	kit.MustNoErr(t, err)
	kit.MustEqual(t, 3, fx.Len())
	s, _ := newService(t, Config{}, fx)

	out := call[cdom.DetectSentimentOutput](t, s, cdom.OpDetectSentiment, `{"Text":"a canned answer","LanguageCode":"en"}`)
	kit.MustEqual(t, cdom.SentimentTypeMixed, *out.Sentiment)

	live := call[cdom.DetectSentimentOutput](t, s, cdom.OpDetectSentiment, `{"Text":"I love it","LanguageCode":"en"}`)
	kit.MustEqual(t, cdom.SentimentTypePositive, *live.Sentiment)

	ae := callErr(t, s, cdom.OpDetectEntities, `{"Text":"explode","LanguageCode":"en"}`)
	ir, ok := ae.Fault.(*cdom.InvalidRequestException)
	kit.MustTrue(t, ok)
	kit.MustEqual(t, cdom.InvalidRequestDetailReasonPageLimitExceeded, ir.DetailReason())

	ae = callErr(t, s, cdom.OpListEndpoints, `{}`)
	kit.MustEqual(t, cdom.ErrorKindTooManyRequests, ae.Kind)

	fw := call[cdom.DescribeFlywheelOutput](t, s, cdom.OpDescribeFlywheel, `{"FlywheelArn":"arn:aws:comprehend:us-east-1:123456789012:flywheel/fw"}`)
	kit.MustEqual(t, cdom.FlywheelStatusActive, *fw.FlywheelProperties.Status)
	kit.MustJSONEq(t, `{"LanguageCode":"en"}`, string(fw.FlywheelProperties.TaskConfig))
}

func TestParseFixturesRejects(t *testing.T) {
	cases := map[string]string{
		"unknown operation": "fixtures: [{operation: Nope}]",
		"bad response":      "fixtures: [{operation: DetectSentiment, response: {Sentiment: ELATED}}]",
		"bad fault":         "fixtures: [{operation: DetectSentiment, fault: {type: OopsException}}]",
		"both":              "fixtures: [{operation: DetectSentiment, response: {}, fault: {type: ServiceException}}]",
		"flywheel arn":      "flywheels: [{FlywheelArn: nope}]",
		"yaml":              "fixtures: [",
	}
	for name, doc := range cases {
		_, err := ParseFixtures([]byte(doc))
		kit.MustErr(t, err, name)
	}
}

func TestTooManyRequests(t *testing.T) {
	s, _ := newService(t, Config{MaxInFlight: 1}, nil)
	s.inflight <- struct{}{}
	ae := callErr(t, s, cdom.OpDetectDominantLanguage, `{"Text":"hello"}`)
	kit.MustEqual(t, cdom.ErrorKindTooManyRequests, ae.Kind)
	<-s.inflight
	call[cdom.DetectDominantLanguageOutput](t, s, cdom.OpDetectDominantLanguage, `{"Text":"hello"}`)
}

func TestPageTokens(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	got, next, err := page(items, listArgs{max: ptrInt32(2)})
	kit.MustNoErr(t, err)
	kit.MustEqual(t, []int{1, 2}, got)
	got, next, err = page(items, listArgs{next: next, max: ptrInt32(10)})
	kit.MustNoErr(t, err)
	kit.MustEqual(t, []int{3, 4, 5}, got)
	kit.MustNil(t, next)

	_, _, err = page(items, listArgs{next: ptrString(encodeToken(9))})
	kit.MustErr(t, err)
}

func ptrInt32(v int32) *int32    { return &v }
func ptrString(v string) *string { return &v }
